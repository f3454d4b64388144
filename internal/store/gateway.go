// Generic query gateway: the single chokepoint for free-form data access
// from the presentation layer.
// Implements: prd003-query-gateway (R1 classification, R2 row shaping,
// R3 error translation).
package store

import (
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// QueryError is the value-level error the gateway returns in place of any
// driver or preparation failure. Driver-specific error types never cross
// this boundary; the presentation layer gets a message it can render.
type QueryError struct {
	Message string
}

func (e *QueryError) Error() string { return e.Message }

// Result is the outcome of one Execute call: a fully materialized row set
// for reads, a mutation summary for writes, or a value-level error.
// Exactly one of Rows and the mutation fields is meaningful, depending on
// how the statement classified.
type Result struct {
	Rows         []map[string]any `json:"rows,omitempty"`
	RowsAffected int64            `json:"rows_affected"`
	LastInsertID int64            `json:"last_insert_id"`
	Err          *QueryError      `json:"error,omitempty"`
}

// Failed reports whether the call produced an error.
func (r Result) Failed() bool { return r.Err != nil }

// isReadStatement classifies a statement: a read iff, after trimming
// leading whitespace and lower-casing, it begins with "select". Every
// other statement takes the write path.
func isReadStatement(statement string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(statement)), "select")
}

// Execute runs one statement through the store. params may be nil, a
// []any of positional values, or a map[string]any of named values.
//
// Reads return the full row set as column-name-to-value maps; no
// pagination, no streaming. Writes return the affected-row count and, for
// inserts into tables with auto-assigned numeric keys, the new ID.
//
// The gateway holds no state between calls and never panics across the
// boundary: every failure comes back as Result.Err.
func (s *Store) Execute(statement string, params any) Result {
	db, err := s.conn()
	if err != nil {
		return s.failure(statement, err)
	}

	if isReadStatement(statement) {
		return s.executeRead(db, statement, params)
	}
	return s.executeWrite(db, statement, params)
}

func (s *Store) executeRead(db *sqlx.DB, statement string, params any) Result {
	var rows *sqlx.Rows
	var err error

	switch p := params.(type) {
	case nil:
		rows, err = db.Queryx(statement)
	case []any:
		rows, err = db.Queryx(statement, p...)
	case map[string]any:
		rows, err = db.NamedQuery(statement, p)
	default:
		return s.failure(statement, &QueryError{Message: "unsupported parameter type"})
	}
	if err != nil {
		return s.failure(statement, err)
	}
	defer rows.Close()

	out := []map[string]any{}
	for rows.Next() {
		row := map[string]any{}
		if err := rows.MapScan(row); err != nil {
			return s.failure(statement, err)
		}
		for k, v := range row {
			// The driver hands back []byte for some text columns;
			// flatten to string so rows serialize cleanly.
			if b, ok := v.([]byte); ok {
				row[k] = string(b)
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return s.failure(statement, err)
	}

	return Result{Rows: out}
}

func (s *Store) executeWrite(db *sqlx.DB, statement string, params any) Result {
	var res interface {
		RowsAffected() (int64, error)
		LastInsertId() (int64, error)
	}
	var err error

	switch p := params.(type) {
	case nil:
		res, err = db.Exec(statement)
	case []any:
		res, err = db.Exec(statement, p...)
	case map[string]any:
		res, err = db.NamedExec(statement, p)
	default:
		return s.failure(statement, &QueryError{Message: "unsupported parameter type"})
	}
	if err != nil {
		return s.failure(statement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return s.failure(statement, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return s.failure(statement, err)
	}

	return Result{RowsAffected: affected, LastInsertID: lastID}
}

// failure logs the failed statement and converts the error to a value.
func (s *Store) failure(statement string, err error) Result {
	s.log.Error("statement failed",
		zap.String("statement", statement),
		zap.Error(err),
	)
	if qe, ok := err.(*QueryError); ok {
		return Result{Err: qe}
	}
	return Result{Err: &QueryError{Message: err.Error()}}
}
