// Shared repository helpers.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// rowExists reports whether a row with the given opaque ID exists in the
// table. Repositories use it to pick the insert or update path of Save.
// The table name is always a compile-time constant from this package,
// never caller input.
func rowExists(db *sqlx.DB, table, id string) (bool, error) {
	var one int
	err := db.QueryRow("SELECT 1 FROM "+table+" WHERE id = ?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking %s existence: %w", table, err)
	}
	return true, nil
}
