// Tests for the generic query gateway: classification, row shaping, and
// error-to-value translation.
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsReadStatement(t *testing.T) {
	tests := []struct {
		statement string
		read      bool
	}{
		{"SELECT * FROM products", true},
		{"  SELECT * FROM products", true},
		{"\n\tselect 1", true},
		{"SeLeCt name FROM farm_profiles", true},
		{"INSERT INTO products (id) VALUES ('x')", false},
		{"update products set price=1", false},
		{"DELETE FROM products", false},
		{"PRAGMA foreign_keys", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.statement, func(t *testing.T) {
			assert.Equal(t, tt.read, isReadStatement(tt.statement))
		})
	}
}

func TestExecute_ReadReturnsRowMaps(t *testing.T) {
	s := newTestStore(t)

	res := s.Execute("SELECT id, name FROM farm_profiles ORDER BY name", nil)
	require.False(t, res.Failed(), "err: %v", res.Err)
	require.Len(t, res.Rows, 1)

	assert.Equal(t, "Sample Farm", res.Rows[0]["name"])
	assert.EqualValues(t, 1, res.Rows[0]["id"])
}

func TestExecute_EmptyResultIsNotAnError(t *testing.T) {
	s := newTestStore(t)

	res := s.Execute("SELECT * FROM products", nil)
	require.False(t, res.Failed())
	assert.NotNil(t, res.Rows)
	assert.Empty(t, res.Rows)
}

func TestExecute_WriteReturnsMutationResult(t *testing.T) {
	s := newTestStore(t)

	res := s.Execute(
		"INSERT INTO farm_profiles (name, modules) VALUES (?, ?)",
		[]any{"North Field", `["crops"]`},
	)
	require.False(t, res.Failed(), "err: %v", res.Err)
	assert.EqualValues(t, 1, res.RowsAffected)
	// farm_profiles has an auto-assigned numeric key; the seed row is 1.
	assert.EqualValues(t, 2, res.LastInsertID)
}

func TestExecute_NamedParameters(t *testing.T) {
	s := newTestStore(t)

	res := s.Execute(
		"INSERT INTO farm_profiles (name, modules) VALUES (:name, :modules)",
		map[string]any{"name": "East Paddock", "modules": "[]"},
	)
	require.False(t, res.Failed(), "err: %v", res.Err)

	res = s.Execute(
		"SELECT name FROM farm_profiles WHERE name = :name",
		map[string]any{"name": "East Paddock"},
	)
	require.False(t, res.Failed(), "err: %v", res.Err)
	require.Len(t, res.Rows, 1)
}

func TestExecute_MalformedStatementBecomesValue(t *testing.T) {
	s := newTestStore(t)

	res := s.Execute("SELEC * FORM products", nil)
	require.True(t, res.Failed())
	assert.NotEmpty(t, res.Err.Message)
}

func TestExecute_ConstraintViolationBecomesValue(t *testing.T) {
	s := newTestStore(t)

	// farm 999 does not exist; the foreign key must reject the insert.
	res := s.Execute(
		"INSERT INTO products (id, farm_id, name, category, type) VALUES (?, ?, ?, ?, ?)",
		[]any{"p-1", int64(999), "Feed", "supplies", "input"},
	)
	require.True(t, res.Failed(), "dangling farm_id accepted")

	// The mutation must not have been applied.
	check := s.Execute("SELECT * FROM products WHERE id = ?", []any{"p-1"})
	require.False(t, check.Failed())
	assert.Empty(t, check.Rows)
}

func TestExecute_UnsupportedParamsType(t *testing.T) {
	s := newTestStore(t)

	res := s.Execute("SELECT 1", 42)
	require.True(t, res.Failed())
	assert.Contains(t, res.Err.Message, "unsupported parameter type")
}
