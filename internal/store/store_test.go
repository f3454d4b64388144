// Tests for store lifecycle, idempotent schema creation, and seeding.
package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/agriposplus/agripos/pkg/types"
)

// newTestStore opens a store in a fresh temp directory.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(types.Config{DataDir: t.TempDir()}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_CreatesStorageFile(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", "data")

	s, err := Open(types.Config{DataDir: dataDir}, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	if _, err := os.Stat(filepath.Join(dataDir, DBFileName)); err != nil {
		t.Errorf("agripos.db not created: %v", err)
	}
}

func TestOpen_RejectsEmptyConfig(t *testing.T) {
	_, err := Open(types.Config{}, zap.NewNop())
	assert.Error(t, err)
}

func TestOpen_FailsWhenDataDirIsAFile(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "data")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := Open(types.Config{DataDir: blocker}, zap.NewNop())
	assert.Error(t, err, "opening over a plain file must be fatal")
}

func TestOpen_SeedsExactlyOneFarm(t *testing.T) {
	s := newTestStore(t)

	farms, err := s.Farms().List()
	require.NoError(t, err)
	require.Len(t, farms, 1)

	assert.Equal(t, "Sample Farm", farms[0].Name)
	assert.Equal(t, "John Farmer", farms[0].Owner)
	want := types.ModuleSet{types.ModuleLivestock, types.ModuleCrops}
	assert.True(t, want.Equal(farms[0].Modules), "seed modules = %v", farms[0].Modules)
}

func TestOpen_IsIdempotent(t *testing.T) {
	dataDir := t.TempDir()
	cfg := types.Config{DataDir: dataDir}

	s, err := Open(cfg, zap.NewNop())
	require.NoError(t, err)

	// Add a second farm so the reopen has something to preserve.
	_, err = s.Farms().Save(&types.Farm{Name: "North Field"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Second initialization against the same location: same table set,
	// no duplicate seed row, existing data intact.
	s, err = Open(cfg, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	farms, err := s.Farms().List()
	require.NoError(t, err)
	assert.Len(t, farms, 2)

	var sampleCount int
	for _, f := range farms {
		if f.Name == "Sample Farm" {
			sampleCount++
		}
	}
	assert.Equal(t, 1, sampleCount, "seed row duplicated on reopen")
}

func TestOpen_NoSeedWhenFarmsExist(t *testing.T) {
	dataDir := t.TempDir()
	cfg := types.Config{DataDir: dataDir}

	s, err := Open(cfg, zap.NewNop())
	require.NoError(t, err)

	// Replace the seed with a user farm; the table stays non-empty.
	farms, err := s.Farms().List()
	require.NoError(t, err)
	_, err = s.Farms().Save(&types.Farm{Name: "Real Farm"})
	require.NoError(t, err)
	require.NoError(t, s.Farms().Delete(farms[0].ID))
	require.NoError(t, s.Close())

	s, err = Open(cfg, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	farms, err = s.Farms().List()
	require.NoError(t, err)
	require.Len(t, farms, 1)
	assert.Equal(t, "Real Farm", farms[0].Name, "seed reinserted into non-empty table")
}

func TestClose_Idempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err := s.Farms().List()
	assert.ErrorIs(t, err, types.ErrStoreClosed)

	res := s.Execute("SELECT 1", nil)
	assert.True(t, res.Failed())
}

func TestOpen_ForeignKeysHoldOnEveryConnection(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// Allow a second pooled connection and hold the first so the next
	// statement cannot reuse it.
	s.db.SetMaxOpenConns(2)
	conn, err := s.db.Conn(ctx)
	require.NoError(t, err)
	defer conn.Close()

	var enabled int
	require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled))
	assert.Equal(t, 1, enabled, "foreign keys off on the first connection")

	// This write lands on a freshly opened second connection; the pragma
	// comes from the DSN, so enforcement must hold there too.
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO products (id, farm_id, name, category, type) VALUES (?, ?, ?, ?, ?)",
		"p-1", int64(999), "Feed", "supplies", types.ProductTypeInput)
	assert.Error(t, err, "dangling farm_id accepted on a second connection")
}

func TestOpen_NilLoggerIsAllowed(t *testing.T) {
	s, err := Open(types.Config{DataDir: t.TempDir()}, nil)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Farms().List()
	assert.NoError(t, err)
}
