// Store lifecycle: open, schema materialization, seeding, close.
// Implements: prd001-store-core R1 (open/close), prd002-sqlite-schema R4
// (idempotent creation, foreign-key enforcement).
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/agriposplus/agripos/pkg/types"
)

// DBFileName is the name of the single storage file inside the data dir.
const DBFileName = "agripos.db"

// Store owns the SQLite connection and hands out typed repositories.
// It is the only component allowed to touch the database; the
// presentation layer goes through the Gateway or the repositories.
//
// Single-process, single-writer: concurrent calls serialize on the one
// underlying connection, and each repository call is its own atomic unit
// unless it opens an explicit transaction.
type Store struct {
	mu     sync.RWMutex
	db     *sqlx.DB
	log    *zap.Logger
	closed bool
}

// Open creates the data directory if absent, opens (or creates) the
// storage file, enables foreign-key enforcement, materializes the schema,
// and seeds the default farm when the store is empty.
//
// Any I/O failure here is fatal to startup: the caller must not proceed
// with a nil store.
func Open(cfg types.Config, log *zap.Logger) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	// foreign_keys is a per-connection pragma; setting it through the DSN
	// makes the driver apply it to every connection the pool opens, not
	// just the first.
	dbPath := filepath.Join(cfg.DataDir, DBFileName)
	dsn := "file:" + dbPath + "?_pragma=foreign_keys(1)"
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", dbPath, err)
	}

	// One connection: repository calls serialize on it, and an explicit
	// transaction never contends with its own pool.
	db.SetMaxOpenConns(1)

	// Schema creation is safe to run on every startup.
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating table: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating index: %w", err)
		}
	}

	if err := seedSampleFarm(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("seeding default farm: %w", err)
	}

	log.Info("store opened", zap.String("path", dbPath))

	return &Store{db: db, log: log}, nil
}

// Close releases the SQLite connection. Idempotent. After Close every
// operation returns ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing store: %w", err)
	}
	s.log.Info("store closed")
	return nil
}

// conn returns the live connection, or ErrStoreClosed after Close.
func (s *Store) conn() (*sqlx.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, types.ErrStoreClosed
	}
	return s.db, nil
}

// Repository accessors. Each repository is a stateless typed view over
// the store's connection (prd004-entity-tables R1).

func (s *Store) Farms() *FarmRepo          { return &FarmRepo{s: s} }
func (s *Store) Products() *ProductRepo    { return &ProductRepo{s: s} }
func (s *Store) Livestock() *LivestockRepo { return &LivestockRepo{s: s} }
func (s *Store) Crops() *CropRepo          { return &CropRepo{s: s} }
func (s *Store) Plots() *PlotRepo          { return &PlotRepo{s: s} }
func (s *Store) Inventory() *InventoryRepo { return &InventoryRepo{s: s} }
func (s *Store) Sales() *SaleRepo          { return &SaleRepo{s: s} }
