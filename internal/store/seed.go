// First-run seeding.
// Implements: prd002-sqlite-schema R5 (seed-once default farm).
package store

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/agriposplus/agripos/pkg/types"
)

// seedSampleFarm inserts one sample farm profile if and only if the
// farm_profiles table is empty. Counting and inserting happen in one
// transaction so a second initialization never duplicates the row.
func seedSampleFarm(db *sqlx.DB) error {
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow("SELECT COUNT(*) FROM farm_profiles").Scan(&count); err != nil {
		return fmt.Errorf("counting farm profiles: %w", err)
	}
	if count > 0 {
		return nil
	}

	modules, err := types.ModuleSet{types.ModuleLivestock, types.ModuleCrops}.Value()
	if err != nil {
		return err
	}

	_, err = tx.Exec(
		`INSERT INTO farm_profiles (name, address, owner, phone, email, tax_id, notes, modules)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		"Sample Farm",
		"123 Farm Road, Countryside",
		"John Farmer",
		"555-123-4567",
		"john@samplefarm.com",
		"",
		"",
		modules,
	)
	if err != nil {
		return fmt.Errorf("inserting sample farm: %w", err)
	}

	return tx.Commit()
}
