// Farm profile repository.
// Implements: prd004-entity-tables R2 (farm operations);
//
//	docs/ARCHITECTURE § Entity Repositories.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/agriposplus/agripos/pkg/types"
)

// FarmRepo provides typed operations over farm_profiles. Farms are the
// one entity with a store-assigned sequential key; Save treats a zero ID
// as an insert and returns the generated identifier.
type FarmRepo struct {
	s *Store
}

// List returns every farm profile sorted by name ascending.
// An empty store yields an empty slice, not an error.
func (r *FarmRepo) List() ([]types.Farm, error) {
	db, err := r.s.conn()
	if err != nil {
		return nil, err
	}

	farms := []types.Farm{}
	if err := db.Select(&farms, "SELECT * FROM farm_profiles ORDER BY name"); err != nil {
		return nil, fmt.Errorf("listing farms: %w", err)
	}
	return farms, nil
}

// Get retrieves one farm by its numeric ID.
func (r *FarmRepo) Get(id int64) (*types.Farm, error) {
	db, err := r.s.conn()
	if err != nil {
		return nil, err
	}

	var farm types.Farm
	err = db.Get(&farm, "SELECT * FROM farm_profiles WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting farm %d: %w", id, err)
	}
	return &farm, nil
}

// Save persists a farm profile. A zero ID inserts and fills in the
// assigned identifier; a non-zero ID updates every mutable field keyed by
// id. The modules set round-trips through its JSON string form.
func (r *FarmRepo) Save(farm *types.Farm) (int64, error) {
	if farm == nil {
		return 0, types.ErrInvalidData
	}
	if farm.Name == "" {
		return 0, types.ErrInvalidName
	}

	db, err := r.s.conn()
	if err != nil {
		return 0, err
	}

	if farm.ID != 0 {
		res, err := db.NamedExec(
			`UPDATE farm_profiles
             SET name = :name, address = :address, owner = :owner, phone = :phone,
                 email = :email, tax_id = :tax_id, notes = :notes, modules = :modules
             WHERE id = :id`,
			farm,
		)
		if err != nil {
			return 0, fmt.Errorf("updating farm %d: %w", farm.ID, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("updating farm %d: %w", farm.ID, err)
		}
		if affected == 0 {
			return 0, types.ErrNotFound
		}
		return farm.ID, nil
	}

	res, err := db.NamedExec(
		`INSERT INTO farm_profiles (name, address, owner, phone, email, tax_id, notes, modules)
         VALUES (:name, :address, :owner, :phone, :email, :tax_id, :notes, :modules)`,
		farm,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting farm: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("inserting farm: %w", err)
	}
	farm.ID = id
	return id, nil
}

// Delete removes a farm and, through the schema's cascade rules, every
// row the farm owns, directly or transitively.
func (r *FarmRepo) Delete(id int64) error {
	db, err := r.s.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM farm_profiles WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting farm %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting farm %d: %w", id, err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}
