// Plot repository.
// Implements: prd004-entity-tables R6 (plot operations).
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/agriposplus/agripos/pkg/types"
)

// PlotRepo provides typed operations over plots.
type PlotRepo struct {
	s *Store
}

// List returns a farm's plots sorted by name ascending.
func (r *PlotRepo) List(farmID int64) ([]types.Plot, error) {
	db, err := r.s.conn()
	if err != nil {
		return nil, err
	}

	plots := []types.Plot{}
	err = db.Select(&plots,
		"SELECT * FROM plots WHERE farm_id = ? ORDER BY name", farmID)
	if err != nil {
		return nil, fmt.Errorf("listing plots: %w", err)
	}
	return plots, nil
}

// Get retrieves one plot by ID.
func (r *PlotRepo) Get(id string) (*types.Plot, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	db, err := r.s.conn()
	if err != nil {
		return nil, err
	}

	var p types.Plot
	err = db.Get(&p, "SELECT * FROM plots WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting plot %s: %w", id, err)
	}
	return &p, nil
}

// Save persists a plot, minting an ID when absent.
func (r *PlotRepo) Save(p *types.Plot) (string, error) {
	if p == nil {
		return "", types.ErrInvalidData
	}
	if p.Name == "" {
		return "", types.ErrInvalidName
	}
	if p.ID == "" {
		p.ID = types.NewID()
	}

	db, err := r.s.conn()
	if err != nil {
		return "", err
	}

	exists, err := rowExists(db, "plots", p.ID)
	if err != nil {
		return "", err
	}

	if exists {
		_, err = db.NamedExec(
			`UPDATE plots
             SET farm_id = :farm_id, name = :name, size = :size, size_unit = :size_unit,
                 location = :location, soil_type = :soil_type, status = :status,
                 notes = :notes
             WHERE id = :id`,
			p,
		)
	} else {
		_, err = db.NamedExec(
			`INSERT INTO plots (id, farm_id, name, size, size_unit, location,
                 soil_type, status, notes)
             VALUES (:id, :farm_id, :name, :size, :size_unit, :location,
                 :soil_type, :status, :notes)`,
			p,
		)
	}
	if err != nil {
		return "", fmt.Errorf("persisting plot: %w", err)
	}
	return p.ID, nil
}

// Delete removes a plot. Crops referencing it keep their plot_id; the
// column is a loose reference, not a foreign key, matching the schema.
func (r *PlotRepo) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	db, err := r.s.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM plots WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting plot %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting plot %s: %w", id, err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}
