// Crop and crop event repositories.
// Implements: prd004-entity-tables R5 (crop operations, event timeline).
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/agriposplus/agripos/pkg/types"
)

// CropRepo provides typed operations over crops and crop_events.
type CropRepo struct {
	s *Store
}

// List returns a farm's crops, newest first.
func (r *CropRepo) List(farmID int64) ([]types.Crop, error) {
	db, err := r.s.conn()
	if err != nil {
		return nil, err
	}

	crops := []types.Crop{}
	err = db.Select(&crops,
		"SELECT * FROM crops WHERE farm_id = ? ORDER BY created_at DESC", farmID)
	if err != nil {
		return nil, fmt.Errorf("listing crops: %w", err)
	}
	return crops, nil
}

// ListByStatus returns a farm's crops with the given status.
func (r *CropRepo) ListByStatus(farmID int64, status string) ([]types.Crop, error) {
	db, err := r.s.conn()
	if err != nil {
		return nil, err
	}

	crops := []types.Crop{}
	err = db.Select(&crops,
		"SELECT * FROM crops WHERE farm_id = ? AND status = ? ORDER BY created_at DESC",
		farmID, status)
	if err != nil {
		return nil, fmt.Errorf("listing crops by status: %w", err)
	}
	return crops, nil
}

// ListByPlot returns the crops sited on one plot.
func (r *CropRepo) ListByPlot(plotID string) ([]types.Crop, error) {
	if plotID == "" {
		return nil, types.ErrInvalidID
	}
	db, err := r.s.conn()
	if err != nil {
		return nil, err
	}

	crops := []types.Crop{}
	err = db.Select(&crops,
		"SELECT * FROM crops WHERE plot_id = ? ORDER BY created_at DESC", plotID)
	if err != nil {
		return nil, fmt.Errorf("listing crops by plot: %w", err)
	}
	return crops, nil
}

// Get retrieves one crop by ID.
func (r *CropRepo) Get(id string) (*types.Crop, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	db, err := r.s.conn()
	if err != nil {
		return nil, err
	}

	var c types.Crop
	err = db.Get(&c, "SELECT * FROM crops WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting crop %s: %w", id, err)
	}
	return &c, nil
}

// Save persists a crop, minting an ID when absent. A new crop with no
// status starts planned.
func (r *CropRepo) Save(c *types.Crop) (string, error) {
	if c == nil {
		return "", types.ErrInvalidData
	}
	if c.Name == "" {
		return "", types.ErrInvalidName
	}
	if c.ID == "" {
		c.ID = types.NewID()
	}
	if c.Status == "" {
		c.Status = types.CropPlanned
	}

	db, err := r.s.conn()
	if err != nil {
		return "", err
	}

	exists, err := rowExists(db, "crops", c.ID)
	if err != nil {
		return "", err
	}

	if exists {
		_, err = db.NamedExec(
			`UPDATE crops
             SET farm_id = :farm_id, name = :name, crop_type = :crop_type,
                 variety = :variety, plot_id = :plot_id, status = :status,
                 planting_date = :planting_date,
                 expected_harvest_date = :expected_harvest_date,
                 actual_harvest_date = :actual_harvest_date,
                 seed_quantity = :seed_quantity, seed_unit = :seed_unit, notes = :notes
             WHERE id = :id`,
			c,
		)
	} else {
		_, err = db.NamedExec(
			`INSERT INTO crops (id, farm_id, name, crop_type, variety, plot_id, status,
                 planting_date, expected_harvest_date, actual_harvest_date,
                 seed_quantity, seed_unit, notes)
             VALUES (:id, :farm_id, :name, :crop_type, :variety, :plot_id, :status,
                 :planting_date, :expected_harvest_date, :actual_harvest_date,
                 :seed_quantity, :seed_unit, :notes)`,
			c,
		)
	}
	if err != nil {
		return "", fmt.Errorf("persisting crop: %w", err)
	}
	return c.ID, nil
}

// Delete removes a crop and, via cascade, its event timeline.
func (r *CropRepo) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	db, err := r.s.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM crops WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting crop %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting crop %s: %w", id, err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// AddEvent appends a timeline entry to a crop.
func (r *CropRepo) AddEvent(ev *types.CropEvent) (string, error) {
	if ev == nil {
		return "", types.ErrInvalidData
	}
	if ev.CropID == "" || ev.EventType == "" || ev.EventDate == "" {
		return "", types.ErrInvalidData
	}
	if ev.ID == "" {
		ev.ID = types.NewID()
	}

	db, err := r.s.conn()
	if err != nil {
		return "", err
	}

	_, err = db.NamedExec(
		`INSERT INTO crop_events (id, crop_id, event_type, event_date, description,
             product_used, quantity, unit, notes)
         VALUES (:id, :crop_id, :event_type, :event_date, :description,
             :product_used, :quantity, :unit, :notes)`,
		ev,
	)
	if err != nil {
		return "", fmt.Errorf("inserting crop event: %w", err)
	}
	return ev.ID, nil
}

// Events returns a crop's timeline, most recent event first.
func (r *CropRepo) Events(cropID string) ([]types.CropEvent, error) {
	if cropID == "" {
		return nil, types.ErrInvalidID
	}
	db, err := r.s.conn()
	if err != nil {
		return nil, err
	}

	events := []types.CropEvent{}
	err = db.Select(&events,
		"SELECT * FROM crop_events WHERE crop_id = ? ORDER BY event_date DESC", cropID)
	if err != nil {
		return nil, fmt.Errorf("listing crop events: %w", err)
	}
	return events, nil
}
