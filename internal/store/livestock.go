// Livestock and livestock event repositories.
// Implements: prd004-entity-tables R4 (livestock operations, event timeline).
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/agriposplus/agripos/pkg/types"
)

// LivestockRepo provides typed operations over livestock and
// livestock_events. Animals are never soft-deleted; their status carries
// the lifecycle and events keep the history.
type LivestockRepo struct {
	s *Store
}

// List returns a farm's animals, newest first.
func (r *LivestockRepo) List(farmID int64) ([]types.Livestock, error) {
	db, err := r.s.conn()
	if err != nil {
		return nil, err
	}

	animals := []types.Livestock{}
	err = db.Select(&animals,
		"SELECT * FROM livestock WHERE farm_id = ? ORDER BY created_at DESC", farmID)
	if err != nil {
		return nil, fmt.Errorf("listing livestock: %w", err)
	}
	return animals, nil
}

// ListByStatus returns a farm's animals with the given status.
func (r *LivestockRepo) ListByStatus(farmID int64, status string) ([]types.Livestock, error) {
	db, err := r.s.conn()
	if err != nil {
		return nil, err
	}

	animals := []types.Livestock{}
	err = db.Select(&animals,
		"SELECT * FROM livestock WHERE farm_id = ? AND status = ? ORDER BY created_at DESC",
		farmID, status)
	if err != nil {
		return nil, fmt.Errorf("listing livestock by status: %w", err)
	}
	return animals, nil
}

// Get retrieves one animal by ID.
func (r *LivestockRepo) Get(id string) (*types.Livestock, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	db, err := r.s.conn()
	if err != nil {
		return nil, err
	}

	var l types.Livestock
	err = db.Get(&l, "SELECT * FROM livestock WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting livestock %s: %w", id, err)
	}
	return &l, nil
}

// Save persists an animal, minting an ID when absent. A new animal with
// no status starts active. The store does not check transition legality
// on updates; that is the caller's concern via the entity helpers.
func (r *LivestockRepo) Save(l *types.Livestock) (string, error) {
	if l == nil {
		return "", types.ErrInvalidData
	}
	if l.Species == "" {
		return "", types.ErrInvalidData
	}
	if l.ID == "" {
		l.ID = types.NewID()
	}
	if l.Status == "" {
		l.Status = types.LivestockActive
	}

	db, err := r.s.conn()
	if err != nil {
		return "", err
	}

	exists, err := rowExists(db, "livestock", l.ID)
	if err != nil {
		return "", err
	}

	if exists {
		_, err = db.NamedExec(
			`UPDATE livestock
             SET farm_id = :farm_id, name = :name, species = :species, breed = :breed,
                 tag_id = :tag_id, status = :status, birth_date = :birth_date,
                 acquisition_date = :acquisition_date, acquisition_cost = :acquisition_cost,
                 group_id = :group_id, parent_female = :parent_female,
                 parent_male = :parent_male, notes = :notes, image = :image
             WHERE id = :id`,
			l,
		)
	} else {
		_, err = db.NamedExec(
			`INSERT INTO livestock (id, farm_id, name, species, breed, tag_id, status,
                 birth_date, acquisition_date, acquisition_cost, group_id,
                 parent_female, parent_male, notes, image)
             VALUES (:id, :farm_id, :name, :species, :breed, :tag_id, :status,
                 :birth_date, :acquisition_date, :acquisition_cost, :group_id,
                 :parent_female, :parent_male, :notes, :image)`,
			l,
		)
	}
	if err != nil {
		return "", fmt.Errorf("persisting livestock: %w", err)
	}
	return l.ID, nil
}

// Delete removes an animal and, via cascade, its event timeline.
func (r *LivestockRepo) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	db, err := r.s.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM livestock WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting livestock %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting livestock %s: %w", id, err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// AddEvent appends a timeline entry to an animal. The foreign key
// guarantees the animal exists; a dangling livestock_id fails the write.
func (r *LivestockRepo) AddEvent(ev *types.LivestockEvent) (string, error) {
	if ev == nil {
		return "", types.ErrInvalidData
	}
	if ev.LivestockID == "" || ev.EventType == "" || ev.EventDate == "" {
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
		`INSERT INTO livestock_events (id, livestock_id, event_type, event_date,
             description, value, notes)
         VALUES (:id, :livestock_id, :event_type, :event_date, :description, :value, :notes)`,
		ev,
	)
	if err != nil {
		return "", fmt.Errorf("inserting livestock event: %w", err)
	}
	return ev.ID, nil
}

// Events returns an animal's timeline, most recent event first.
func (r *LivestockRepo) Events(livestockID string) ([]types.LivestockEvent, error) {
	if livestockID == "" {
		return nil, types.ErrInvalidID
	}
	db, err := r.s.conn()
	if err != nil {
		return nil, err
	}

	events := []types.LivestockEvent{}
	err = db.Select(&events,
		"SELECT * FROM livestock_events WHERE livestock_id = ? ORDER BY event_date DESC",
		livestockID)
	if err != nil {
		return nil, fmt.Errorf("listing livestock events: %w", err)
	}
	return events, nil
}
