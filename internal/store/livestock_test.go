// Tests for the livestock repository and its event timeline.
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agriposplus/agripos/pkg/types"
)

func TestLivestock_SaveDefaultsToActive(t *testing.T) {
	s := newTestStore(t)
	farmID := seedFarm(t, s, "North Field")

	id, err := s.Livestock().Save(&types.Livestock{FarmID: farmID, Species: "goat"})
	require.NoError(t, err)

	got, err := s.Livestock().Get(id)
	require.NoError(t, err)
	assert.Equal(t, types.LivestockActive, got.Status)
}

func TestLivestock_SaveRequiresSpecies(t *testing.T) {
	s := newTestStore(t)
	farmID := seedFarm(t, s, "North Field")

	_, err := s.Livestock().Save(&types.Livestock{FarmID: farmID})
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestLivestock_ListByStatus(t *testing.T) {
	s := newTestStore(t)
	farmID := seedFarm(t, s, "North Field")

	active := &types.Livestock{FarmID: farmID, Species: "goat", Name: "Billy"}
	_, err := s.Livestock().Save(active)
	require.NoError(t, err)

	sold := &types.Livestock{FarmID: farmID, Species: "goat", Name: "Nanny"}
	require.NoError(t, sold.MarkSold())
	_, err = s.Livestock().Save(sold)
	require.NoError(t, err)

	got, err := s.Livestock().ListByStatus(farmID, types.LivestockSold)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Nanny", got[0].Name)
}

func TestLivestock_StatusPersistsAcrossSave(t *testing.T) {
	s := newTestStore(t)
	farmID := seedFarm(t, s, "North Field")

	animal := &types.Livestock{FarmID: farmID, Species: "cow", Name: "Bess"}
	id, err := s.Livestock().Save(animal)
	require.NoError(t, err)

	require.NoError(t, animal.MarkDeceased())
	_, err = s.Livestock().Save(animal)
	require.NoError(t, err)

	got, err := s.Livestock().Get(id)
	require.NoError(t, err)
	assert.Equal(t, types.LivestockDeceased, got.Status)
}

func TestLivestock_EventTimeline(t *testing.T) {
	s := newTestStore(t)
	farmID := seedFarm(t, s, "North Field")

	id, err := s.Livestock().Save(&types.Livestock{FarmID: farmID, Species: "cow"})
	require.NoError(t, err)

	for _, ev := range []types.LivestockEvent{
		{LivestockID: id, EventType: types.LivestockEventWeight, EventDate: "2026-01-05", Value: 410},
		{LivestockID: id, EventType: types.LivestockEventVaccination, EventDate: "2026-02-20"},
		{LivestockID: id, EventType: types.LivestockEventWeight, EventDate: "2026-01-30", Value: 422},
	} {
		ev := ev
		_, err := s.Livestock().AddEvent(&ev)
		require.NoError(t, err)
	}

	events, err := s.Livestock().Events(id)
	require.NoError(t, err)
	require.Len(t, events, 3)

	// Most recent event first.
	assert.Equal(t, "2026-02-20", events[0].EventDate)
	assert.Equal(t, "2026-01-05", events[2].EventDate)
}

func TestLivestock_EventRequiresExistingAnimal(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Livestock().AddEvent(&types.LivestockEvent{
		LivestockID: "no-such-animal",
		EventType:   types.LivestockEventHealth,
		EventDate:   "2026-01-01",
	})
	assert.Error(t, err, "dangling livestock_id must be rejected")
}

func TestLivestock_DeleteCascadesToEvents(t *testing.T) {
	s := newTestStore(t)
	farmID := seedFarm(t, s, "North Field")

	id, err := s.Livestock().Save(&types.Livestock{FarmID: farmID, Species: "pig"})
	require.NoError(t, err)
	_, err = s.Livestock().AddEvent(&types.LivestockEvent{
		LivestockID: id, EventType: types.LivestockEventFeed, EventDate: "2026-04-01",
	})
	require.NoError(t, err)

	require.NoError(t, s.Livestock().Delete(id))

	res := s.Execute("SELECT COUNT(*) AS n FROM livestock_events", nil)
	require.False(t, res.Failed())
	assert.EqualValues(t, 0, res.Rows[0]["n"])
}
