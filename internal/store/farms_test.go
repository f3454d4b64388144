// Tests for the farm repository and the farm-rooted cascade rules.
package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agriposplus/agripos/pkg/types"
)

func TestFarmRepo_ListSortsByName(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"Zebra Ranch", "Apple Orchard", "North Field"} {
		_, err := s.Farms().Save(&types.Farm{Name: name})
		require.NoError(t, err)
	}

	farms, err := s.Farms().List()
	require.NoError(t, err)
	require.Len(t, farms, 4)

	var names []string
	for _, f := range farms {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"Apple Orchard", "North Field", "Sample Farm", "Zebra Ranch"}, names)
}

func TestFarmRepo_SaveInsertAssignsID(t *testing.T) {
	s := newTestStore(t)

	farm := &types.Farm{Name: "North Field", Owner: "Jane"}
	id, err := s.Farms().Save(farm)
	require.NoError(t, err)

	assert.NotZero(t, id)
	assert.Equal(t, id, farm.ID, "Save must fill in the assigned ID")
}

func TestFarmRepo_SaveRejectsEmptyName(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Farms().Save(&types.Farm{})
	assert.ErrorIs(t, err, types.ErrInvalidName)
}

func TestFarmRepo_SaveUpdateKeyedByID(t *testing.T) {
	s := newTestStore(t)

	farm := &types.Farm{Name: "North Field"}
	id, err := s.Farms().Save(farm)
	require.NoError(t, err)

	farm.Owner = "Jane"
	farm.Notes = "expanded in spring"
	got, err := s.Farms().Save(farm)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	loaded, err := s.Farms().Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Jane", loaded.Owner)
	assert.Equal(t, "expanded in spring", loaded.Notes)
}

func TestFarmRepo_UpdateMissingFarm(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Farms().Save(&types.Farm{ID: 999, Name: "Ghost"})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestFarmRepo_ModulesRoundTrip(t *testing.T) {
	s := newTestStore(t)

	modules, err := types.NewModuleSet(types.ModuleLivestock, types.ModuleCrops)
	require.NoError(t, err)

	id, err := s.Farms().Save(&types.Farm{Name: "Mixed Farm", Modules: modules})
	require.NoError(t, err)

	loaded, err := s.Farms().Get(id)
	require.NoError(t, err)
	assert.True(t, modules.Equal(loaded.Modules), "got %v", loaded.Modules)
	assert.True(t, loaded.Modules.Has(types.ModuleCrops))
	assert.False(t, loaded.Modules.Has(types.ModuleApiculture))
}

func TestFarmRepo_GetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Farms().Get(12345)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestFarmRepo_DeleteMissing(t *testing.T) {
	s := newTestStore(t)

	err := s.Farms().Delete(12345)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

// TestFarmRepo_DeleteCascades exercises the whole ownership tree:
// deleting a farm removes its products, livestock, crops, plots, and
// sales, and transitively the events, sale items, and inventory
// transactions those rows own.
func TestFarmRepo_DeleteCascades(t *testing.T) {
	s := newTestStore(t)

	farmID, err := s.Farms().Save(&types.Farm{Name: "Doomed Farm"})
	require.NoError(t, err)

	product := &types.Product{
		FarmID: farmID, Name: "Eggs", Category: "produce",
		Type: types.ProductTypeOutput, Quantity: 100, Price: 4,
	}
	productID, err := s.Products().Save(product)
	require.NoError(t, err)

	animalID, err := s.Livestock().Save(&types.Livestock{FarmID: farmID, Species: "chicken"})
	require.NoError(t, err)
	_, err = s.Livestock().AddEvent(&types.LivestockEvent{
		LivestockID: animalID, EventType: types.LivestockEventHealth, EventDate: "2026-01-10",
	})
	require.NoError(t, err)

	cropID, err := s.Crops().Save(&types.Crop{FarmID: farmID, Name: "Wheat", CropType: "grain"})
	require.NoError(t, err)
	_, err = s.Crops().AddEvent(&types.CropEvent{
		CropID: cropID, EventType: types.CropEventPlanting, EventDate: "2026-03-01",
	})
	require.NoError(t, err)

	_, err = s.Plots().Save(&types.Plot{FarmID: farmID, Name: "Back Forty"})
	require.NoError(t, err)

	_, err = s.Sales().RecordSale(
		&types.Sale{FarmID: farmID, SaleDate: "2026-06-01", FinalAmount: 40},
		[]types.SaleItem{{ProductID: productID, Quantity: 10, UnitPrice: 4, TotalPrice: 40}},
	)
	require.NoError(t, err)

	require.NoError(t, s.Farms().Delete(farmID))

	for _, table := range []string{
		"products", "livestock", "livestock_events", "crops", "crop_events",
		"plots", "inventory_transactions", "sales", "sale_items",
	} {
		res := s.Execute(fmt.Sprintf("SELECT COUNT(*) AS n FROM %s", table), nil)
		require.False(t, res.Failed(), "%s: %v", table, res.Err)
		assert.EqualValues(t, 0, res.Rows[0]["n"], "%s rows survived the cascade", table)
	}
}
