// Tests for dashboard aggregation.
package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agriposplus/agripos/pkg/types"
)

func TestDashboardStats(t *testing.T) {
	s := newTestStore(t)
	farmID := seedFarm(t, s, "North Field")
	today := time.Now().UTC().Format("2006-01-02")

	// Two active animals, one sold.
	for _, status := range []string{types.LivestockActive, types.LivestockActive, types.LivestockSold} {
		animal := &types.Livestock{FarmID: farmID, Species: "goat", Status: status}
		_, err := s.Livestock().Save(animal)
		require.NoError(t, err)
	}

	// One growing crop, one harvested.
	growing := &types.Crop{FarmID: farmID, Name: "Wheat", CropType: "grain", Status: types.CropGrowing}
	_, err := s.Crops().Save(growing)
	require.NoError(t, err)
	done := &types.Crop{FarmID: farmID, Name: "Rye", CropType: "grain", Status: types.CropHarvested}
	_, err = s.Crops().Save(done)
	require.NoError(t, err)

	// One low product, one healthy.
	productID, err := s.Products().Save(&types.Product{
		FarmID: farmID, Name: "Eggs", Category: "produce", Type: types.ProductTypeOutput,
		Quantity: 5, MinQuantity: 10, Price: 4,
	})
	require.NoError(t, err)
	_, err = s.Products().Save(&types.Product{
		FarmID: farmID, Name: "Milk", Category: "produce", Type: types.ProductTypeOutput,
		Quantity: 50, MinQuantity: 10,
	})
	require.NoError(t, err)

	// A sale today, a cancelled sale today, and a purchase this month.
	_, err = s.Sales().RecordSale(
		&types.Sale{FarmID: farmID, SaleDate: today, FinalAmount: 40, PaymentStatus: types.PaymentPaid},
		[]types.SaleItem{{ProductID: productID, Quantity: 1, UnitPrice: 40, TotalPrice: 40}},
	)
	require.NoError(t, err)
	_, err = s.Sales().Save(&types.Sale{
		FarmID: farmID, SaleDate: today, FinalAmount: 99, PaymentStatus: types.PaymentCancelled,
	})
	require.NoError(t, err)
	_, err = s.Inventory().Record(&types.InventoryTransaction{
		FarmID: farmID, ProductID: productID, TransactionType: types.TxnPurchase,
		Quantity: 20, UnitPrice: 1, TotalPrice: 20, Date: today,
	})
	require.NoError(t, err)

	stats, err := s.DashboardStats(farmID)
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.LivestockCount)
	assert.EqualValues(t, 1, stats.CropCount)
	assert.EqualValues(t, 1, stats.LowInventoryCount)
	assert.EqualValues(t, 1, stats.SalesToday, "cancelled sales excluded")
	assert.Equal(t, 40.0, stats.RevenueToday)
	assert.Equal(t, 40.0, stats.RevenueMonth)
	assert.Equal(t, 20.0, stats.ExpensesMonth)
	assert.Equal(t, 20.0, stats.ProfitMonth)
}

func TestDashboardStats_EmptyFarm(t *testing.T) {
	s := newTestStore(t)
	farmID := seedFarm(t, s, "Quiet Farm")

	stats, err := s.DashboardStats(farmID)
	require.NoError(t, err)

	assert.Zero(t, stats.LivestockCount)
	assert.Zero(t, stats.RevenueMonth)
	assert.Zero(t, stats.ProfitMonth)
}
