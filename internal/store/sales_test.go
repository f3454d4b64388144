// Tests for the sale repository, in particular the atomicity of
// RecordSale: sale, line items, and stock effects apply together or not
// at all.
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agriposplus/agripos/pkg/types"
)

func saleFixture(t *testing.T, s *Store) (int64, string) {
	t.Helper()
	farmID := seedFarm(t, s, "North Field")
	productID, err := s.Products().Save(&types.Product{
		FarmID: farmID, Name: "Eggs", Category: "produce",
		Type: types.ProductTypeOutput, Price: 4, Quantity: 100,
	})
	require.NoError(t, err)
	return farmID, productID
}

func TestRecordSale_AppliesAllEffects(t *testing.T) {
	s := newTestStore(t)
	farmID, productID := saleFixture(t, s)

	sale := &types.Sale{
		FarmID: farmID, SaleDate: "2026-06-01", CustomerName: "Market Co-op",
		TotalAmount: 40, FinalAmount: 40, PaymentStatus: types.PaymentPaid,
	}
	items := []types.SaleItem{
		{ID: types.NewID(), ProductID: productID, Quantity: 10, UnitPrice: 4, TotalPrice: 40},
	}

	saleID, err := s.Sales().RecordSale(sale, items)
	require.NoError(t, err)

	got, err := s.Sales().Get(saleID)
	require.NoError(t, err)
	assert.Equal(t, "Market Co-op", got.CustomerName)

	lines, err := s.Sales().Items(saleID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, saleID, lines[0].SaleID)

	p, err := s.Products().Get(productID)
	require.NoError(t, err)
	assert.Equal(t, 90.0, p.Quantity, "stock must be decremented")

	moves, err := s.Inventory().ListByProduct(productID)
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, types.TxnSale, moves[0].TransactionType)
	assert.Equal(t, saleID, moves[0].Source)
}

func TestRecordSale_RollsBackOnBadItem(t *testing.T) {
	s := newTestStore(t)
	farmID, productID := saleFixture(t, s)

	sale := &types.Sale{FarmID: farmID, SaleDate: "2026-06-01", FinalAmount: 44}
	items := []types.SaleItem{
		{ProductID: productID, Quantity: 10, UnitPrice: 4, TotalPrice: 40},
		// Second line references a product that does not exist; the
		// foreign key fails it after the first line already applied.
		{ProductID: "no-such-product", Quantity: 1, UnitPrice: 4, TotalPrice: 4},
	}

	_, err := s.Sales().RecordSale(sale, items)
	require.Error(t, err)

	// Nothing may have stuck: no sale, no items, no stock change.
	sales, err := s.Sales().List(farmID)
	require.NoError(t, err)
	assert.Empty(t, sales)

	p, err := s.Products().Get(productID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, p.Quantity, "partial application observed")

	moves, err := s.Inventory().ListByProduct(productID)
	require.NoError(t, err)
	assert.Empty(t, moves)
}

func TestRecordSale_RequiresItems(t *testing.T) {
	s := newTestStore(t)
	farmID, _ := saleFixture(t, s)

	_, err := s.Sales().RecordSale(&types.Sale{FarmID: farmID, SaleDate: "2026-06-01"}, nil)
	assert.ErrorIs(t, err, types.ErrInvalidData)
}

func TestSales_ListByStatusAndDateRange(t *testing.T) {
	s := newTestStore(t)
	farmID, productID := saleFixture(t, s)

	dates := []struct {
		date   string
		status string
	}{
		{"2026-05-10", types.PaymentPaid},
		{"2026-06-01", types.PaymentPending},
		{"2026-06-20", types.PaymentPaid},
	}
	for _, d := range dates {
		_, err := s.Sales().RecordSale(
			&types.Sale{FarmID: farmID, SaleDate: d.date, PaymentStatus: d.status, FinalAmount: 10},
			[]types.SaleItem{{ProductID: productID, Quantity: 1, UnitPrice: 10, TotalPrice: 10}},
		)
		require.NoError(t, err)
	}

	paid, err := s.Sales().ListByStatus(farmID, types.PaymentPaid)
	require.NoError(t, err)
	assert.Len(t, paid, 2)

	june, err := s.Sales().ListByDateRange(farmID, "2026-06-01", "2026-06-30")
	require.NoError(t, err)
	require.Len(t, june, 2)
	// Most recent first.
	assert.Equal(t, "2026-06-20", june[0].SaleDate)
}

func TestSales_SaveHeaderDefaultsToPending(t *testing.T) {
	s := newTestStore(t)
	farmID, _ := saleFixture(t, s)

	id, err := s.Sales().Save(&types.Sale{FarmID: farmID, SaleDate: "2026-07-01"})
	require.NoError(t, err)

	got, err := s.Sales().Get(id)
	require.NoError(t, err)
	assert.Equal(t, types.PaymentPending, got.PaymentStatus)
}

func TestSales_DeleteCascadesToItemsOnly(t *testing.T) {
	s := newTestStore(t)
	farmID, productID := saleFixture(t, s)

	saleID, err := s.Sales().RecordSale(
		&types.Sale{FarmID: farmID, SaleDate: "2026-06-01", FinalAmount: 40},
		[]types.SaleItem{{ProductID: productID, Quantity: 10, UnitPrice: 4, TotalPrice: 40}},
	)
	require.NoError(t, err)

	require.NoError(t, s.Sales().Delete(saleID))

	items, err := s.Sales().Items(saleID)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Movement history is append-only and survives the sale.
	moves, err := s.Inventory().ListByProduct(productID)
	require.NoError(t, err)
	assert.Len(t, moves, 1)
}
