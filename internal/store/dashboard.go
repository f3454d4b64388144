// Dashboard aggregation queries.
// Implements: prd004-entity-tables R10 (dashboard widgets).
package store

import (
	"fmt"

	"github.com/agriposplus/agripos/pkg/types"
)

// DashboardStats carries the aggregate figures the dashboard widgets
// show for one farm.
type DashboardStats struct {
	LivestockCount    int64   `db:"livestock_count" json:"livestock_count"`
	CropCount         int64   `db:"crop_count" json:"crop_count"`
	LowInventoryCount int64   `db:"low_inventory_count" json:"low_inventory_count"`
	SalesToday        int64   `db:"sales_today" json:"sales_today"`
	RevenueToday      float64 `db:"revenue_today" json:"revenue_today"`
	RevenueMonth      float64 `db:"revenue_month" json:"revenue_month"`
	ExpensesMonth     float64 `db:"expenses_month" json:"expenses_month"`
	ProfitMonth       float64 `db:"profit_month" json:"profit_month"`
}

// DashboardStats computes the widget aggregates for one farm. Counts
// cover live rows only: active animals, crops still in the ground,
// products at or below their reorder level. Money figures exclude
// cancelled sales; monthly expenses are purchase transactions.
func (s *Store) DashboardStats(farmID int64) (*DashboardStats, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	var stats DashboardStats

	err = db.Get(&stats.LivestockCount,
		"SELECT COUNT(*) FROM livestock WHERE farm_id = ? AND status = ?",
		farmID, types.LivestockActive)
	if err != nil {
		return nil, fmt.Errorf("counting livestock: %w", err)
	}

	err = db.Get(&stats.CropCount,
		"SELECT COUNT(*) FROM crops WHERE farm_id = ? AND status NOT IN (?, ?)",
		farmID, types.CropHarvested, types.CropFailed)
	if err != nil {
		return nil, fmt.Errorf("counting crops: %w", err)
	}

	err = db.Get(&stats.LowInventoryCount,
		"SELECT COUNT(*) FROM products WHERE farm_id = ? AND quantity <= min_quantity",
		farmID)
	if err != nil {
		return nil, fmt.Errorf("counting low inventory: %w", err)
	}

	err = db.Get(&stats.SalesToday,
		`SELECT COUNT(*) FROM sales
         WHERE farm_id = ? AND date(sale_date) = date('now') AND payment_status != ?`,
		farmID, types.PaymentCancelled)
	if err != nil {
		return nil, fmt.Errorf("counting today's sales: %w", err)
	}

	err = db.Get(&stats.RevenueToday,
		`SELECT COALESCE(SUM(final_amount), 0) FROM sales
         WHERE farm_id = ? AND date(sale_date) = date('now') AND payment_status != ?`,
		farmID, types.PaymentCancelled)
	if err != nil {
		return nil, fmt.Errorf("summing today's revenue: %w", err)
	}

	err = db.Get(&stats.RevenueMonth,
		`SELECT COALESCE(SUM(final_amount), 0) FROM sales
         WHERE farm_id = ? AND strftime('%Y-%m', sale_date) = strftime('%Y-%m', 'now')
           AND payment_status != ?`,
		farmID, types.PaymentCancelled)
	if err != nil {
		return nil, fmt.Errorf("summing month revenue: %w", err)
	}

	err = db.Get(&stats.ExpensesMonth,
		`SELECT COALESCE(SUM(total_price), 0) FROM inventory_transactions
         WHERE farm_id = ? AND transaction_type = ?
           AND strftime('%Y-%m', date) = strftime('%Y-%m', 'now')`,
		farmID, types.TxnPurchase)
	if err != nil {
		return nil, fmt.Errorf("summing month expenses: %w", err)
	}

	stats.ProfitMonth = stats.RevenueMonth - stats.ExpensesMonth
	return &stats, nil
}
