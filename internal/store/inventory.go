// Inventory transaction repository.
// Implements: prd004-entity-tables R7 (stock movement log).
package store

import (
	"fmt"

	"github.com/agriposplus/agripos/pkg/types"
)

// InventoryRepo provides typed operations over inventory_transactions.
// Transactions are append-only movement records; they are owned by both
// a farm and a product and disappear with either parent.
type InventoryRepo struct {
	s *Store
}

// Record appends one stock movement. Both parents must exist; the
// foreign keys reject a dangling farm_id or product_id.
func (r *InventoryRepo) Record(txn *types.InventoryTransaction) (string, error) {
	if txn == nil {
		return "", types.ErrInvalidData
	}
	if txn.ProductID == "" || txn.TransactionType == "" || txn.Date == "" {
		return "", types.ErrInvalidData
	}
	if txn.ID == "" {
		txn.ID = types.NewID()
	}

	db, err := r.s.conn()
	if err != nil {
		return "", err
	}

	_, err = db.NamedExec(
		`INSERT INTO inventory_transactions (id, farm_id, product_id, transaction_type,
             quantity, unit_price, total_price, date, source, notes)
         VALUES (:id, :farm_id, :product_id, :transaction_type,
             :quantity, :unit_price, :total_price, :date, :source, :notes)`,
		txn,
	)
	if err != nil {
		return "", fmt.Errorf("recording inventory transaction: %w", err)
	}
	return txn.ID, nil
}

// List returns a farm's stock movements, most recent date first.
func (r *InventoryRepo) List(farmID int64) ([]types.InventoryTransaction, error) {
	db, err := r.s.conn()
	if err != nil {
		return nil, err
	}

	txns := []types.InventoryTransaction{}
	err = db.Select(&txns,
		"SELECT * FROM inventory_transactions WHERE farm_id = ? ORDER BY date DESC",
		farmID)
	if err != nil {
		return nil, fmt.Errorf("listing inventory transactions: %w", err)
	}
	return txns, nil
}

// ListByProduct returns the movements of one product, most recent first.
func (r *InventoryRepo) ListByProduct(productID string) ([]types.InventoryTransaction, error) {
	if productID == "" {
		return nil, types.ErrInvalidID
	}
	db, err := r.s.conn()
	if err != nil {
		return nil, err
	}

	txns := []types.InventoryTransaction{}
	err = db.Select(&txns,
		"SELECT * FROM inventory_transactions WHERE product_id = ? ORDER BY date DESC",
		productID)
	if err != nil {
		return nil, fmt.Errorf("listing inventory transactions by product: %w", err)
	}
	return txns, nil
}

// ListByDateRange returns a farm's movements with date in [from, to],
// both bounds inclusive, most recent first. Dates compare as ISO-8601
// strings, the format every caller writes.
func (r *InventoryRepo) ListByDateRange(farmID int64, from, to string) ([]types.InventoryTransaction, error) {
	if from == "" || to == "" {
		return nil, types.ErrInvalidFilter
	}
	db, err := r.s.conn()
	if err != nil {
		return nil, err
	}

	txns := []types.InventoryTransaction{}
	err = db.Select(&txns,
		`SELECT * FROM inventory_transactions
         WHERE farm_id = ? AND date >= ? AND date <= ?
         ORDER BY date DESC`,
		farmID, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing inventory transactions by date: %w", err)
	}
	return txns, nil
}
