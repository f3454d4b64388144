// Sale and sale item repositories.
// Implements: prd004-entity-tables R8 (sale operations);
//
//	prd004-entity-tables R9 (atomic sale recording).
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/agriposplus/agripos/pkg/types"
)

// SaleRepo provides typed operations over sales and sale_items.
type SaleRepo struct {
	s *Store
}

// List returns a farm's sales, most recent sale date first.
func (r *SaleRepo) List(farmID int64) ([]types.Sale, error) {
	db, err := r.s.conn()
	if err != nil {
		return nil, err
	}

	sales := []types.Sale{}
	err = db.Select(&sales,
		"SELECT * FROM sales WHERE farm_id = ? ORDER BY sale_date DESC", farmID)
	if err != nil {
		return nil, fmt.Errorf("listing sales: %w", err)
	}
	return sales, nil
}

// ListByStatus returns a farm's sales with the given payment status.
func (r *SaleRepo) ListByStatus(farmID int64, status string) ([]types.Sale, error) {
	db, err := r.s.conn()
	if err != nil {
		return nil, err
	}

	sales := []types.Sale{}
	err = db.Select(&sales,
		"SELECT * FROM sales WHERE farm_id = ? AND payment_status = ? ORDER BY sale_date DESC",
		farmID, status)
	if err != nil {
		return nil, fmt.Errorf("listing sales by status: %w", err)
	}
	return sales, nil
}

// ListByDateRange returns a farm's sales with sale_date in [from, to],
// both bounds inclusive, most recent first.
func (r *SaleRepo) ListByDateRange(farmID int64, from, to string) ([]types.Sale, error) {
	if from == "" || to == "" {
		return nil, types.ErrInvalidFilter
	}
	db, err := r.s.conn()
	if err != nil {
		return nil, err
	}

	sales := []types.Sale{}
	err = db.Select(&sales,
		`SELECT * FROM sales
         WHERE farm_id = ? AND sale_date >= ? AND sale_date <= ?
         ORDER BY sale_date DESC`,
		farmID, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing sales by date: %w", err)
	}
	return sales, nil
}

// Get retrieves one sale by ID.
func (r *SaleRepo) Get(id string) (*types.Sale, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	db, err := r.s.conn()
	if err != nil {
		return nil, err
	}

	var s types.Sale
	err = db.Get(&s, "SELECT * FROM sales WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting sale %s: %w", id, err)
	}
	return &s, nil
}

// Items returns a sale's line items in insertion order.
func (r *SaleRepo) Items(saleID string) ([]types.SaleItem, error) {
	if saleID == "" {
		return nil, types.ErrInvalidID
	}
	db, err := r.s.conn()
	if err != nil {
		return nil, err
	}

	items := []types.SaleItem{}
	err = db.Select(&items,
		"SELECT * FROM sale_items WHERE sale_id = ? ORDER BY created_at", saleID)
	if err != nil {
		return nil, fmt.Errorf("listing sale items: %w", err)
	}
	return items, nil
}

// Save persists a sale header only, minting an ID when absent. Use
// RecordSale to write a sale with its items and stock effects.
func (r *SaleRepo) Save(s *types.Sale) (string, error) {
	if s == nil {
		return "", types.ErrInvalidData
	}
	if s.SaleDate == "" {
		return "", types.ErrInvalidData
	}
	if s.ID == "" {
		s.ID = types.NewID()
	}
	if s.PaymentStatus == "" {
		s.PaymentStatus = types.PaymentPending
	}

	db, err := r.s.conn()
	if err != nil {
		return "", err
	}

	exists, err := rowExists(db, "sales", s.ID)
	if err != nil {
		return "", err
	}

	if exists {
		_, err = db.NamedExec(
			`UPDATE sales
             SET farm_id = :farm_id, invoice_number = :invoice_number,
                 customer_name = :customer_name, customer_contact = :customer_contact,
                 sale_date = :sale_date, total_amount = :total_amount,
                 discount_amount = :discount_amount, tax_amount = :tax_amount,
                 final_amount = :final_amount, payment_method = :payment_method,
                 payment_status = :payment_status, notes = :notes
             WHERE id = :id`,
			s,
		)
	} else {
		_, err = db.NamedExec(
			`INSERT INTO sales (id, farm_id, invoice_number, customer_name,
                 customer_contact, sale_date, total_amount, discount_amount,
                 tax_amount, final_amount, payment_method, payment_status, notes)
             VALUES (:id, :farm_id, :invoice_number, :customer_name,
                 :customer_contact, :sale_date, :total_amount, :discount_amount,
                 :tax_amount, :final_amount, :payment_method, :payment_status, :notes)`,
			s,
		)
	}
	if err != nil {
		return "", fmt.Errorf("persisting sale: %w", err)
	}
	return s.ID, nil
}

// RecordSale writes a sale, its line items, one inventory transaction
// per item, and the matching product quantity decrements as a single
// transaction. Any failure rolls the whole sale back: a recorded sale
// with undecremented stock is a correctness defect, not a degraded mode.
//
// The caller constructs the sale and items in memory with pre-minted IDs
// before calling; items with an empty SaleID inherit the sale's.
func (r *SaleRepo) RecordSale(s *types.Sale, items []types.SaleItem) (string, error) {
	if s == nil || len(items) == 0 {
		return "", types.ErrInvalidData
	}
	if s.SaleDate == "" {
		return "", types.ErrInvalidData
	}
	if s.ID == "" {
		s.ID = types.NewID()
	}
	if s.PaymentStatus == "" {
		s.PaymentStatus = types.PaymentPending
	}

	db, err := r.s.conn()
	if err != nil {
		return "", err
	}

	tx, err := db.Beginx()
	if err != nil {
		return "", fmt.Errorf("beginning sale transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.NamedExec(
		`INSERT INTO sales (id, farm_id, invoice_number, customer_name,
             customer_contact, sale_date, total_amount, discount_amount,
             tax_amount, final_amount, payment_method, payment_status, notes)
         VALUES (:id, :farm_id, :invoice_number, :customer_name,
             :customer_contact, :sale_date, :total_amount, :discount_amount,
             :tax_amount, :final_amount, :payment_method, :payment_status, :notes)`,
		s,
	)
	if err != nil {
		return "", fmt.Errorf("inserting sale: %w", err)
	}

	for i := range items {
		item := &items[i]
		if item.ID == "" {
			item.ID = types.NewID()
		}
		if item.SaleID == "" {
			item.SaleID = s.ID
		}

		_, err = tx.NamedExec(
			`INSERT INTO sale_items (id, sale_id, product_id, quantity, unit_price,
                 discount_percentage, tax_percentage, total_price)
             VALUES (:id, :sale_id, :product_id, :quantity, :unit_price,
                 :discount_percentage, :tax_percentage, :total_price)`,
			item,
		)
		if err != nil {
			return "", fmt.Errorf("inserting sale item: %w", err)
		}

		_, err = tx.Exec(
			"UPDATE products SET quantity = quantity - ? WHERE id = ?",
			item.Quantity, item.ProductID,
		)
		if err != nil {
			return "", fmt.Errorf("decrementing stock for %s: %w", item.ProductID, err)
		}

		_, err = tx.Exec(
			`INSERT INTO inventory_transactions (id, farm_id, product_id,
                 transaction_type, quantity, unit_price, total_price, date, source, notes)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			types.NewID(), s.FarmID, item.ProductID, types.TxnSale,
			item.Quantity, item.UnitPrice, item.TotalPrice, s.SaleDate,
			s.ID, "",
		)
		if err != nil {
			return "", fmt.Errorf("recording stock movement for %s: %w", item.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing sale: %w", err)
	}
	return s.ID, nil
}

// Delete removes a sale and, via cascade, its line items. The inventory
// transactions the sale produced stay: movement history is append-only.
func (r *SaleRepo) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	db, err := r.s.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM sales WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting sale %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting sale %s: %w", id, err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}
