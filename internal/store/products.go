// Product repository.
// Implements: prd004-entity-tables R3 (product operations, low-stock read).
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/agriposplus/agripos/pkg/types"
)

// ProductRepo provides typed operations over products.
type ProductRepo struct {
	s *Store
}

// List returns a farm's products sorted by name ascending.
func (r *ProductRepo) List(farmID int64) ([]types.Product, error) {
	db, err := r.s.conn()
	if err != nil {
		return nil, err
	}

	products := []types.Product{}
	err = db.Select(&products,
		"SELECT * FROM products WHERE farm_id = ? ORDER BY name", farmID)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	return products, nil
}

// ListByType returns a farm's products of one flow type (input, output,
// asset, service), sorted by name.
func (r *ProductRepo) ListByType(farmID int64, productType string) ([]types.Product, error) {
	db, err := r.s.conn()
	if err != nil {
		return nil, err
	}

	products := []types.Product{}
	err = db.Select(&products,
		"SELECT * FROM products WHERE farm_id = ? AND type = ? ORDER BY name",
		farmID, productType)
	if err != nil {
		return nil, fmt.Errorf("listing products by type: %w", err)
	}
	return products, nil
}

// LowStock returns the farm's products at or below their reorder level
// (quantity <= min_quantity).
func (r *ProductRepo) LowStock(farmID int64) ([]types.Product, error) {
	db, err := r.s.conn()
	if err != nil {
		return nil, err
	}

	products := []types.Product{}
	err = db.Select(&products,
		"SELECT * FROM products WHERE farm_id = ? AND quantity <= min_quantity ORDER BY name",
		farmID)
	if err != nil {
		return nil, fmt.Errorf("listing low-stock products: %w", err)
	}
	return products, nil
}

// Get retrieves one product by ID.
func (r *ProductRepo) Get(id string) (*types.Product, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	db, err := r.s.conn()
	if err != nil {
		return nil, err
	}

	var p types.Product
	err = db.Get(&p, "SELECT * FROM products WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting product %s: %w", id, err)
	}
	return &p, nil
}

// Save persists a product. An empty ID mints a new opaque identifier;
// otherwise the row is inserted or updated depending on whether the ID
// already exists, so callers can construct records in memory (ID
// included) before the first write. created_at and updated_at come from
// the schema defaults on insert; updates do not refresh updated_at.
func (r *ProductRepo) Save(p *types.Product) (string, error) {
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

	exists, err := rowExists(db, "products", p.ID)
	if err != nil {
		return "", err
	}

	if exists {
		_, err = db.NamedExec(
			`UPDATE products
             SET farm_id = :farm_id, name = :name, category = :category, type = :type,
                 description = :description, sku = :sku, unit = :unit, price = :price,
                 cost = :cost, quantity = :quantity, min_quantity = :min_quantity,
                 image = :image
             WHERE id = :id`,
			p,
		)
	} else {
		_, err = db.NamedExec(
			`INSERT INTO products (id, farm_id, name, category, type, description, sku,
                 unit, price, cost, quantity, min_quantity, image)
             VALUES (:id, :farm_id, :name, :category, :type, :description, :sku,
                 :unit, :price, :cost, :quantity, :min_quantity, :image)`,
			p,
		)
	}
	if err != nil {
		return "", fmt.Errorf("persisting product: %w", err)
	}
	return p.ID, nil
}

// Delete removes a product; cascades take its inventory transactions and
// sale items with it.
func (r *ProductRepo) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	db, err := r.s.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting product %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting product %s: %w", id, err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}
