package types

// Product categories by flow direction (prd001-store-core R2).
const (
	ProductTypeInput   = "input"
	ProductTypeOutput  = "output"
	ProductTypeAsset   = "asset"
	ProductTypeService = "service"
)

// Product is an inventory or sales item owned by a farm.
// Price, cost and quantity default to zero at the storage layer; callers
// may omit them on insert.
type Product struct {
	ID          string  `db:"id" json:"id"`
	FarmID      int64   `db:"farm_id" json:"farm_id"`
	Name        string  `db:"name" json:"name"`
	Category    string  `db:"category" json:"category"`
	Type        string  `db:"type" json:"type"`
	Description string  `db:"description" json:"description"`
	SKU         string  `db:"sku" json:"sku"`
	Unit        string  `db:"unit" json:"unit"`
	Price       float64 `db:"price" json:"price"`
	Cost        float64 `db:"cost" json:"cost"`
	Quantity    float64 `db:"quantity" json:"quantity"`
	MinQuantity float64 `db:"min_quantity" json:"min_quantity"`
	Image       string  `db:"image" json:"image"`
	CreatedAt   string  `db:"created_at" json:"created_at"`
	UpdatedAt   string  `db:"updated_at" json:"updated_at"`
}

// LowStock reports whether the product is at or below its reorder level.
func (p *Product) LowStock() bool {
	return p.Quantity <= p.MinQuantity
}
