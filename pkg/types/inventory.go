package types

// Inventory transaction types.
const (
	TxnPurchase   = "purchase"
	TxnSale       = "sale"
	TxnAdjustment = "adjustment"
	TxnTransfer   = "transfer"
	TxnProduction = "production"
	TxnLoss       = "loss"
)

// InventoryTransaction records one stock movement for a product.
// The row is owned by both its farm and its product; deleting either
// parent cascades to the transaction.
type InventoryTransaction struct {
	ID              string  `db:"id" json:"id"`
	FarmID          int64   `db:"farm_id" json:"farm_id"`
	ProductID       string  `db:"product_id" json:"product_id"`
	TransactionType string  `db:"transaction_type" json:"transaction_type"`
	Quantity        float64 `db:"quantity" json:"quantity"`
	UnitPrice       float64 `db:"unit_price" json:"unit_price"`
	TotalPrice      float64 `db:"total_price" json:"total_price"`
	Date            string  `db:"date" json:"date"`
	Source          string  `db:"source" json:"source"`
	Notes           string  `db:"notes" json:"notes"`
	CreatedAt       string  `db:"created_at" json:"created_at"`
}
