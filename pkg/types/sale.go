package types

// Sale payment statuses. A sale row is never deleted to represent
// cancellation; payment_status carries the lifecycle instead.
const (
	PaymentPaid      = "paid"
	PaymentPartial   = "partial"
	PaymentPending   = "pending"
	PaymentCancelled = "cancelled"
)

// validPaymentStatuses is the set of recognized payment status values.
var validPaymentStatuses = map[string]bool{
	PaymentPaid:      true,
	PaymentPartial:   true,
	PaymentPending:   true,
	PaymentCancelled: true,
}

// Sale is an invoice owned by a farm.
type Sale struct {
	ID              string  `db:"id" json:"id"`
	FarmID          int64   `db:"farm_id" json:"farm_id"`
	InvoiceNumber   string  `db:"invoice_number" json:"invoice_number"`
	CustomerName    string  `db:"customer_name" json:"customer_name"`
	CustomerContact string  `db:"customer_contact" json:"customer_contact"`
	SaleDate        string  `db:"sale_date" json:"sale_date"`
	TotalAmount     float64 `db:"total_amount" json:"total_amount"`
	DiscountAmount  float64 `db:"discount_amount" json:"discount_amount"`
	TaxAmount       float64 `db:"tax_amount" json:"tax_amount"`
	FinalAmount     float64 `db:"final_amount" json:"final_amount"`
	PaymentMethod   string  `db:"payment_method" json:"payment_method"`
	PaymentStatus   string  `db:"payment_status" json:"payment_status"`
	Notes           string  `db:"notes" json:"notes"`
	CreatedAt       string  `db:"created_at" json:"created_at"`
}

// SetPaymentStatus sets the payment status to the given value.
// Returns ErrInvalidStatus if the value is not recognized.
func (s *Sale) SetPaymentStatus(status string) error {
	if !validPaymentStatuses[status] {
		return ErrInvalidStatus
	}
	s.PaymentStatus = status
	return nil
}

// SaleItem is one invoice line. The row is owned by both its sale and its
// product; deleting either parent cascades to the item.
type SaleItem struct {
	ID                 string  `db:"id" json:"id"`
	SaleID             string  `db:"sale_id" json:"sale_id"`
	ProductID          string  `db:"product_id" json:"product_id"`
	Quantity           float64 `db:"quantity" json:"quantity"`
	UnitPrice          float64 `db:"unit_price" json:"unit_price"`
	DiscountPercentage float64 `db:"discount_percentage" json:"discount_percentage"`
	TaxPercentage      float64 `db:"tax_percentage" json:"tax_percentage"`
	TotalPrice         float64 `db:"total_price" json:"total_price"`
	CreatedAt          string  `db:"created_at" json:"created_at"`
}
