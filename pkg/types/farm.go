package types

// Farm is the root tenant entity. Every other entity is scoped to exactly
// one farm through its farm_id column.
// Implements: prd001-store-core R2.
type Farm struct {
	// ID is a sequential numeric surrogate key assigned by the store.
	// Zero means the farm has not been persisted yet; Save treats a zero
	// ID as an insert and a non-zero ID as an update.
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Address   string    `db:"address" json:"address"`
	Owner     string    `db:"owner" json:"owner"`
	Phone     string    `db:"phone" json:"phone"`
	Email     string    `db:"email" json:"email"`
	TaxID     string    `db:"tax_id" json:"tax_id"`
	Notes     string    `db:"notes" json:"notes"`
	Modules   ModuleSet `db:"modules" json:"modules"`
	CreatedAt string    `db:"created_at" json:"created_at"`
	UpdatedAt string    `db:"updated_at" json:"updated_at"`
}
