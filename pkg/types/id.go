package types

import "github.com/google/uuid"

// NewID mints an opaque unique identifier for a new entity row.
// Every non-farm entity is keyed by a caller-generated ID so that a parent
// and its children (a sale and its line items) can be constructed in memory
// before any write occurs (prd001-store-core R5).
func NewID() string {
	return uuid.NewString()
}
