package types

import "errors"

// Store lifecycle errors (prd001-store-core R6.1).
var ErrStoreClosed = errors.New("store is closed")

// Repository operation errors (prd001-store-core R6.2).
var (
	ErrNotFound    = errors.New("entity not found")
	ErrInvalidID   = errors.New("invalid entity ID")
	ErrInvalidData = errors.New("invalid entity data")
	ErrInvalidName = errors.New("invalid name")
)

// Entity method errors (prd001-store-core R6.3).
var (
	ErrInvalidStatus     = errors.New("invalid status value")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidModule     = errors.New("unknown module tag")
	ErrInvalidFilter     = errors.New("invalid filter value")
)
