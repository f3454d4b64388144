// Package types defines the entity structs, status enumerations, module
// tags, and standard error values for the AgriPOS storage system.
// Implements: prd001-store-core (Config, entity types, error types);
//
//	docs/ARCHITECTURE § Data Model.
package types
