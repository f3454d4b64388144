package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Recognized farm module tags (prd001-store-core R2). Each tag gates a
// navigation surface in the presentation layer and has no other effect on
// the data layer.
const (
	ModuleLivestock   = "livestock"
	ModuleCrops       = "crops"
	ModuleAquaculture = "aquaculture"
	ModuleApiculture  = "apiculture"
	ModuleInsects     = "insects"
)

// validModules is the set of recognized module tag values.
var validModules = map[string]bool{
	ModuleLivestock:   true,
	ModuleCrops:       true,
	ModuleAquaculture: true,
	ModuleApiculture:  true,
	ModuleInsects:     true,
}

// ModuleSet is the set of capability tags enabled on a farm. It is
// serialized to a JSON string array in the modules column and compared
// without regard to order.
type ModuleSet []string

// NewModuleSet builds a ModuleSet from tags, dropping duplicates.
// Returns ErrInvalidModule if any tag is not recognized.
func NewModuleSet(tags ...string) (ModuleSet, error) {
	seen := make(map[string]bool, len(tags))
	var set ModuleSet
	for _, tag := range tags {
		if !validModules[tag] {
			return nil, fmt.Errorf("%w: %q", ErrInvalidModule, tag)
		}
		if seen[tag] {
			continue
		}
		seen[tag] = true
		set = append(set, tag)
	}
	return set, nil
}

// Has reports whether the set contains the given tag.
func (m ModuleSet) Has(tag string) bool {
	for _, t := range m {
		if t == tag {
			return true
		}
	}
	return false
}

// Equal reports set equality, ignoring order.
func (m ModuleSet) Equal(other ModuleSet) bool {
	if len(m) != len(other) {
		return false
	}
	for _, t := range m {
		if !other.Has(t) {
			return false
		}
	}
	return true
}

// Value serializes the set as a JSON string array for storage.
// A nil set serializes as an empty array, never NULL.
func (m ModuleSet) Value() (driver.Value, error) {
	if m == nil {
		m = ModuleSet{}
	}
	data, err := json.Marshal([]string(m))
	if err != nil {
		return nil, fmt.Errorf("marshaling modules: %w", err)
	}
	return string(data), nil
}

// Scan parses the stored JSON string array back into the set.
func (m *ModuleSet) Scan(src any) error {
	if src == nil {
		*m = ModuleSet{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("%w: modules column has type %T", ErrInvalidData, src)
	}
	if len(raw) == 0 {
		*m = ModuleSet{}
		return nil
	}
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil {
		return fmt.Errorf("parsing modules: %w", err)
	}
	*m = ModuleSet(tags)
	return nil
}
