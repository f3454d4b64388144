package types

import "fmt"

// Crop statuses. A crop progresses planned -> planted -> growing ->
// harvested; failed is a parallel terminal status reachable from any
// non-terminal one.
// Implements: prd001-store-core R3.2.
const (
	CropPlanned   = "planned"
	CropPlanted   = "planted"
	CropGrowing   = "growing"
	CropHarvested = "harvested"
	CropFailed    = "failed"
)

// validCropStatuses is the set of recognized crop status values.
var validCropStatuses = map[string]bool{
	CropPlanned:   true,
	CropPlanted:   true,
	CropGrowing:   true,
	CropHarvested: true,
	CropFailed:    true,
}

// cropNext maps each non-terminal status to its successor.
var cropNext = map[string]string{
	CropPlanned: CropPlanted,
	CropPlanted: CropGrowing,
	CropGrowing: CropHarvested,
}

// Crop event types recorded on a crop's timeline.
const (
	CropEventPlanting      = "planting"
	CropEventIrrigation    = "irrigation"
	CropEventFertilization = "fertilization"
	CropEventPesticide     = "pesticide"
	CropEventWeeding       = "weeding"
	CropEventPruning       = "pruning"
	CropEventHarvest       = "harvest"
	CropEventOther         = "other"
)

// Crop represents one planting owned by a farm, optionally sited on a plot.
type Crop struct {
	ID                  string  `db:"id" json:"id"`
	FarmID              int64   `db:"farm_id" json:"farm_id"`
	Name                string  `db:"name" json:"name"`
	CropType            string  `db:"crop_type" json:"crop_type"`
	Variety             string  `db:"variety" json:"variety"`
	PlotID              string  `db:"plot_id" json:"plot_id"`
	Status              string  `db:"status" json:"status"`
	PlantingDate        string  `db:"planting_date" json:"planting_date"`
	ExpectedHarvestDate string  `db:"expected_harvest_date" json:"expected_harvest_date"`
	ActualHarvestDate   string  `db:"actual_harvest_date" json:"actual_harvest_date"`
	SeedQuantity        float64 `db:"seed_quantity" json:"seed_quantity"`
	SeedUnit            string  `db:"seed_unit" json:"seed_unit"`
	Notes               string  `db:"notes" json:"notes"`
	CreatedAt           string  `db:"created_at" json:"created_at"`
	UpdatedAt           string  `db:"updated_at" json:"updated_at"`
}

// SetStatus sets the status to the given value.
// Returns ErrInvalidStatus if the value is not recognized. Transition
// legality is not checked here; use Advance and Fail for that.
func (c *Crop) SetStatus(status string) error {
	if !validCropStatuses[status] {
		return ErrInvalidStatus
	}
	c.Status = status
	return nil
}

// Advance moves the crop to the next status in the lifecycle.
// Returns ErrInvalidTransition when the crop is harvested or failed.
func (c *Crop) Advance() error {
	next, ok := cropNext[c.Status]
	if !ok {
		return fmt.Errorf("%w: cannot advance from %q", ErrInvalidTransition, c.Status)
	}
	c.Status = next
	return nil
}

// Fail marks the crop as failed. Legal from any non-terminal status;
// idempotent when already failed.
func (c *Crop) Fail() error {
	if c.Status == CropFailed {
		return nil
	}
	if c.Status == CropHarvested {
		return fmt.Errorf("%w: cannot fail a harvested crop", ErrInvalidTransition)
	}
	c.Status = CropFailed
	return nil
}

// CropEvent is one timeline entry owned by a crop. Deleting the crop
// cascades to its events.
type CropEvent struct {
	ID          string  `db:"id" json:"id"`
	CropID      string  `db:"crop_id" json:"crop_id"`
	EventType   string  `db:"event_type" json:"event_type"`
	EventDate   string  `db:"event_date" json:"event_date"`
	Description string  `db:"description" json:"description"`
	ProductUsed string  `db:"product_used" json:"product_used"`
	Quantity    float64 `db:"quantity" json:"quantity"`
	Unit        string  `db:"unit" json:"unit"`
	Notes       string  `db:"notes" json:"notes"`
	CreatedAt   string  `db:"created_at" json:"created_at"`
}
