package types

// Plot statuses.
const (
	PlotAvailable   = "available"
	PlotInUse       = "in_use"
	PlotFallow      = "fallow"
	PlotUnavailable = "unavailable"
)

// Plot is a piece of land owned by a farm.
type Plot struct {
	ID        string  `db:"id" json:"id"`
	FarmID    int64   `db:"farm_id" json:"farm_id"`
	Name      string  `db:"name" json:"name"`
	Size      float64 `db:"size" json:"size"`
	SizeUnit  string  `db:"size_unit" json:"size_unit"`
	Location  string  `db:"location" json:"location"`
	SoilType  string  `db:"soil_type" json:"soil_type"`
	Status    string  `db:"status" json:"status"`
	Notes     string  `db:"notes" json:"notes"`
	CreatedAt string  `db:"created_at" json:"created_at"`
	UpdatedAt string  `db:"updated_at" json:"updated_at"`
}
