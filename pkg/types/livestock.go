package types

// Livestock statuses. An animal starts active and leaves that status
// exactly once; there is no transition back to active. Rows are never
// soft-deleted -- the status keeps history without removing it.
// Implements: prd001-store-core R3.1.
const (
	LivestockActive      = "active"
	LivestockSold        = "sold"
	LivestockDeceased    = "deceased"
	LivestockTransferred = "transferred"
)

// validLivestockStatuses is the set of recognized livestock status values.
var validLivestockStatuses = map[string]bool{
	LivestockActive:      true,
	LivestockSold:        true,
	LivestockDeceased:    true,
	LivestockTransferred: true,
}

// Livestock event types recorded on an animal's timeline.
const (
	LivestockEventBirth       = "birth"
	LivestockEventPurchase    = "purchase"
	LivestockEventSale        = "sale"
	LivestockEventHealth      = "health"
	LivestockEventFeed        = "feed"
	LivestockEventWeight      = "weight"
	LivestockEventBreeding    = "breeding"
	LivestockEventVaccination = "vaccination"
	LivestockEventMedication  = "medication"
	LivestockEventDeath       = "death"
	LivestockEventOther       = "other"
)

// Livestock represents one animal owned by a farm.
type Livestock struct {
	ID              string  `db:"id" json:"id"`
	FarmID          int64   `db:"farm_id" json:"farm_id"`
	Name            string  `db:"name" json:"name"`
	Species         string  `db:"species" json:"species"`
	Breed           string  `db:"breed" json:"breed"`
	TagID           string  `db:"tag_id" json:"tag_id"`
	Status          string  `db:"status" json:"status"`
	BirthDate       string  `db:"birth_date" json:"birth_date"`
	AcquisitionDate string  `db:"acquisition_date" json:"acquisition_date"`
	AcquisitionCost float64 `db:"acquisition_cost" json:"acquisition_cost"`
	GroupID         string  `db:"group_id" json:"group_id"`
	ParentFemale    string  `db:"parent_female" json:"parent_female"`
	ParentMale      string  `db:"parent_male" json:"parent_male"`
	Notes           string  `db:"notes" json:"notes"`
	Image           string  `db:"image" json:"image"`
	CreatedAt       string  `db:"created_at" json:"created_at"`
	UpdatedAt       string  `db:"updated_at" json:"updated_at"`
}

// SetStatus sets the status to the given value.
// Returns ErrInvalidStatus if the value is not recognized. The store does
// not enforce transition legality; callers wanting enforcement use the
// Mark helpers below.
func (l *Livestock) SetStatus(status string) error {
	if !validLivestockStatuses[status] {
		return ErrInvalidStatus
	}
	l.Status = status
	return nil
}

// MarkSold transitions the animal from active to sold.
// Returns ErrInvalidTransition if the animal is not active.
func (l *Livestock) MarkSold() error {
	return l.leaveActive(LivestockSold)
}

// MarkDeceased transitions the animal from active to deceased.
// Returns ErrInvalidTransition if the animal is not active.
func (l *Livestock) MarkDeceased() error {
	return l.leaveActive(LivestockDeceased)
}

// MarkTransferred transitions the animal from active to transferred.
// Returns ErrInvalidTransition if the animal is not active.
func (l *Livestock) MarkTransferred() error {
	return l.leaveActive(LivestockTransferred)
}

// leaveActive performs the one legal transition family: active to a
// terminal status. Idempotent when already in the target status.
func (l *Livestock) leaveActive(target string) error {
	if l.Status == target {
		return nil
	}
	if l.Status != LivestockActive {
		return ErrInvalidTransition
	}
	l.Status = target
	return nil
}

// LivestockEvent is one timeline entry owned by an animal. Deleting the
// animal cascades to its events.
type LivestockEvent struct {
	ID          string  `db:"id" json:"id"`
	LivestockID string  `db:"livestock_id" json:"livestock_id"`
	EventType   string  `db:"event_type" json:"event_type"`
	EventDate   string  `db:"event_date" json:"event_date"`
	Description string  `db:"description" json:"description"`
	Value       float64 `db:"value" json:"value"`
	Notes       string  `db:"notes" json:"notes"`
	CreatedAt   string  `db:"created_at" json:"created_at"`
}
