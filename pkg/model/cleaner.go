package model

// Availability time-slot tags. "Full Time" is a derived alias: it is present
// exactly when all three sub-slots are selected.
const (
	AvailabilityFullTime  = "Full Time"
	AvailabilityMorning   = "Morning"
	AvailabilityAfternoon = "Afternoon"
	AvailabilityEvening   = "Evening"
)

// subSlots in canonical order; normalization output preserves this order.
var subSlots = []string{AvailabilityMorning, AvailabilityAfternoon, AvailabilityEvening}

// Cleaner is one service provider.
type Cleaner struct {
	ID          string      `json:"_id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name        string      `json:"name" bson:"name" validate:"required,min=2,max=100"`
	NationalID  string      `json:"nationalId,omitempty" bson:"nationalId,omitempty" validate:"omitempty,max=50"`
	Address     Address     `json:"address" bson:"address"`
	ContactInfo ContactInfo `json:"contactInfo" bson:"contactInfo" validate:"required"`

	// Availability is restricted to the tag constants above and kept
	// normalized on every write (see NormalizeAvailability).
	Availability []string `json:"availability" bson:"availability"`

	// CurrentBookings is the set of booking ids this cleaner is handling
	// now. Ids are removed on reassignment and on transition to
	// Cancelled/Completed.
	CurrentBookings []string `json:"currentBookings" bson:"currentBookings"`
}

// CleanerUpdate is a partial-update payload; nil fields are left untouched.
type CleanerUpdate struct {
	Name         *string      `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	NationalID   *string      `json:"nationalId,omitempty" validate:"omitempty,max=50"`
	Address      *Address     `json:"address,omitempty"`
	ContactInfo  *ContactInfo `json:"contactInfo,omitempty"`
	Availability *[]string    `json:"availability,omitempty"`
}

// NormalizeAvailability restricts tags to the known set, removes duplicates,
// and enforces the "Full Time" invariant: the alias is present iff Morning,
// Afternoon and Evening are all present. When any sub-slot tag is present the
// sub-slots are authoritative and a stale "Full Time" is dropped; "Full Time"
// on its own selects all three. Output is in canonical order, alias first.
func NormalizeAvailability(tags []string) []string {
	selected := make(map[string]bool, len(subSlots))
	fullTime := false
	for _, tag := range tags {
		switch tag {
		case AvailabilityFullTime:
			fullTime = true
		case AvailabilityMorning, AvailabilityAfternoon, AvailabilityEvening:
			selected[tag] = true
		}
	}
	if fullTime && len(selected) == 0 {
		for _, slot := range subSlots {
			selected[slot] = true
		}
	}

	result := make([]string, 0, len(subSlots)+1)
	if selected[AvailabilityMorning] && selected[AvailabilityAfternoon] && selected[AvailabilityEvening] {
		result = append(result, AvailabilityFullTime)
	}
	for _, slot := range subSlots {
		if selected[slot] {
			result = append(result, slot)
		}
	}
	return result
}
