package domain

import "time"

// SnapshotVersion is the current serialized itinerary layout version.
// Snapshots with a different version are treated as absent on read.
const SnapshotVersion = 1

// Itinerary is the traveller's in-progress collection of selected flights,
// hotels, and activities. Collections are insertion-ordered; order is display
// order only.
type Itinerary struct {
	// Version is the snapshot layout version, set on persistence
	Version int `json:"version"`

	Flights    []Flight   `json:"flights"`
	Hotels     []Hotel    `json:"hotels"`
	Activities []Activity `json:"activities"`

	// UpdatedAt is the time of the last mutation
	UpdatedAt time.Time `json:"updated_at"`
}

// NewItinerary returns an empty itinerary with non-nil collections.
func NewItinerary() *Itinerary {
	return &Itinerary{
		Version:    SnapshotVersion,
		Flights:    []Flight{},
		Hotels:     []Hotel{},
		Activities: []Activity{},
	}
}

// AddFlight appends a flight to the itinerary. The caller supplies a
// well-formed record with a unique id; no deduplication is applied.
func (it *Itinerary) AddFlight(f Flight) {
	it.Flights = append(it.Flights, f)
}

// AddHotel appends a hotel to the itinerary.
func (it *Itinerary) AddHotel(h Hotel) {
	it.Hotels = append(it.Hotels, h)
}

// AddActivity appends an activity to the itinerary.
func (it *Itinerary) AddActivity(a Activity) {
	it.Activities = append(it.Activities, a)
}

// RemoveItem removes the first item with the matching id from the collection
// for the given type. Removing an absent id is a no-op; it reports whether an
// item was removed.
func (it *Itinerary) RemoveItem(itemType ItemType, id string) bool {
	switch itemType {
	case ItemTypeFlight:
		for i, f := range it.Flights {
			if f.ID == id {
				it.Flights = append(it.Flights[:i], it.Flights[i+1:]...)
				return true
			}
		}
	case ItemTypeHotel:
		for i, h := range it.Hotels {
			if h.ID == id {
				it.Hotels = append(it.Hotels[:i], it.Hotels[i+1:]...)
				return true
			}
		}
	case ItemTypeActivity:
		for i, a := range it.Activities {
			if a.ID == id {
				it.Activities = append(it.Activities[:i], it.Activities[i+1:]...)
				return true
			}
		}
	}
	return false
}

// Clear empties all three collections.
func (it *Itinerary) Clear() {
	it.Flights = []Flight{}
	it.Hotels = []Hotel{}
	it.Activities = []Activity{}
}

// Count returns the total number of items across all collections.
func (it *Itinerary) Count() int {
	return len(it.Flights) + len(it.Hotels) + len(it.Activities)
}

// IsEmpty reports whether all three collections are empty.
func (it *Itinerary) IsEmpty() bool {
	return it.Count() == 0
}

// TotalCost sums the numeric value parsed out of each item's price display
// string across all three collections. The result is a plain number with no
// currency label; prices in mixed currencies are summed as-is.
func (it *Itinerary) TotalCost() float64 {
	var total float64
	for _, f := range it.Flights {
		total += ExtractPrice(f.Price)
	}
	for _, h := range it.Hotels {
		total += ExtractPrice(h.Price)
	}
	for _, a := range it.Activities {
		total += ExtractPrice(a.Price)
	}
	return total
}

// ValidationResult holds the outcome of an itinerary validation pass.
// Warnings are advisory; only errors make the itinerary invalid.
type ValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Warnings []string `json:"warnings"`
	Errors   []string `json:"errors"`
}

// Validate runs the advisory checks over the itinerary. An empty itinerary
// produces a warning, not an error. Cross-item date conflict checking is
// deliberately not part of the contract.
func (it *Itinerary) Validate() ValidationResult {
	result := ValidationResult{
		Warnings: []string{},
		Errors:   []string{},
	}

	if it.IsEmpty() {
		result.Warnings = append(result.Warnings, "Your itinerary is empty")
	}

	result.IsValid = len(result.Errors) == 0
	return result
}
