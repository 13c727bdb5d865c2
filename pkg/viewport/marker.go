package viewport

import (
	"github.com/myyapa/discover/pkg/datastructure"
)

// Tier is the visual weight of a place marker. Selected beats active/inactive.
type Tier int

const (
	TIER_INACTIVE Tier = iota
	TIER_ACTIVE
	TIER_SELECTED
)

func (t Tier) String() string {
	switch t {
	case TIER_SELECTED:
		return "selected"
	case TIER_ACTIVE:
		return "active"
	default:
		return "inactive"
	}
}

func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Filter is the active category filter as the marker logic sees it: either the "all"
// state, or the id-set of places the filter kept.
type Filter struct {
	all bool
	ids map[string]bool
}

func AllFilter() Filter {
	return Filter{all: true}
}

func IDFilter(ids []string) Filter {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return Filter{ids: set}
}

func (f Filter) All() bool {
	return f.all
}

func (f Filter) Contains(id string) bool {
	return f.all || f.ids[id]
}

// Marker is the per-place render decision: the emphasis tier plus the saved glyph
// decoration. Saved never changes the tier, only the glyph.
type Marker struct {
	PlaceID string `json:"place_id"`
	Tier    Tier   `json:"tier"`
	Saved   bool   `json:"saved"`
}

// MarkerFor derives one place's marker for the current render. selectedID may be empty.
func MarkerFor(place datastructure.Place, selectedID string, filter Filter, saved map[string]bool) Marker {
	marker := Marker{
		PlaceID: place.ID,
		Saved:   saved[place.ID],
	}
	switch {
	case place.ID == selectedID && selectedID != "":
		marker.Tier = TIER_SELECTED
	case filter.Contains(place.ID):
		marker.Tier = TIER_ACTIVE
	default:
		marker.Tier = TIER_INACTIVE
	}
	return marker
}

// Markers derives markers for a whole place snapshot, preserving input order.
func Markers(places []datastructure.Place, selectedID string, filter Filter, saved map[string]bool) []Marker {
	markers := make([]Marker, 0, len(places))
	for _, place := range places {
		markers = append(markers, MarkerFor(place, selectedID, filter, saved))
	}
	return markers
}
