package searcher

import (
	"fmt"
	"strings"

	"github.com/myyapa/discover/pkg/datastructure"

	"golang.org/x/exp/slices"
)

// Query carries one unified-search invocation: the raw text plus the location signals
// that decide the reference point. All fields are value snapshots; the engine reads
// nothing ambient.
type Query struct {
	Text         string
	UserFix      *datastructure.Point  // explicit geolocation fix, nil when denied/unavailable
	ActiveCampus *datastructure.Campus // campus filter picked earlier, nil when none
}

// RefPoint resolves the "distance from" anchor for this query.
func (q Query) RefPoint() datastructure.Point {
	var campusCenter *datastructure.Point
	if q.ActiveCampus != nil {
		c := q.ActiveCampus.Center()
		campusCenter = &c
	}
	return datastructure.ResolveReference(q.UserFix, campusCenter)
}

// PlaceSuggestion is one ranked place entry with its distance from the reference point.
type PlaceSuggestion struct {
	Place         datastructure.Place `json:"place"`
	DistanceMiles float64             `json:"distance_miles"`
	DistanceLabel string              `json:"distance_label"`
}

// Suggestions is the grouped result of one Suggest call: campuses first, then places,
// each with its section label. Recomputed per keystroke, never patched.
type Suggestions struct {
	CampusLabel string                 `json:"campus_label"`
	Campuses    []datastructure.Campus `json:"campuses"`
	PlaceLabel  string                 `json:"place_label"`
	Places      []PlaceSuggestion      `json:"places"`
}

// Len is the size of the concatenated list used for keyboard navigation.
func (s Suggestions) Len() int {
	return len(s.Campuses) + len(s.Places)
}

func (s Suggestions) Empty() bool {
	return s.Len() == 0
}

// Engine ranks and merges unified-search suggestions over a place snapshot and the
// static campus list.
type Engine struct {
	places   []datastructure.Place
	campuses []datastructure.Campus
}

func NewEngine(places []datastructure.Place, campuses []datastructure.Campus) *Engine {
	return &Engine{
		places:   places,
		campuses: campuses,
	}
}

// Suggest produces the two ranked, capped suggestion groups for a query. An empty query
// yields empty groups regardless of input lists; the dropdown treats that as closed.
//
// Campus matches keep source order and are capped at MAX_CAMPUS_RESULTS; the campus
// list is short and static, so distance ranking buys nothing there. Place matches are
// stable-sorted ascending by great-circle distance from the reference point and capped
// at MAX_PLACE_RESULTS. Ties on exact distance preserve input order; that is a contract,
// not an accident of the sort.
func (e *Engine) Suggest(q Query) Suggestions {
	if q.Text == "" {
		return Suggestions{}
	}

	needle := strings.ToLower(q.Text)
	refPoint := q.RefPoint()

	campuses := e.matchCampuses(needle)
	places := e.matchPlaces(needle, refPoint)

	return Suggestions{
		CampusLabel: CAMPUS_GROUP_LABEL,
		Campuses:    campuses,
		PlaceLabel:  placeGroupLabel(q),
		Places:      places,
	}
}

func (e *Engine) matchCampuses(needle string) []datastructure.Campus {
	matches := make([]datastructure.Campus, 0, MAX_CAMPUS_RESULTS)
	for _, campus := range e.campuses {
		if campusMatches(campus, needle) {
			matches = append(matches, campus)
			if len(matches) == MAX_CAMPUS_RESULTS {
				break
			}
		}
	}
	return matches
}

func campusMatches(campus datastructure.Campus, needle string) bool {
	if strings.Contains(strings.ToLower(campus.Name), needle) ||
		strings.Contains(strings.ToLower(campus.University), needle) {
		return true
	}
	for _, alias := range campus.Aliases {
		if strings.Contains(strings.ToLower(alias), needle) {
			return true
		}
	}
	return false
}

func (e *Engine) matchPlaces(needle string, refPoint datastructure.Point) []PlaceSuggestion {
	matches := []PlaceSuggestion{}
	for _, place := range e.places {
		if !placeMatches(place, needle) {
			continue
		}
		dist := datastructure.Distance(refPoint.Lat, refPoint.Lng, place.Lat, place.Lng)
		matches = append(matches, PlaceSuggestion{
			Place:         place,
			DistanceMiles: dist,
			DistanceLabel: datastructure.FormatDistance(dist),
		})
	}

	slices.SortStableFunc(matches, func(a, b PlaceSuggestion) int {
		switch {
		case a.DistanceMiles < b.DistanceMiles:
			return -1
		case a.DistanceMiles > b.DistanceMiles:
			return 1
		default:
			return 0
		}
	})

	if len(matches) > MAX_PLACE_RESULTS {
		matches = matches[:MAX_PLACE_RESULTS]
	}
	return matches
}

func placeMatches(place datastructure.Place, needle string) bool {
	if strings.Contains(strings.ToLower(place.Name), needle) {
		return true
	}
	for _, category := range place.Categories {
		if strings.Contains(strings.ToLower(category), needle) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(place.DiscountDescription), needle)
}

func placeGroupLabel(q Query) string {
	if q.ActiveCampus != nil {
		return fmt.Sprintf("Near %s", q.ActiveCampus.Name)
	}
	if q.UserFix != nil {
		return PLACE_GROUP_LABEL_NEARBY
	}
	return PLACE_GROUP_LABEL_GENERIC
}
