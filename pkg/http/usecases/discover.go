package usecases

import (
	"fmt"

	"github.com/myyapa/discover/pkg/datastructure"
	"github.com/myyapa/discover/pkg/searcher"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// DiscoverService is the facade the controllers talk to: unified search, prefix
// autocomplete, place listing, and the static campus list.
type DiscoverService struct {
	log           *zap.Logger
	engine        Suggester
	autocompleter Autocompleter
	store         PlaceStore
	places        []datastructure.Place
	campuses      []datastructure.Campus
}

func New(log *zap.Logger, engine Suggester, autocompleter Autocompleter, store PlaceStore,
	places []datastructure.Place, campuses []datastructure.Campus) *DiscoverService {

	return &DiscoverService{
		log:           log,
		engine:        engine,
		autocompleter: autocompleter,
		store:         store,
		places:        places,
		campuses:      campuses,
	}
}

// Suggest runs the unified search. An unknown campus id behaves like no campus filter,
// matching the geolocation fallback semantics: degraded signal, not an error.
func (s *DiscoverService) Suggest(text string, userFix *datastructure.Point, campusID string) searcher.Suggestions {
	query := searcher.Query{
		Text:    text,
		UserFix: userFix,
	}
	if campusID != "" {
		if campus, ok := s.CampusByID(campusID); ok {
			query.ActiveCampus = &campus
		} else {
			s.log.Warn("ignoring unknown campus filter", zap.String("campus_id", campusID))
		}
	}
	return s.engine.Suggest(query)
}

func (s *DiscoverService) Autocomplete(prefix string, topK int) ([]datastructure.Place, error) {
	return s.autocompleter.Autocomplete(prefix, topK)
}

// Places lists the snapshot, optionally restricted to one category and optionally
// nearest-first relative to refPoint. Category "" or "all" means no restriction.
func (s *DiscoverService) Places(category string, refPoint *datastructure.Point) []datastructure.Place {
	filtered := []datastructure.Place{}
	for _, place := range s.places {
		if categoryMatches(place, category) {
			filtered = append(filtered, place)
		}
	}

	if refPoint != nil {
		slices.SortStableFunc(filtered, func(a, b datastructure.Place) int {
			da := datastructure.Distance(refPoint.Lat, refPoint.Lng, a.Lat, a.Lng)
			db := datastructure.Distance(refPoint.Lat, refPoint.Lng, b.Lat, b.Lng)
			switch {
			case da < db:
				return -1
			case da > db:
				return 1
			default:
				return 0
			}
		})
	}
	return filtered
}

func categoryMatches(place datastructure.Place, category string) bool {
	if category == "" || category == "all" {
		return true
	}
	for _, c := range place.Categories {
		if c == category {
			return true
		}
	}
	return false
}

func (s *DiscoverService) Campuses() []datastructure.Campus {
	return s.campuses
}

func (s *DiscoverService) CampusByID(id string) (datastructure.Campus, bool) {
	for _, campus := range s.campuses {
		if campus.ID == id {
			return campus, true
		}
	}
	return datastructure.Campus{}, false
}

// ToggleSaved flips the saved flag for a known place.
func (s *DiscoverService) ToggleSaved(placeID string) (bool, error) {
	if _, err := s.store.GetPlace(placeID); err != nil {
		return false, fmt.Errorf("toggle saved: %w", err)
	}
	return s.store.ToggleSaved(placeID)
}
