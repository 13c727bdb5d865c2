package usecases

import (
	"fmt"
	"testing"

	"github.com/myyapa/discover/pkg/datastructure"
	"github.com/myyapa/discover/pkg/searcher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStore struct {
	places map[string]datastructure.Place
	saved  map[string]bool
}

func newFakeStore(places []datastructure.Place) *fakeStore {
	byID := make(map[string]datastructure.Place, len(places))
	for _, p := range places {
		byID[p.ID] = p
	}
	return &fakeStore{places: byID, saved: map[string]bool{}}
}

func (f *fakeStore) GetPlace(id string) (datastructure.Place, error) {
	place, ok := f.places[id]
	if !ok {
		return datastructure.Place{}, fmt.Errorf("place with id: %s not found", id)
	}
	return place, nil
}

func (f *fakeStore) AllPlaces() ([]datastructure.Place, error) {
	all := []datastructure.Place{}
	for _, p := range f.places {
		all = append(all, p)
	}
	return all, nil
}

func (f *fakeStore) GetSavedIDs() (map[string]bool, error) {
	out := make(map[string]bool, len(f.saved))
	for id, v := range f.saved {
		out[id] = v
	}
	return out, nil
}

func (f *fakeStore) ToggleSaved(placeID string) (bool, error) {
	f.saved[placeID] = !f.saved[placeID]
	return f.saved[placeID], nil
}

func servicePlaces() []datastructure.Place {
	return []datastructure.Place{
		datastructure.NewPlace("p1", "Intelligentsia Coffee", 41.8948, -87.6365,
			"53 W Jackson Blvd, Chicago", []string{"coffee", "drinks"}, "15% off all drinks", 4.5),
		datastructure.NewPlace("p2", "Cafecito", 41.8756, -87.6244,
			"26 E Congress Pkwy, Chicago", []string{"coffee", "food"}, "10% off orders", 4.3),
		datastructure.NewPlace("p3", "Pizano's Pizza", 41.8827, -87.6278,
			"61 E Madison St, Chicago", []string{"food"}, "20% off with student ID", 4.4),
	}
}

func newDiscoverService(t *testing.T) (*DiscoverService, *fakeStore) {
	t.Helper()
	places := servicePlaces()
	campuses := datastructure.Campuses()
	store := newFakeStore(places)

	autocompleter, err := searcher.NewAutocompleter(places)
	require.NoError(t, err)

	service := New(zap.NewNop(), searcher.NewEngine(places, campuses), autocompleter,
		store, places, campuses)
	return service, store
}

func TestServiceSuggest(t *testing.T) {
	service, _ := newDiscoverService(t)

	t.Run("campus filter shapes label and ranking", func(t *testing.T) {
		got := service.Suggest("coffee", nil, "depaul-loop")
		assert.Equal(t, "Near DePaul (Loop)", got.PlaceLabel)
		assert.NotEmpty(t, got.Places)
	})

	t.Run("unknown campus id degrades to no filter", func(t *testing.T) {
		got := service.Suggest("coffee", nil, "mars-campus")
		assert.Equal(t, searcher.PLACE_GROUP_LABEL_GENERIC, got.PlaceLabel)
	})

	t.Run("user fix labels near you", func(t *testing.T) {
		fix := datastructure.Point{Lat: 41.88, Lng: -87.63}
		got := service.Suggest("coffee", &fix, "")
		assert.Equal(t, searcher.PLACE_GROUP_LABEL_NEARBY, got.PlaceLabel)
	})
}

func TestServicePlaces(t *testing.T) {
	service, _ := newDiscoverService(t)

	t.Run("all categories", func(t *testing.T) {
		assert.Len(t, service.Places("all", nil), 3)
		assert.Len(t, service.Places("", nil), 3)
	})

	t.Run("category filter", func(t *testing.T) {
		got := service.Places("food", nil)
		ids := []string{}
		for _, p := range got {
			ids = append(ids, p.ID)
		}
		assert.ElementsMatch(t, []string{"p2", "p3"}, ids)
	})

	t.Run("nearest first when reference given", func(t *testing.T) {
		ref := datastructure.Point{Lat: 41.8756, Lng: -87.6244} // on top of Cafecito
		got := service.Places("coffee", &ref)
		require.Len(t, got, 2)
		assert.Equal(t, "p2", got[0].ID)
		assert.Equal(t, "p1", got[1].ID)
	})
}

func TestServiceToggleSaved(t *testing.T) {
	service, store := newDiscoverService(t)

	saved, err := service.ToggleSaved("p1")
	require.NoError(t, err)
	assert.True(t, saved)
	assert.True(t, store.saved["p1"])

	t.Run("unknown place is an error", func(t *testing.T) {
		_, err := service.ToggleSaved("ghost")
		assert.Error(t, err)
	})
}

func TestServiceCampuses(t *testing.T) {
	service, _ := newDiscoverService(t)

	assert.NotEmpty(t, service.Campuses())

	campus, ok := service.CampusByID("uic")
	assert.True(t, ok)
	assert.Equal(t, "University of Illinois Chicago", campus.University)

	_, ok = service.CampusByID("nope")
	assert.False(t, ok)
}
