package usecases

import (
	"github.com/myyapa/discover/pkg/datastructure"
	"github.com/myyapa/discover/pkg/searcher"
)

type Suggester interface {
	Suggest(q searcher.Query) searcher.Suggestions
}

type Autocompleter interface {
	Autocomplete(prefix string, topK int) ([]datastructure.Place, error)
}

type PlaceStore interface {
	GetPlace(id string) (datastructure.Place, error)
	AllPlaces() ([]datastructure.Place, error)
	GetSavedIDs() (map[string]bool, error)
	ToggleSaved(placeID string) (bool, error)
}
