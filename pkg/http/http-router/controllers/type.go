package controllers

import (
	"github.com/myyapa/discover/pkg/datastructure"
	"github.com/myyapa/discover/pkg/searcher"
	"github.com/myyapa/discover/pkg/viewport"
)

type DiscoverService interface {
	Suggest(text string, userFix *datastructure.Point, campusID string) searcher.Suggestions
	Autocomplete(prefix string, topK int) ([]datastructure.Place, error)
	Places(category string, refPoint *datastructure.Point) []datastructure.Place
	Campuses() []datastructure.Campus
	ToggleSaved(placeID string) (bool, error)
}

type SessionService interface {
	Create() (string, int)
	Select(sessionID, placeID string) (viewport.Instruction, error)
	SetCenter(sessionID string, point datastructure.Point) (viewport.Instruction, bool, error)
	SetFilter(sessionID, category string) (int, error)
	Markers(sessionID string) ([]viewport.Marker, error)
}

type envelope map[string]interface{}
