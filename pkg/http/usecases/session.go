package usecases

import (
	"fmt"
	"sync"

	"github.com/myyapa/discover/pkg/datastructure"
	"github.com/myyapa/discover/pkg/viewport"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// mapSession is one client's map state: a viewport synchronizer, the selected place,
// and the active category filter. The core stays single-threaded; only the registry
// below locks.
type mapSession struct {
	id         string
	sync       *viewport.Synchronizer
	selectedID string
	category   string
	filter     viewport.Filter
}

// SessionService owns the registry of map sessions and answers the viewport-ish
// operations: select, center, filter, markers.
type SessionService struct {
	log    *zap.Logger
	store  PlaceStore
	places []datastructure.Place

	mu       sync.Mutex
	sessions map[string]*mapSession
}

func NewSessionService(log *zap.Logger, store PlaceStore, places []datastructure.Place) *SessionService {
	return &SessionService{
		log:      log,
		store:    store,
		places:   places,
		sessions: make(map[string]*mapSession),
	}
}

// Create opens a session at the default city-wide viewport and returns its id and zoom.
func (s *SessionService) Create() (string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := &mapSession{
		id:       uuid.NewString(),
		sync:     viewport.NewSynchronizer(),
		category: "all",
		filter:   viewport.AllFilter(),
	}
	s.sessions[session.id] = session
	return session.id, session.sync.Zoom()
}

func (s *SessionService) get(id string) (*mapSession, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s not found", id)
	}
	return session, nil
}

// Select marks a place as selected and returns the pan/zoom instruction the selection
// trigger produced.
func (s *SessionService) Select(sessionID, placeID string) (viewport.Instruction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.get(sessionID)
	if err != nil {
		return viewport.Instruction{}, err
	}

	place, err := s.findPlace(placeID)
	if err != nil {
		return viewport.Instruction{}, err
	}

	session.selectedID = place.ID
	return session.sync.SelectPlace(place), nil
}

// SetCenter feeds a desired center through the dedup trigger. The second return is
// false when the point equaled the last recorded one and no pan was issued.
func (s *SessionService) SetCenter(sessionID string, point datastructure.Point) (viewport.Instruction, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.get(sessionID)
	if err != nil {
		return viewport.Instruction{}, false, err
	}

	instruction, panned := session.sync.SetCenter(point)
	return instruction, panned, nil
}

// SetFilter switches the session's category filter and returns how many places it
// keeps. "all" restores the unrestricted state.
func (s *SessionService) SetFilter(sessionID, category string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.get(sessionID)
	if err != nil {
		return 0, err
	}

	session.category = category
	if category == "" || category == "all" {
		session.filter = viewport.AllFilter()
		return len(s.places), nil
	}

	ids := []string{}
	for _, place := range s.places {
		if categoryMatches(place, category) {
			ids = append(ids, place.ID)
		}
	}
	session.filter = viewport.IDFilter(ids)
	return len(ids), nil
}

// Markers derives the per-place emphasis tiers and saved decorations for one session's
// current state.
func (s *SessionService) Markers(sessionID string) ([]viewport.Marker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}

	saved, err := s.store.GetSavedIDs()
	if err != nil {
		// saved is a decoration; render without it rather than failing the request
		s.log.Error("failed to load saved ids", zap.Error(err))
		saved = map[string]bool{}
	}

	return viewport.Markers(s.places, session.selectedID, session.filter, saved), nil
}

func (s *SessionService) findPlace(id string) (datastructure.Place, error) {
	for _, place := range s.places {
		if place.ID == id {
			return place, nil
		}
	}
	return datastructure.Place{}, fmt.Errorf("place with id: %s not found", id)
}
