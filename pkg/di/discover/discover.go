package discover_di

import (
	"github.com/myyapa/discover/pkg/datastructure"
	"github.com/myyapa/discover/pkg/http/http-router/controllers"
	"github.com/myyapa/discover/pkg/http/usecases"
	"github.com/myyapa/discover/pkg/kvdb"
	"github.com/myyapa/discover/pkg/searcher"

	"go.uber.org/zap"
)

// Snapshot is the place corpus loaded once at startup and shared by every service.
type Snapshot []datastructure.Place

func NewSnapshot(log *zap.Logger, db *kvdb.KVDB) (Snapshot, error) {
	places, err := db.AllPlaces()
	if err != nil {
		return nil, err
	}
	log.Info("loaded place snapshot", zap.Int("places", len(places)))
	return Snapshot(places), nil
}

func New(log *zap.Logger, db *kvdb.KVDB, snapshot Snapshot) (controllers.DiscoverService, error) {
	places := []datastructure.Place(snapshot)
	campuses := datastructure.Campuses()

	engine := searcher.NewEngine(places, campuses)

	autocompleter, err := searcher.NewAutocompleter(places)
	if err != nil {
		return nil, err
	}

	return usecases.New(log, engine, autocompleter, db, places, campuses), nil
}

func NewSession(log *zap.Logger, db *kvdb.KVDB, snapshot Snapshot) controllers.SessionService {
	return usecases.NewSessionService(log, db, []datastructure.Place(snapshot))
}
