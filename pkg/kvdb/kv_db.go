package kvdb

import (
	"errors"
	"fmt"
	"sync"

	"github.com/myyapa/discover/pkg/datastructure"

	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

var (
	ErrorsKeyNotExists = errors.New("key not exists")
)

const (
	BBOLTDB_PLACES_BUCKET = "places"
	BBOLTDB_SAVED_BUCKET  = "saved"

	savedIDsKey = "ids"
)

// KVDB is the bbolt-backed document store for place snapshots and the saved-place
// id set.
type KVDB struct {
	db *bbolt.DB
	sync.Mutex
}

func NewKVDB(db *bbolt.DB) (*KVDB, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range []string{BBOLTDB_PLACES_BUCKET, BBOLTDB_SAVED_BUCKET} {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &KVDB{db: db}, nil
}

// SavePlaces writes place snapshots to boltDB. batching.
func (db *KVDB) SavePlaces(places []datastructure.Place) error {
	db.Lock()
	defer db.Unlock()
	return db.db.Batch(func(tx *bbolt.Tx) error {
		for _, place := range places {
			if err := db.set(place, tx); err != nil {
				return err
			}
		}
		return nil
	})
}

func (db *KVDB) set(place datastructure.Place, tx *bbolt.Tx) error {
	placeBytes, err := serializePlace(place)
	if err != nil {
		return err
	}
	b := tx.Bucket([]byte(BBOLTDB_PLACES_BUCKET))
	return b.Put([]byte(place.ID), placeBytes)
}

func (db *KVDB) GetPlace(id string) (place datastructure.Place, err error) {
	db.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_PLACES_BUCKET))
		placeBytes := b.Get([]byte(id))
		if placeBytes == nil {
			err = fmt.Errorf("place with id: %s not found", id)
			return nil
		}
		place, err = deserializePlace(placeBytes)
		return nil
	})
	return
}

// AllPlaces scans the whole bucket. The corpus is city-sized, so a full scan per
// process start is fine.
func (db *KVDB) AllPlaces() ([]datastructure.Place, error) {
	places := []datastructure.Place{}
	err := db.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_PLACES_BUCKET))
		return b.ForEach(func(_, v []byte) error {
			place, err := deserializePlace(v)
			if err != nil {
				return err
			}
			places = append(places, place)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return places, nil
}

// GetSavedIDs returns the saved-place id set, empty when nothing was saved yet.
func (db *KVDB) GetSavedIDs() (map[string]bool, error) {
	ids := []string{}
	err := db.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_SAVED_BUCKET))
		raw := b.Get([]byte(savedIDsKey))
		if raw == nil {
			return nil
		}
		return msgpack.Unmarshal(raw, &ids)
	})
	if err != nil {
		return nil, err
	}

	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// ToggleSaved flips one place's saved flag and returns the new state.
func (db *KVDB) ToggleSaved(placeID string) (saved bool, err error) {
	db.Lock()
	defer db.Unlock()
	err = db.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BBOLTDB_SAVED_BUCKET))

		ids := []string{}
		if raw := b.Get([]byte(savedIDsKey)); raw != nil {
			if err := msgpack.Unmarshal(raw, &ids); err != nil {
				return err
			}
		}

		next := make([]string, 0, len(ids)+1)
		for _, id := range ids {
			if id == placeID {
				continue
			}
			next = append(next, id)
		}
		if len(next) == len(ids) {
			next = append(next, placeID)
			saved = true
		}

		raw, err := msgpack.Marshal(next)
		if err != nil {
			return err
		}
		return b.Put([]byte(savedIDsKey), raw)
	})
	return
}
