package usecases

import (
	"testing"

	"github.com/myyapa/discover/pkg/datastructure"
	"github.com/myyapa/discover/pkg/viewport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSessionService() (*SessionService, *fakeStore) {
	places := servicePlaces()
	store := newFakeStore(places)
	return NewSessionService(zap.NewNop(), store, places), store
}

func TestSessionLifecycle(t *testing.T) {
	service, _ := newSessionService()

	id, zoom := service.Create()
	assert.NotEmpty(t, id)
	assert.Equal(t, viewport.DEFAULT_ZOOM, zoom)

	t.Run("unknown session errors", func(t *testing.T) {
		_, err := service.Select("missing", "p1")
		assert.Error(t, err)
	})
}

func TestSessionSelect(t *testing.T) {
	service, _ := newSessionService()
	id, _ := service.Create()

	got, err := service.Select(id, "p1")
	require.NoError(t, err)
	assert.Equal(t, datastructure.Point{Lat: 41.8948, Lng: -87.6365}, got.Center)
	assert.True(t, got.SetZoom)
	assert.Equal(t, viewport.SELECTION_ZOOM, got.Zoom)

	t.Run("unknown place errors", func(t *testing.T) {
		_, err := service.Select(id, "ghost")
		assert.Error(t, err)
	})
}

func TestSessionSetCenter(t *testing.T) {
	service, _ := newSessionService()
	id, _ := service.Create()
	center := datastructure.Point{Lat: 41.8858, Lng: -87.6278}

	_, panned, err := service.SetCenter(id, center)
	require.NoError(t, err)
	assert.True(t, panned)

	_, panned, err = service.SetCenter(id, center)
	require.NoError(t, err)
	assert.False(t, panned)
}

func TestSessionMarkers(t *testing.T) {
	service, store := newSessionService()
	id, _ := service.Create()

	t.Run("all active by default", func(t *testing.T) {
		got, err := service.Markers(id)
		require.NoError(t, err)
		require.Len(t, got, 3)
		for _, m := range got {
			assert.Equal(t, viewport.TIER_ACTIVE, m.Tier)
		}
	})

	t.Run("filter and selection interact", func(t *testing.T) {
		kept, err := service.SetFilter(id, "coffee")
		require.NoError(t, err)
		assert.Equal(t, 2, kept)

		_, err = service.Select(id, "p3") // excluded by the coffee filter
		require.NoError(t, err)

		got, err := service.Markers(id)
		require.NoError(t, err)
		byID := map[string]viewport.Marker{}
		for _, m := range got {
			byID[m.PlaceID] = m
		}
		assert.Equal(t, viewport.TIER_SELECTED, byID["p3"].Tier)
		assert.Equal(t, viewport.TIER_ACTIVE, byID["p1"].Tier)
		assert.Equal(t, viewport.TIER_ACTIVE, byID["p2"].Tier)
	})

	t.Run("saved decoration flows from the store", func(t *testing.T) {
		store.saved["p2"] = true
		got, err := service.Markers(id)
		require.NoError(t, err)
		for _, m := range got {
			assert.Equal(t, m.PlaceID == "p2", m.Saved)
		}
	})

	t.Run("filter reset restores all", func(t *testing.T) {
		kept, err := service.SetFilter(id, "all")
		require.NoError(t, err)
		assert.Equal(t, 3, kept)
	})
}
