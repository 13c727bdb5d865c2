package viewport

import (
	"testing"

	"github.com/myyapa/discover/pkg/datastructure"

	"github.com/stretchr/testify/assert"
)

var testPlace = datastructure.NewPlace("p1", "Intelligentsia Coffee", 41.8948, -87.6365,
	"53 W Jackson Blvd, Chicago", []string{"coffee"}, "15% off all drinks", 4.5)

func TestSelectPlaceZoom(t *testing.T) {
	t.Run("raises zoom below the threshold", func(t *testing.T) {
		s := NewSynchronizerAt(13)

		got := s.SelectPlace(testPlace)
		assert.Equal(t, testPlace.Center(), got.Center)
		assert.True(t, got.SetZoom)
		assert.Equal(t, SELECTION_ZOOM, got.Zoom)
		assert.Equal(t, SELECTION_ZOOM, s.Zoom())
	})

	t.Run("never lowers zoom", func(t *testing.T) {
		s := NewSynchronizerAt(17)

		got := s.SelectPlace(testPlace)
		assert.False(t, got.SetZoom)
		assert.Equal(t, 17, s.Zoom())
	})

	t.Run("fires even when center equals dedup memory", func(t *testing.T) {
		s := NewSynchronizerAt(13)
		s.SelectPlace(testPlace)

		got := s.SelectPlace(testPlace)
		assert.Equal(t, testPlace.Center(), got.Center)
	})
}

func TestSetCenterDedup(t *testing.T) {
	s := NewSynchronizer()
	center := datastructure.Point{Lat: 41.8858, Lng: -87.6278}

	t.Run("first call pans", func(t *testing.T) {
		got, panned := s.SetCenter(center)
		assert.True(t, panned)
		assert.Equal(t, center, got.Center)
		assert.False(t, got.SetZoom)
	})

	t.Run("identical call issues nothing", func(t *testing.T) {
		_, panned := s.SetCenter(center)
		assert.False(t, panned)
	})

	t.Run("different point pans again", func(t *testing.T) {
		other := datastructure.Point{Lat: 41.9253, Lng: -87.6541}
		_, panned := s.SetCenter(other)
		assert.True(t, panned)
	})

	t.Run("selection updates the dedup memory", func(t *testing.T) {
		s := NewSynchronizer()
		s.SelectPlace(testPlace)

		_, panned := s.SetCenter(testPlace.Center())
		assert.False(t, panned)
	})
}

func TestDesiredCenter(t *testing.T) {
	campus := datastructure.Point{Lat: 41.8858, Lng: -87.6278}
	fix := datastructure.Point{Lat: 41.9, Lng: -87.65}

	t.Run("selected place wins", func(t *testing.T) {
		got := DesiredCenter(&testPlace, &campus, &fix)
		assert.Equal(t, testPlace.Center(), *got)
	})

	t.Run("campus param next", func(t *testing.T) {
		got := DesiredCenter(nil, &campus, &fix)
		assert.Equal(t, campus, *got)
	})

	t.Run("user fix last", func(t *testing.T) {
		got := DesiredCenter(nil, nil, &fix)
		assert.Equal(t, fix, *got)
	})

	t.Run("nil when no signal", func(t *testing.T) {
		assert.Nil(t, DesiredCenter(nil, nil, nil))
	})
}
