package datastructure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const distEpsilon = 1e-9

func TestDistance(t *testing.T) {
	t.Run("identity", func(t *testing.T) {
		points := []Point{
			{41.8781, -87.6298},
			{0, 0},
			{-33.8688, 151.2093},
			{89.9, 179.9},
		}
		for _, p := range points {
			assert.Equal(t, 0.0, Distance(p.Lat, p.Lng, p.Lat, p.Lng))
		}
	})

	t.Run("symmetry", func(t *testing.T) {
		a := Point{41.8858, -87.6278}  // DePaul Loop
		b := Point{42.0565, -87.6753}  // Northwestern Evanston
		c := Point{41.7886, -87.5987}  // UChicago

		assert.InDelta(t, Distance(a.Lat, a.Lng, b.Lat, b.Lng), Distance(b.Lat, b.Lng, a.Lat, a.Lng), distEpsilon)
		assert.InDelta(t, Distance(a.Lat, a.Lng, c.Lat, c.Lng), Distance(c.Lat, c.Lng, a.Lat, a.Lng), distEpsilon)
	})

	t.Run("triangle inequality", func(t *testing.T) {
		a := Point{41.8858, -87.6278}
		b := Point{41.9253, -87.6541}
		c := Point{41.8708, -87.6505}

		ab := Distance(a.Lat, a.Lng, b.Lat, b.Lng)
		bc := Distance(b.Lat, b.Lng, c.Lat, c.Lng)
		ac := Distance(a.Lat, a.Lng, c.Lat, c.Lng)
		assert.LessOrEqual(t, ac, ab+bc+distEpsilon)
	})

	t.Run("known distance", func(t *testing.T) {
		// Chicago Loop to Evanston is roughly 13 miles.
		d := Distance(41.8781, -87.6298, 42.0565, -87.6753)
		assert.InDelta(t, 12.5, d, 1.0)
	})

	t.Run("nan propagates", func(t *testing.T) {
		assert.True(t, math.IsNaN(Distance(math.NaN(), -87.6298, 41.9, -87.65)))
	})
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "528ft", FormatDistance(0.1))
	assert.Equal(t, "2640ft", FormatDistance(0.5))
	assert.Equal(t, "1.0mi", FormatDistance(1.0))
	assert.Equal(t, "3.5mi", FormatDistance(3.49))
}

func TestResolveReference(t *testing.T) {
	fix := Point{41.9, -87.65}
	campus := Point{41.8858, -87.6278}

	t.Run("user fix wins", func(t *testing.T) {
		assert.Equal(t, fix, ResolveReference(&fix, &campus))
	})

	t.Run("campus center next", func(t *testing.T) {
		assert.Equal(t, campus, ResolveReference(nil, &campus))
	})

	t.Run("city fallback", func(t *testing.T) {
		assert.Equal(t, ChicagoCenter, ResolveReference(nil, nil))
	})
}
