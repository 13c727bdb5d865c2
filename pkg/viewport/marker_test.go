package viewport

import (
	"testing"

	"github.com/myyapa/discover/pkg/datastructure"

	"github.com/stretchr/testify/assert"
)

func markerPlaces() []datastructure.Place {
	return []datastructure.Place{
		datastructure.NewPlace("p1", "Intelligentsia Coffee", 41.8948, -87.6365, "", []string{"coffee"}, "", 4.5),
		datastructure.NewPlace("p2", "Cafecito", 41.8756, -87.6244, "", []string{"coffee", "food"}, "", 4.3),
		datastructure.NewPlace("p3", "Pizano's Pizza", 41.8827, -87.6278, "", []string{"food"}, "", 4.4),
	}
}

func TestMarkerTiers(t *testing.T) {
	places := markerPlaces()

	t.Run("all-state filter makes everything active", func(t *testing.T) {
		got := Markers(places, "", AllFilter(), nil)
		for _, m := range got {
			assert.Equal(t, TIER_ACTIVE, m.Tier)
		}
	})

	t.Run("excluded id renders inactive", func(t *testing.T) {
		filter := IDFilter([]string{"p1", "p2"}) // a "coffee" category filter
		got := Markers(places, "", filter, nil)
		assert.Equal(t, TIER_ACTIVE, got[0].Tier)
		assert.Equal(t, TIER_ACTIVE, got[1].Tier)
		assert.Equal(t, TIER_INACTIVE, got[2].Tier)
	})

	t.Run("selection overrides inactive", func(t *testing.T) {
		filter := IDFilter([]string{"p1", "p2"})
		got := Markers(places, "p3", filter, nil)
		assert.Equal(t, TIER_SELECTED, got[2].Tier)
		assert.Equal(t, TIER_ACTIVE, got[0].Tier)
	})

	t.Run("saved decoration is independent of tier", func(t *testing.T) {
		filter := IDFilter([]string{"p1"})
		saved := map[string]bool{"p2": true}
		got := Markers(places, "", filter, saved)
		assert.Equal(t, TIER_INACTIVE, got[1].Tier)
		assert.True(t, got[1].Saved)
		assert.False(t, got[0].Saved)
	})
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "selected", TIER_SELECTED.String())
	assert.Equal(t, "active", TIER_ACTIVE.String())
	assert.Equal(t, "inactive", TIER_INACTIVE.String())
}
