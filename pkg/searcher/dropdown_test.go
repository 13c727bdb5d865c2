package searcher

import (
	"testing"

	"github.com/myyapa/discover/pkg/datastructure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDropdownOpenClose(t *testing.T) {
	d := NewDropdown(NewEngine(testPlaces(), testCampuses()))

	t.Run("starts closed", func(t *testing.T) {
		assert.Equal(t, DROPDOWN_CLOSED, d.State())
	})

	t.Run("opens on matching query", func(t *testing.T) {
		d.SetQuery(Query{Text: "coffee", UserFix: &testRef})
		assert.Equal(t, DROPDOWN_OPEN, d.State())
		assert.False(t, d.NoResults())
		assert.Equal(t, 3, d.Results().Len())
	})

	t.Run("opens with explicit no-results state", func(t *testing.T) {
		d.SetQuery(Query{Text: "zzzz"})
		assert.Equal(t, DROPDOWN_OPEN, d.State())
		assert.True(t, d.NoResults())
	})

	t.Run("deleting all characters closes synchronously", func(t *testing.T) {
		d.SetQuery(Query{Text: "coffee", UserFix: &testRef})
		d.SetQuery(Query{Text: ""})
		assert.Equal(t, DROPDOWN_CLOSED, d.State())
		assert.True(t, d.Results().Empty())
	})

	t.Run("escape closes without clearing the query", func(t *testing.T) {
		d.SetQuery(Query{Text: "coffee", UserFix: &testRef})
		d.Escape()
		assert.Equal(t, DROPDOWN_CLOSED, d.State())
		assert.Equal(t, "coffee", d.QueryText())
	})

	t.Run("clear button resets query and closes", func(t *testing.T) {
		d.SetQuery(Query{Text: "coffee", UserFix: &testRef})
		d.Clear()
		assert.Equal(t, DROPDOWN_CLOSED, d.State())
		assert.Equal(t, "", d.QueryText())
	})
}

func TestDropdownKeyboard(t *testing.T) {
	d := NewDropdown(NewEngine(testPlaces(), testCampuses()))

	// "depaul" matches two campuses and no places; "coffee" matches three places.
	t.Run("highlight clamps at both ends", func(t *testing.T) {
		d.SetQuery(Query{Text: "coffee", UserFix: &testRef})
		assert.Equal(t, 0, d.Highlighted())

		d.MoveUp()
		assert.Equal(t, 0, d.Highlighted())

		for i := 0; i < 10; i++ {
			d.MoveDown()
		}
		assert.Equal(t, d.Results().Len()-1, d.Highlighted())
	})

	t.Run("highlight resets on new query", func(t *testing.T) {
		d.SetQuery(Query{Text: "coffee", UserFix: &testRef})
		d.MoveDown()
		d.SetQuery(Query{Text: "coffe", UserFix: &testRef})
		assert.Equal(t, 0, d.Highlighted())
	})
}

func TestDropdownActivate(t *testing.T) {
	t.Run("campus activation yields a navigation request", func(t *testing.T) {
		d := NewDropdown(NewEngine(testPlaces(), testCampuses()))
		d.SetQuery(Query{Text: "loyola"})

		got, err := d.Activate()
		require.NoError(t, err)
		assert.Equal(t, ACTIVATE_CAMPUS, got.Kind)
		require.NotNil(t, got.Nav)
		assert.Equal(t, "loyola", got.Nav.CampusID)
		assert.Equal(t, datastructure.Point{Lat: 41.9994, Lng: -87.6586}, got.Nav.Center)
		assert.Equal(t, DROPDOWN_CLOSED, d.State())
		assert.Equal(t, "Loyola University", d.QueryText())
	})

	t.Run("place activation carries the place, not a navigation", func(t *testing.T) {
		d := NewDropdown(NewEngine(testPlaces(), testCampuses()))
		d.SetQuery(Query{Text: "coffee", UserFix: &testRef})
		d.MoveDown() // second-nearest place

		got, err := d.Activate()
		require.NoError(t, err)
		assert.Equal(t, ACTIVATE_PLACE, got.Kind)
		require.NotNil(t, got.Place)
		assert.Equal(t, "p-3mi", got.Place.ID)
		assert.Nil(t, got.Nav)
		assert.Equal(t, DROPDOWN_CLOSED, d.State())
	})

	t.Run("concatenated index spans both groups", func(t *testing.T) {
		d := NewDropdown(NewEngine(testPlaces(), testCampuses()))
		d.SetQuery(Query{Text: "depaul"})
		assert.Len(t, d.Results().Campuses, 2)

		d.MoveDown()
		got, err := d.Activate()
		require.NoError(t, err)
		assert.Equal(t, ACTIVATE_CAMPUS, got.Kind)
		assert.Equal(t, "depaul-lincoln-park", got.Campus.ID)
	})

	t.Run("activation on closed dropdown is a no-op", func(t *testing.T) {
		d := NewDropdown(NewEngine(testPlaces(), testCampuses()))
		got, err := d.Activate()
		require.NoError(t, err)
		assert.Equal(t, ACTIVATE_NONE, got.Kind)
	})
}
