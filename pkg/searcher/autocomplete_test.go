package searcher

import (
	"testing"

	"github.com/myyapa/discover/pkg/datastructure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func autocompletePlaces() []datastructure.Place {
	return []datastructure.Place{
		datastructure.NewPlace("1", "Intelligentsia Coffee", 41.8948, -87.6365, "", []string{"coffee"}, "", 4.5),
		datastructure.NewPlace("2", "Cafecito", 41.8756, -87.6244, "", []string{"coffee", "food"}, "", 4.3),
		datastructure.NewPlace("3", "Pizano's Pizza", 41.8827, -87.6278, "", []string{"food"}, "", 4.4),
		datastructure.NewPlace("4", "Cafe Deko", 41.8790, -87.6310, "", []string{"coffee"}, "", 4.0),
	}
}

func TestAutocomplete(t *testing.T) {
	ac, err := NewAutocompleter(autocompletePlaces())
	require.NoError(t, err)

	t.Run("prefix match is case-insensitive", func(t *testing.T) {
		got, err := ac.Autocomplete("CAF", 10)
		require.NoError(t, err)
		require.Len(t, got, 2)
		// lexicographic name order: "cafe deko" < "cafecito"
		assert.Equal(t, "Cafe Deko", got[0].Name)
		assert.Equal(t, "Cafecito", got[1].Name)
	})

	t.Run("top-k caps results", func(t *testing.T) {
		got, err := ac.Autocomplete("caf", 1)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		got, err := ac.Autocomplete("zzz", 10)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("empty prefix is an error", func(t *testing.T) {
		_, err := ac.Autocomplete("", 10)
		assert.ErrorIs(t, err, ErrEmptyQuery)
	})
}
