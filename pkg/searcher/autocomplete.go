package searcher

import (
	"bytes"
	"errors"
	"sort"
	"strings"

	"github.com/myyapa/discover/pkg/datastructure"

	"github.com/blevesearch/vellum"
)

var ErrEmptyQuery = errors.New("query is empty")

// Autocompleter answers prefix queries over place names with a vellum FST built once
// from the loaded snapshot. Complements Engine.Suggest, which matches substrings.
type Autocompleter struct {
	fst    *vellum.FST
	places []datastructure.Place
}

// NewAutocompleter builds the FST. Keys are lowercased names and must go into the
// builder in lexicographic order; duplicate names keep the first place that carried
// them.
func NewAutocompleter(places []datastructure.Place) (*Autocompleter, error) {
	ordinalByName := make(map[string]uint64, len(places))
	for i, place := range places {
		key := strings.ToLower(place.Name)
		if _, ok := ordinalByName[key]; !ok {
			ordinalByName[key] = uint64(i)
		}
	}

	keys := make([]string, 0, len(ordinalByName))
	for key := range ordinalByName {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return nil, err
	}
	for _, key := range keys {
		if err := builder.Insert([]byte(key), ordinalByName[key]); err != nil {
			return nil, err
		}
	}
	if err := builder.Close(); err != nil {
		return nil, err
	}

	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return nil, err
	}

	return &Autocompleter{
		fst:    fst,
		places: places,
	}, nil
}

// Autocomplete returns up to topK places whose name starts with prefix
// (case-insensitive), in lexicographic name order.
func (a *Autocompleter) Autocomplete(prefix string, topK int) ([]datastructure.Place, error) {
	if prefix == "" {
		return nil, ErrEmptyQuery
	}
	if topK <= 0 {
		topK = MAX_PLACE_RESULTS
	}

	start := []byte(strings.ToLower(prefix))
	end := make([]byte, len(start), len(start)+1)
	copy(end, start)
	end = append(end, 0xff)

	results := make([]datastructure.Place, 0, topK)
	itr, err := a.fst.Iterator(start, end)
	for err == nil {
		_, ordinal := itr.Current()
		results = append(results, a.places[ordinal])
		if len(results) == topK {
			break
		}
		err = itr.Next()
	}
	if err != nil && !errors.Is(err, vellum.ErrIteratorDone) {
		return nil, err
	}
	return results, nil
}
