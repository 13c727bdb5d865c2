package datastructure

// Place model info
// @Description business or venue with a student discount, shown on the map. fetched from the
// places store and treated as an immutable snapshot by every component in this package tree.
type Place struct {
	ID                  string   `json:"id"`                   // opaque place identifier
	Name                string   `json:"name"`                 // display name
	Lat                 float64  `json:"lat"`                  // latitude, signed degrees
	Lng                 float64  `json:"lng"`                  // longitude, signed degrees
	Address             string   `json:"address"`              // street address, single line
	Categories          []string `json:"category"`             // free-form category tags, insertion order irrelevant
	DiscountDescription string   `json:"discount_description"` // e.g. "15% off all drinks"
	AvgRating           float64  `json:"avg_rating"`           // >= 0, 0 means no ratings yet
}

func NewPlace(id, name string, lat, lng float64, address string, categories []string,
	discountDescription string, avgRating float64) Place {

	return Place{
		ID:                  id,
		Name:                name,
		Lat:                 lat,
		Lng:                 lng,
		Address:             address,
		Categories:          categories,
		DiscountDescription: discountDescription,
		AvgRating:           avgRating,
	}
}

func (p Place) Center() Point {
	return Point{Lat: p.Lat, Lng: p.Lng}
}

// Point is a coordinate pair. Equality is coordinate-wise and exact, which is what the
// viewport deduplication contract relies on.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func NewPoint(lat, lng float64) Point {
	return Point{Lat: lat, Lng: lng}
}

// Campus model info
// @Description static reference record for a university location. used as a search anchor
// and distance reference. never mutated at runtime.
type Campus struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`       // display name, e.g. "DePaul (Loop)"
	University string   `json:"university"` // parent institution name
	Lat        float64  `json:"lat"`
	Lng        float64  `json:"lng"`
	Address    string   `json:"address"`
	Aliases    []string `json:"aliases,omitempty"` // extra strings matched during text search
}

func (c Campus) Center() Point {
	return Point{Lat: c.Lat, Lng: c.Lng}
}
