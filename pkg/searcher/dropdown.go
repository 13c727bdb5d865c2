package searcher

import (
	"fmt"

	"github.com/myyapa/discover/pkg/datastructure"
)

// DropdownState is the tagged open/closed state of the suggestion panel. Keeping the
// state and the result set in one value rules out the flag-disagrees-with-data class
// of bugs.
type DropdownState int

const (
	DROPDOWN_CLOSED DropdownState = iota
	DROPDOWN_OPEN
)

// ActivationKind tags what Enter (or a click) on a highlighted entry means.
type ActivationKind int

const (
	ACTIVATE_NONE ActivationKind = iota
	ACTIVATE_CAMPUS
	ACTIVATE_PLACE
)

// Navigation is the request emitted when a campus suggestion is activated: the map page
// navigates to the campus center and records it as the active campus filter.
type Navigation struct {
	CampusID   string              `json:"campus_id"`
	CampusName string              `json:"campus_name"`
	Center     datastructure.Point `json:"center"`
}

// Activation is the outcome of activating the highlighted entry. Exactly one of Campus
// or Place is set, matching Kind. Campus activation carries the Navigation request;
// place activation defers map movement to the viewport synchronizer.
type Activation struct {
	Kind   ActivationKind
	Campus *datastructure.Campus
	Place  *datastructure.Place
	Nav    *Navigation
}

// Dropdown drives one unified-search input: it owns the query text, the tagged
// open/closed state, the current result groups, and the highlighted index over the
// concatenated campus+place list. All methods are synchronous; the caller invokes them
// from a single UI event at a time.
type Dropdown struct {
	engine      *Engine
	query       Query
	state       DropdownState
	results     Suggestions
	highlighted int
}

func NewDropdown(engine *Engine) *Dropdown {
	return &Dropdown{engine: engine}
}

// SetQuery recomputes suggestions for a new query text. Clearing the text closes the
// panel synchronously; any non-empty text opens it, including when nothing matches,
// so the no-results feedback can render.
func (d *Dropdown) SetQuery(q Query) {
	d.query = q
	d.results = d.engine.Suggest(q)
	d.highlighted = 0
	if q.Text == "" {
		d.state = DROPDOWN_CLOSED
		return
	}
	d.state = DROPDOWN_OPEN
}

func (d *Dropdown) State() DropdownState {
	return d.state
}

func (d *Dropdown) QueryText() string {
	return d.query.Text
}

// Results returns the current groups. Only meaningful while open.
func (d *Dropdown) Results() Suggestions {
	return d.results
}

// NoResults reports the explicit empty-state: open with a non-empty query matching
// nothing. Distinct from closed.
func (d *Dropdown) NoResults() bool {
	return d.state == DROPDOWN_OPEN && d.results.Empty()
}

func (d *Dropdown) Highlighted() int {
	return d.highlighted
}

// MoveDown and MoveUp move the highlight across the concatenated result list, clamped
// to [0, len-1].
func (d *Dropdown) MoveDown() {
	if d.highlighted < d.results.Len()-1 {
		d.highlighted++
	}
}

func (d *Dropdown) MoveUp() {
	if d.highlighted > 0 {
		d.highlighted--
	}
}

// Escape closes the panel without clearing the typed query.
func (d *Dropdown) Escape() {
	d.state = DROPDOWN_CLOSED
}

// Clear resets the query text and closes the panel in the same step.
func (d *Dropdown) Clear() {
	d.query.Text = ""
	d.results = Suggestions{}
	d.highlighted = 0
	d.state = DROPDOWN_CLOSED
}

// Activate fires the highlighted entry according to its group. Campuses occupy indexes
// [0, len(campuses)) of the concatenated list, places the rest. The query text becomes
// the chosen entry's name and the panel closes, mirroring a click on a suggestion row.
func (d *Dropdown) Activate() (Activation, error) {
	if d.state != DROPDOWN_OPEN || d.results.Empty() {
		return Activation{Kind: ACTIVATE_NONE}, nil
	}
	idx := d.highlighted
	if idx < 0 || idx >= d.results.Len() {
		return Activation{}, fmt.Errorf("highlighted index %d out of range [0,%d)", idx, d.results.Len())
	}

	if idx < len(d.results.Campuses) {
		campus := d.results.Campuses[idx]
		d.query.Text = campus.Name
		d.state = DROPDOWN_CLOSED
		return Activation{
			Kind:   ACTIVATE_CAMPUS,
			Campus: &campus,
			Nav: &Navigation{
				CampusID:   campus.ID,
				CampusName: campus.Name,
				Center:     campus.Center(),
			},
		}, nil
	}

	suggestion := d.results.Places[idx-len(d.results.Campuses)]
	place := suggestion.Place
	d.query.Text = place.Name
	d.state = DROPDOWN_CLOSED
	return Activation{
		Kind:  ACTIVATE_PLACE,
		Place: &place,
	}, nil
}
