// Package viewport decides when the map pans and zooms, and what emphasis each place
// marker carries. The synchronizer keeps exactly one piece of memory, the last center
// it was told to pan to, so redundant center updates cannot jitter the viewport.
package viewport

import (
	"github.com/myyapa/discover/pkg/datastructure"
)

const (
	// DEFAULT_ZOOM is the city-wide zoom the map opens with.
	DEFAULT_ZOOM = 13
	// SELECTION_ZOOM is the floor the zoom is raised to when a place is selected.
	// Selection never lowers zoom.
	SELECTION_ZOOM = 16
)

// Instruction is one pan/zoom command for the map widget. Zoom is meaningful only when
// SetZoom is true.
type Instruction struct {
	Center  datastructure.Point `json:"center"`
	SetZoom bool                `json:"set_zoom"`
	Zoom    int                 `json:"zoom,omitempty"`
}

// Synchronizer tracks the map viewport. All methods run on the caller's single event
// loop; the type does no locking of its own.
type Synchronizer struct {
	zoom       int
	lastCenter *datastructure.Point
}

func NewSynchronizer() *Synchronizer {
	return &Synchronizer{zoom: DEFAULT_ZOOM}
}

func NewSynchronizerAt(zoom int) *Synchronizer {
	return &Synchronizer{zoom: zoom}
}

func (s *Synchronizer) Zoom() int {
	return s.zoom
}

// LastCenter returns the most recent pan target, or nil before the first pan.
func (s *Synchronizer) LastCenter() *datastructure.Point {
	return s.lastCenter
}

// SelectPlace handles a selection change: pan to the place unconditionally, raising the
// zoom to SELECTION_ZOOM when the current zoom sits below it. This trigger ignores the
// dedup memory on purpose; re-selecting after a manual pan must still recenter.
func (s *Synchronizer) SelectPlace(place datastructure.Place) Instruction {
	center := place.Center()
	s.lastCenter = &center

	instruction := Instruction{Center: center}
	if s.zoom < SELECTION_ZOOM {
		s.zoom = SELECTION_ZOOM
		instruction.SetZoom = true
		instruction.Zoom = SELECTION_ZOOM
	}
	return instruction
}

// SetCenter handles an externally supplied desired center. It pans only when the point
// differs coordinate-wise from the last recorded one; an equal point issues nothing, so
// repeated renders with the same center cannot thrash the map. Zoom is left alone.
func (s *Synchronizer) SetCenter(point datastructure.Point) (Instruction, bool) {
	if s.lastCenter != nil && *s.lastCenter == point {
		return Instruction{}, false
	}
	s.lastCenter = &point
	return Instruction{Center: point}, true
}

// DesiredCenter resolves which center the map should track, by priority: the selected
// place, then a campus passed through query parameters, then the user's geolocation
// fix. Nil when no signal is present.
func DesiredCenter(selected *datastructure.Place, campusParam, userFix *datastructure.Point) *datastructure.Point {
	if selected != nil {
		center := selected.Center()
		return &center
	}
	if campusParam != nil {
		return campusParam
	}
	return userFix
}
