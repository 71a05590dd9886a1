package schedule

import "time"

// Drag gesture states: Idle -> Dragging -> Idle (via drop or cancel).
type DragState int

const (
	DragIdle DragState = iota
	DragDragging
)

// Drag orchestrates one drag gesture at a time: it picks an event up, tracks
// the hover cell for visual feedback, and on release either emits a MoveEvent
// through the Mutator or discards the gesture. It never touches the event
// list itself.
type Drag struct {
	grid Grid
	mut  Mutator

	state    DragState
	evt      Event
	duration time.Duration
	hover    Cell
	hovering bool
}

func NewDrag(grid Grid, mut Mutator) *Drag {
	return &Drag{grid: grid, mut: mut}
}

func (d *Drag) State() DragState { return d.state }

// PickUp attaches a persisted event to the pointer and captures its duration.
// A second pick-up during an active gesture is ignored, as is an event whose
// times would not yield a positive duration.
func (d *Drag) PickUp(evt Event) bool {
	if d.state != DragIdle || !evt.IsPersisted() || !evt.End.After(evt.Start) {
		return false
	}
	d.state = DragDragging
	d.evt = evt
	d.duration = evt.Duration()
	return true
}

// Hover recomputes the hover cell for visual feedback. It mutates nothing else.
func (d *Drag) Hover(p Point) (Cell, bool) {
	if d.state != DragDragging {
		return Cell{}, false
	}
	d.hover, d.hovering = d.grid.CellFromPoint(p)
	return d.hover, d.hovering
}

// Drop releases the dragged event at p. Over a valid cell it resolves the new
// start from the grid, preserves the captured duration exactly and emits a
// move request; the emitted times always satisfy end-after-start because the
// duration is positive. A release outside the grid is a discard of intent,
// not an error: the gesture cancels and nothing is emitted. The gesture ends
// either way; a rejected move leaves local state untouched and is returned
// for the caller to surface.
func (d *Drag) Drop(p Point, ref time.Time) (Event, bool, error) {
	if d.state != DragDragging {
		return Event{}, false, nil
	}

	cell, ok := d.grid.CellFromPoint(p)
	if !ok {
		d.Cancel()
		return Event{}, false, nil
	}

	newStart := d.grid.InstantFromCell(cell, ref)
	mv := MoveEvent{Start: newStart, End: newStart.Add(d.duration)}
	id := d.evt.ID
	d.Cancel()

	evt, err := d.mut.MoveEvent(id, mv)
	if err != nil {
		return Event{}, false, err
	}
	return evt, true, nil
}

// Cancel ends the gesture without emitting anything. Also used on external
// cancel signals such as losing pointer capture.
func (d *Drag) Cancel() {
	d.state = DragIdle
	d.evt = Event{}
	d.duration = 0
	d.hovering = false
}
