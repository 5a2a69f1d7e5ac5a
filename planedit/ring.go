package planedit

import "github.com/itsuki-jitera/rail-track-app-sub005/trackdata"

// DefaultHistoryCapacity is the default number of snapshots an Editor
// keeps for undo, beyond the current plan line itself.
const DefaultHistoryCapacity = 50

// Editor wraps a plan line with a bounded history of prior snapshots,
// letting a caller undo and redo edits made through the operations in
// editor.go (§3, §9: "a bounded ring buffer of immutable PlanLine
// snapshots"). It is not safe for concurrent use.
type Editor struct {
	capacity int
	past     []trackdata.PlanLine
	future   []trackdata.PlanLine
	current  trackdata.PlanLine
}

// NewEditor starts an Editor at the given plan line with the given
// history capacity. A non-positive capacity falls back to
// DefaultHistoryCapacity.
func NewEditor(plan trackdata.PlanLine, capacity int) *Editor {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &Editor{capacity: capacity, current: plan}
}

// Current returns the editor's current plan line.
func (e *Editor) Current() trackdata.PlanLine { return e.current }

// Do pushes the current plan onto the undo history and adopts next as
// the current plan, discarding any redo history (§9). A full history
// drops its oldest entry.
func (e *Editor) Do(next trackdata.PlanLine) {
	e.past = append(e.past, e.current)
	if len(e.past) > e.capacity {
		e.past = e.past[len(e.past)-e.capacity:]
	}
	e.current = next
	e.future = nil
}

// Undo restores the most recently pushed plan, moving the current plan
// onto the redo stack. It reports false if there is nothing to undo.
func (e *Editor) Undo() (trackdata.PlanLine, bool) {
	if len(e.past) == 0 {
		return e.current, false
	}
	last := len(e.past) - 1
	prev := e.past[last]
	e.past = e.past[:last]
	e.future = append(e.future, e.current)
	e.current = prev
	return e.current, true
}

// Redo re-applies the most recently undone plan. It reports false if
// there is nothing to redo.
func (e *Editor) Redo() (trackdata.PlanLine, bool) {
	if len(e.future) == 0 {
		return e.current, false
	}
	last := len(e.future) - 1
	next := e.future[last]
	e.future = e.future[:last]
	e.past = append(e.past, e.current)
	e.current = next
	return e.current, true
}

// CanUndo reports whether Undo would succeed.
func (e *Editor) CanUndo() bool { return len(e.past) > 0 }

// CanRedo reports whether Redo would succeed.
func (e *Editor) CanRedo() bool { return len(e.future) > 0 }
