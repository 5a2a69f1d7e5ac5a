package planedit

import "testing"

func TestEditorUndoRedo(t *testing.T) {
	p0 := newTestPlan(3, 1)
	ed := NewEditor(p0, 0)

	p1 := newTestPlan(3, 1)
	p1.Samples[0].Value = 1
	ed.Do(p1)

	p2 := newTestPlan(3, 1)
	p2.Samples[0].Value = 2
	ed.Do(p2)

	if ed.Current().Samples[0].Value != 2 {
		t.Fatalf("Current() = %v, want 2", ed.Current().Samples[0].Value)
	}

	prev, ok := ed.Undo()
	if !ok || prev.Samples[0].Value != 1 {
		t.Fatalf("Undo() = (%v,%v), want (1,true)", prev.Samples[0].Value, ok)
	}

	prev, ok = ed.Undo()
	if !ok || prev.Samples[0].Value != 0 {
		t.Fatalf("Undo() = (%v,%v), want (0,true)", prev.Samples[0].Value, ok)
	}

	if _, ok = ed.Undo(); ok {
		t.Errorf("Undo() at history start should report false")
	}

	next, ok := ed.Redo()
	if !ok || next.Samples[0].Value != 1 {
		t.Fatalf("Redo() = (%v,%v), want (1,true)", next.Samples[0].Value, ok)
	}
}

func TestEditorDoClearsRedoHistory(t *testing.T) {
	p0 := newTestPlan(3, 1)
	ed := NewEditor(p0, 0)
	p1 := newTestPlan(3, 1)
	p1.Samples[0].Value = 1
	ed.Do(p1)
	ed.Undo()

	if !ed.CanRedo() {
		t.Fatalf("expected redo to be available after undo")
	}

	p2 := newTestPlan(3, 1)
	p2.Samples[0].Value = 2
	ed.Do(p2)

	if ed.CanRedo() {
		t.Errorf("Do() after Undo() should clear redo history")
	}
}

func TestEditorHistoryCapacityBounded(t *testing.T) {
	p0 := newTestPlan(1, 1)
	ed := NewEditor(p0, 2)
	for i := 1; i <= 5; i++ {
		p := newTestPlan(1, 1)
		p.Samples[0].Value = float64(i)
		ed.Do(p)
	}
	undone := 0
	for {
		if _, ok := ed.Undo(); !ok {
			break
		}
		undone++
	}
	if undone != 2 {
		t.Errorf("undone = %d, want 2 (history capacity)", undone)
	}
}
