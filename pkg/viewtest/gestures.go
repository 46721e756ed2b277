package viewtest

import (
	"fmt"

	"github.com/flux-ui/flux/pkg/core"
	"github.com/flux-ui/flux/pkg/graphics"
)

// Tap simulates a press and release at the center of the first node matched
// by finder.
func (t *Tester) Tap(finder Finder) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Tap: finder matched no nodes: %s", finder.Description())
	}
	return t.TapAt(result.Center())
}

// TapAt moves the cursor to pos, then presses and releases there.
func (t *Tester) TapAt(pos graphics.Offset) error {
	if err := t.MoveTo(pos); err != nil {
		return err
	}
	if err := t.PressAt(pos); err != nil {
		return err
	}
	return t.ReleaseAt(pos)
}

// MoveTo moves the cursor to pos.
func (t *Tester) MoveTo(pos graphics.Offset) error {
	return t.dispatch(core.Move(pos))
}

// PressAt presses the primary button at pos.
func (t *Tester) PressAt(pos graphics.Offset) error {
	return t.dispatch(core.Down(pos))
}

// ReleaseAt releases the primary button at pos.
func (t *Tester) ReleaseAt(pos graphics.Offset) error {
	return t.dispatch(core.Up(pos))
}

// DragFrom presses at start, moves by delta, and releases.
func (t *Tester) DragFrom(start, delta graphics.Offset) error {
	if err := t.PressAt(start); err != nil {
		return err
	}
	end := start.Add(delta)
	if err := t.MoveTo(end); err != nil {
		return err
	}
	return t.ReleaseAt(end)
}

// Cursor returns the position of the last interaction.
func (t *Tester) Cursor() graphics.Offset {
	return t.cursor
}
