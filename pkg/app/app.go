// Package app connects a view tree to a windowing event loop.
//
// The event loop owns the window and calls into [App] for each window event.
// App keeps the single tracked cursor, turns pointer events into
// interactions, runs the update cycle after every interaction, and paints
// the tree when the loop asks for a redraw.
package app

import (
	"sync"

	"github.com/flux-ui/flux/pkg/core"
	"github.com/flux-ui/flux/pkg/errors"
	"github.com/flux-ui/flux/pkg/graphics"
)

// DeviceID identifies a pointing device reported by the windowing system.
type DeviceID uint64

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

type cursor struct {
	device   DeviceID
	position graphics.Offset
	placed   bool
}

// App drives a [core.Tree] from window events. Its event methods may be
// called from multiple goroutines and are applied one at a time. The tree
// returned by Tree is not synchronized and must only be used while no
// event is being delivered.
type App struct {
	mu       sync.Mutex
	options  WindowOptions
	tree     *core.Tree
	cursor   *cursor
	pending  bool
	onRedraw func()
}

// New mounts root in a window described by options.
func New(root core.View, options WindowOptions) *App {
	a := &App{options: options}
	a.tree = core.NewTree(root, core.WithRedrawCallback(a.requestRedraw))
	func() {
		defer errors.RecoverWithCallback("app.New", repanic)
		a.tree.Mount(options.Size)
	}()
	core.Logger().Info("app created",
		"title", options.Title,
		"width", options.Size.Width,
		"height", options.Size.Height,
		"background", options.Background.String())
	return a
}

// Options returns the window options the app was created with, with Size
// tracking the latest resize.
func (a *App) Options() WindowOptions {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.options
}

// Tree returns the underlying tree. Callers must not touch it concurrently
// with event delivery.
func (a *App) Tree() *core.Tree {
	return a.tree
}

// OnRequestRedraw registers fn to be called when the window should be
// repainted. The loop answers by calling RedrawRequested.
func (a *App) OnRequestRedraw(fn func()) {
	a.mu.Lock()
	a.onRedraw = fn
	pending := a.pending
	a.mu.Unlock()
	if pending && fn != nil {
		fn()
	}
}

// NeedsRedraw reports whether a redraw was requested and not yet served.
func (a *App) NeedsRedraw() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pending
}

// requestRedraw is called by the tree at the end of a cycle. Event methods
// hold a.mu while the cycle runs, so fn passed to OnRequestRedraw must not
// call back into the App synchronously. During New the lock is not held; the
// App is not shared yet and no callback is registered.
func (a *App) requestRedraw() {
	a.pending = true
	if a.onRedraw != nil {
		a.onRedraw()
	}
}

// Resize lays the tree out for a new logical window size.
func (a *App) Resize(size graphics.Size) {
	a.mu.Lock()
	defer a.mu.Unlock()
	defer errors.RecoverWithCallback("app.Resize", repanic)
	a.options.Size = size
	a.tree.Resize(size)
}

// CursorEntered starts tracking device if no cursor is tracked yet.
func (a *App) CursorEntered(device DeviceID) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cursor == nil {
		a.cursor = &cursor{device: device}
	}
}

// CursorLeft stops tracking device.
func (a *App) CursorLeft(device DeviceID) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cursor != nil && a.cursor.device == device {
		a.cursor = nil
	}
}

// CursorMoved records the position of the tracked cursor and dispatches a
// move. Other devices are ignored.
func (a *App) CursorMoved(device DeviceID, pos graphics.Offset) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cursor == nil || a.cursor.device != device {
		return
	}
	a.cursor.position = pos
	a.cursor.placed = true
	a.interact("app.CursorMoved", core.Move(pos))
}

// MouseInput dispatches a press or release of the left button at the
// tracked cursor. Other buttons, untracked devices, and a cursor that has
// not moved yet are ignored.
func (a *App) MouseInput(device DeviceID, button MouseButton, pressed bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cursor == nil || a.cursor.device != device || !a.cursor.placed {
		return
	}
	if button != MouseButtonLeft {
		return
	}
	i := core.Up(a.cursor.position)
	if pressed {
		i = core.Down(a.cursor.position)
	}
	a.interact("app.MouseInput", i)
}

// RedrawRequested paints the tree onto p.
func (a *App) RedrawRequested(p graphics.Painter) {
	a.mu.Lock()
	defer a.mu.Unlock()
	defer errors.RecoverWithCallback("app.RedrawRequested", repanic)
	a.pending = false
	a.tree.Draw(p)
}

func (a *App) interact(op string, i core.Interaction) {
	defer errors.RecoverWithCallback(op, repanic)
	a.tree.Interact(i)
	a.tree.Update()
}

// repanic runs after a panic from the tree has been reported. A failed
// cycle leaves the tree inconsistent, so the app does not continue.
func repanic(r any) {
	panic(r)
}
