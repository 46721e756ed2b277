// Package views provides the reference view library: spacers, labels,
// row and column containers, padding, decorations, pointer listeners, and
// an adapter for user-defined components.
//
// Views are plain values. Containers hold their children in exported fields
// so that two views built from the same inputs compare equal and the engine
// can reuse their nodes:
//
//	views.Column(
//	    views.Text("Items"),
//	    views.PaddingAll(8, views.NewSpacer().Width(40).Height(40)),
//	).WithSpacing(16)
//
// Views that hold funcs (MouseListener) never compare equal, so they are
// rebuilt whenever their parent is.
package views
