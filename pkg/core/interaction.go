package core

import (
	"fmt"

	"github.com/flux-ui/flux/pkg/graphics"
)

// InteractionKind identifies a raw pointer event.
type InteractionKind uint8

const (
	// PointerMove reports cursor movement.
	PointerMove InteractionKind = iota
	// PointerDown reports a primary button press.
	PointerDown
	// PointerUp reports a primary button release.
	PointerUp
)

func (k InteractionKind) String() string {
	switch k {
	case PointerMove:
		return "move"
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	default:
		return fmt.Sprintf("InteractionKind(%d)", int(k))
	}
}

// Interaction is a pointer event at a position in some coordinate space.
type Interaction struct {
	Kind     InteractionKind
	Position graphics.Offset
}

// Move returns a PointerMove interaction at p.
func Move(p graphics.Offset) Interaction { return Interaction{Kind: PointerMove, Position: p} }

// Down returns a PointerDown interaction at p.
func Down(p graphics.Offset) Interaction { return Interaction{Kind: PointerDown, Position: p} }

// Up returns a PointerUp interaction at p.
func Up(p graphics.Offset) Interaction { return Interaction{Kind: PointerUp, Position: p} }

// Translate re-expresses i in a space whose origin sits at origin.
func (i Interaction) Translate(origin graphics.Offset) Interaction {
	i.Position = i.Position.Sub(origin)
	return i
}

// Inside reports whether the position lies in [0, size) on both axes.
func (i Interaction) Inside(size graphics.Size) bool {
	return graphics.Rect{Size: size}.Contains(i.Position)
}

func (i Interaction) String() string {
	return fmt.Sprintf("%v(%g, %g)", i.Kind, i.Position.X, i.Position.Y)
}
