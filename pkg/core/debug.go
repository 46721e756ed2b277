package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/flux-ui/flux/pkg/arena"
)

// Dump writes an indented outline of the tree with each node's layout and
// the flags raised in the last cycle.
func (t *Tree) Dump(w io.Writer) error {
	var err error
	t.Walk(func(id arena.ID, info NodeInfo) bool {
		if err != nil {
			return false
		}
		l := info.Layout
		_, err = fmt.Fprintf(w, "%s%s %v pos=(%g, %g) size=(%g, %g) %v\n",
			strings.Repeat("  ", info.Depth), info.Name, id,
			l.Position.X, l.Position.Y, l.Size.Width, l.Size.Height, info.Change)
		return err == nil
	})
	return err
}
