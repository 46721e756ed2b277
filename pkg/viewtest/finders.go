package viewtest

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/flux-ui/flux/pkg/arena"
	"github.com/flux-ui/flux/pkg/core"
	"github.com/flux-ui/flux/pkg/graphics"
	"github.com/flux-ui/flux/pkg/views"
)

// Finder locates nodes in the tree.
type Finder interface {
	// Evaluate returns all matching nodes (depth-first pre-order).
	Evaluate(tree *core.Tree) []arena.ID
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	tree   *core.Tree
	ids    []arena.ID
	finder Finder
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() arena.ID {
	if len(r.ids) == 0 {
		panic(fmt.Sprintf("Finder found no nodes: %s", r.describe()))
	}
	return r.ids[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) arena.ID {
	if index < 0 || index >= len(r.ids) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.ids), r.describe()))
	}
	return r.ids[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []arena.ID {
	return r.ids
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.ids)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.ids) > 0
}

// View returns the view of the first match.
func (r FinderResult) View() core.View {
	return r.tree.Node(r.First()).View
}

// Rect returns the first match's rectangle in root coordinates.
func (r FinderResult) Rect() graphics.Rect {
	return r.tree.Absolute(r.First())
}

// Center returns the center of the first match in root coordinates.
func (r FinderResult) Center() graphics.Offset {
	rect := r.Rect()
	return rect.Position.Add(graphics.Offset{X: rect.Size.Width / 2, Y: rect.Size.Height / 2})
}

// --- Concrete finders ---

// predicateFinder matches nodes satisfying a predicate.
type predicateFinder struct {
	fn   func(core.NodeInfo) bool
	desc string
}

func (f *predicateFinder) Evaluate(tree *core.Tree) []arena.ID {
	return collectMatches(tree, tree.Root(), f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches nodes satisfying fn.
func ByPredicate(fn func(core.NodeInfo) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// ByName returns a finder that matches nodes by view debug name, such as
// "views.Label".
func ByName(name string) Finder {
	return &predicateFinder{
		fn:   func(info core.NodeInfo) bool { return info.Name == name },
		desc: fmt.Sprintf("ByName(%q)", name),
	}
}

// ByType returns a finder that matches nodes whose view is of type T.
func ByType[T core.View]() Finder {
	want := reflect.TypeFor[T]()
	return &predicateFinder{
		fn:   func(info core.NodeInfo) bool { return reflect.TypeOf(info.View) == want },
		desc: fmt.Sprintf("ByType(%s)", want),
	}
}

// ByText returns a finder that matches [views.Label] with exact content.
func ByText(text string) Finder {
	return &predicateFinder{
		fn: func(info core.NodeInfo) bool {
			l, ok := info.View.(views.Label)
			return ok && l.Content == text
		},
		desc: fmt.Sprintf("ByText(%q)", text),
	}
}

// ByTextContaining returns a finder that matches [views.Label] containing
// substring.
func ByTextContaining(substring string) Finder {
	return &predicateFinder{
		fn: func(info core.NodeInfo) bool {
			l, ok := info.View.(views.Label)
			return ok && strings.Contains(l.Content, substring)
		},
		desc: fmt.Sprintf("ByTextContaining(%q)", substring),
	}
}

// descendantFinder finds nodes matching 'matching' that are descendants of
// nodes matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(tree *core.Tree) []arena.ID {
	matches := make(map[arena.ID]bool)
	for _, id := range f.matching.Evaluate(tree) {
		matches[id] = true
	}
	var results []arena.ID
	seen := make(map[arena.ID]bool)
	for _, ancestor := range f.of.Evaluate(tree) {
		// Skip the ancestor itself.
		for _, child := range tree.Children(ancestor) {
			for _, id := range collectMatches(tree, child, func(info core.NodeInfo) bool { return matches[info.ID] }) {
				if !seen[id] {
					seen[id] = true
					results = append(results, id)
				}
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches nodes satisfying 'matching'
// that are descendants of nodes matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// ancestorFinder finds nodes matching 'matching' that are ancestors of nodes
// matching 'of'.
type ancestorFinder struct {
	of       Finder
	matching Finder
}

func (f *ancestorFinder) Evaluate(tree *core.Tree) []arena.ID {
	candidates := make(map[arena.ID]bool)
	for _, id := range f.matching.Evaluate(tree) {
		candidates[id] = true
	}
	found := make(map[arena.ID]bool)
	for _, id := range f.of.Evaluate(tree) {
		for p := tree.Parent(id); p.IsValid(); p = tree.Parent(p) {
			if candidates[p] {
				found[p] = true
			}
		}
	}
	return collectMatches(tree, tree.Root(), func(info core.NodeInfo) bool { return found[info.ID] })
}

func (f *ancestorFinder) Description() string {
	return fmt.Sprintf("Ancestor(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Ancestor returns a finder that matches nodes satisfying 'matching' that
// are ancestors of nodes matching 'of'.
func Ancestor(of, matching Finder) Finder {
	return &ancestorFinder{of: of, matching: matching}
}

// collectMatches performs a depth-first pre-order traversal from id,
// collecting nodes that satisfy the predicate.
func collectMatches(tree *core.Tree, id arena.ID, predicate func(core.NodeInfo) bool) []arena.ID {
	var results []arena.ID
	walkTree(tree, id, func(info core.NodeInfo) {
		if predicate(info) {
			results = append(results, info.ID)
		}
	})
	return results
}

func walkTree(tree *core.Tree, id arena.ID, visitor func(core.NodeInfo)) {
	info := tree.Node(id)
	visitor(info)
	for _, child := range info.Children {
		walkTree(tree, child, visitor)
	}
}
