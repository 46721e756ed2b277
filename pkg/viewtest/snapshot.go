package viewtest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/flux-ui/flux/pkg/arena"
	"github.com/flux-ui/flux/pkg/core"
	"github.com/flux-ui/flux/pkg/graphics"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the node tree and the recorded drawing operations.
type Snapshot struct {
	Tree       *Node       `json:"tree"`
	DisplayOps []DisplayOp `json:"displayOps,omitempty"`
}

// Node represents a node in the serialized tree.
type Node struct {
	ID       string     `json:"id"`
	Type     string     `json:"type"`
	Size     [2]float64 `json:"size"`
	Offset   [2]float64 `json:"offset"`
	Children []*Node    `json:"children,omitempty"`
}

// DisplayOp represents a serialized drawing operation with absolute
// positions.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// CaptureSnapshot captures the current tree and its painted operations.
func (t *Tester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{}
	if t.tree == nil {
		return snap
	}
	snap.Tree = captureNode(t.tree, t.tree.Root(), &typeCounter{})
	snap.DisplayOps = serializeOps(t.Paint().Ops())
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When FLUX_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("FLUX_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: FLUX_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: FLUX_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other, with other's
// lines marked "-" and this snapshot's lines marked "+". It is empty when
// both encode the same.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return lineDiff(string(b), string(a))
}

// --- Internal ---

// typeCounter assigns stable IDs like "views.Flex#0", "views.Flex#1".
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func captureNode(tree *core.Tree, id arena.ID, counter *typeCounter) *Node {
	info := tree.Node(id)
	l := info.Layout
	node := &Node{
		ID:     counter.next(info.Name),
		Type:   info.Name,
		Size:   [2]float64{round2(l.Size.Width), round2(l.Size.Height)},
		Offset: [2]float64{round2(l.Position.X), round2(l.Position.Y)},
	}
	for _, child := range info.Children {
		node.Children = append(node.Children, captureNode(tree, child, counter))
	}
	return node
}

func serializeOps(ops []graphics.DisplayOp) []DisplayOp {
	out := make([]DisplayOp, 0, len(ops))
	for _, op := range ops {
		switch op := op.(type) {
		case graphics.RectOp:
			params := shapeParams(op.Pos, op.Size, op.Paint)
			out = append(out, DisplayOp{Op: "rect", Params: params})
		case graphics.RoundedRectOp:
			params := shapeParams(op.Pos, op.Size, op.Paint)
			params["radius"] = round2(op.Radius)
			out = append(out, DisplayOp{Op: "roundedRect", Params: params})
		case graphics.TextOp:
			out = append(out, DisplayOp{Op: "text", Params: map[string]any{
				"text":     op.Text.Text,
				"pos":      [2]float64{round2(op.Pos.X), round2(op.Pos.Y)},
				"fontSize": round2(op.Text.Style.FontSize),
				"color":    op.Text.Style.Color.String(),
			}})
		}
	}
	return out
}

func shapeParams(pos graphics.Offset, size graphics.Size, paint graphics.Paint) map[string]any {
	params := map[string]any{
		"rect":  [4]float64{round2(pos.X), round2(pos.Y), round2(size.Width), round2(size.Height)},
		"color": paint.Color.String(),
		"style": paint.Style.String(),
	}
	if paint.Style == graphics.PaintStyleStroke {
		params["strokeWidth"] = round2(paint.StrokeWidth)
	}
	return params
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// lineDiff reports the lines of actual that differ from expected.
func lineDiff(expected, actual string) string {
	return cmp.Diff(strings.Split(expected, "\n"), strings.Split(actual, "\n"))
}
