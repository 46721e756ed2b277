package graphics

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Painter.
type DisplayList struct {
	ops []DisplayOp
}

// Paint replays the recorded operations onto p.
func (d *DisplayList) Paint(p Painter) {
	if d == nil {
		return
	}
	for _, op := range d.ops {
		op.execute(p)
	}
}

// Ops returns the recorded operations with nested translations flattened
// into absolute positions.
func (d *DisplayList) Ops() []DisplayOp {
	if d == nil {
		return nil
	}
	var out []DisplayOp
	flatten(d.ops, Offset{}, &out)
	return out
}

// Len returns the number of top-level operations.
func (d *DisplayList) Len() int {
	if d == nil {
		return 0
	}
	return len(d.ops)
}

// DisplayOp is one recorded drawing operation.
type DisplayOp interface {
	execute(p Painter)
}

// RectOp records DrawRect.
type RectOp struct {
	Pos   Offset
	Size  Size
	Paint Paint
}

func (op RectOp) execute(p Painter) { p.DrawRect(op.Pos, op.Size, op.Paint) }

// RoundedRectOp records DrawRoundedRect.
type RoundedRectOp struct {
	Pos       Offset
	Size      Size
	Radius    float64
	Smoothing float64
	Paint     Paint
}

func (op RoundedRectOp) execute(p Painter) {
	p.DrawRoundedRect(op.Pos, op.Size, op.Radius, op.Smoothing, op.Paint)
}

// TextOp records DrawText.
type TextOp struct {
	Text  *TextLayout
	Pos   Offset
	Width float64
}

func (op TextOp) execute(p Painter) { p.DrawText(op.Text, op.Pos, op.Width) }

// TranslateOp records a nested Translate scope.
type TranslateOp struct {
	Offset Offset
	Ops    []DisplayOp
}

func (op TranslateOp) execute(p Painter) {
	p.Translate(op.Offset, func(inner Painter) {
		for _, child := range op.Ops {
			child.execute(inner)
		}
	})
}

// ListOp replays a previously recorded display list.
type ListOp struct {
	List *DisplayList
}

func (op ListOp) execute(p Painter) { op.List.Paint(p) }

func flatten(ops []DisplayOp, origin Offset, out *[]DisplayOp) {
	for _, op := range ops {
		switch op := op.(type) {
		case RectOp:
			op.Pos = op.Pos.Add(origin)
			*out = append(*out, op)
		case RoundedRectOp:
			op.Pos = op.Pos.Add(origin)
			*out = append(*out, op)
		case TextOp:
			op.Pos = op.Pos.Add(origin)
			*out = append(*out, op)
		case TranslateOp:
			flatten(op.Ops, origin.Add(op.Offset), out)
		case ListOp:
			if op.List != nil {
				flatten(op.List.ops, origin, out)
			}
		}
	}
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	stack [][]DisplayOp
}

// BeginRecording starts a new recording session and returns the recording
// painter.
func (r *PictureRecorder) BeginRecording() Painter {
	r.stack = [][]DisplayOp{nil}
	return &recordingPainter{recorder: r}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if len(r.stack) == 0 {
		return &DisplayList{}
	}
	ops := r.stack[0]
	r.stack = nil
	return &DisplayList{ops: ops}
}

// Record is a convenience wrapper that records everything fn paints.
func Record(fn func(Painter)) *DisplayList {
	var r PictureRecorder
	fn(r.BeginRecording())
	return r.EndRecording()
}

// DrawList appends a replay of list to the recording.
func DrawList(p Painter, list *DisplayList) {
	if rp, ok := p.(*recordingPainter); ok {
		rp.recorder.append(ListOp{List: list})
		return
	}
	list.Paint(p)
}

func (r *PictureRecorder) append(op DisplayOp) {
	if len(r.stack) == 0 {
		return
	}
	top := len(r.stack) - 1
	r.stack[top] = append(r.stack[top], op)
}

type recordingPainter struct {
	recorder *PictureRecorder
}

func (p *recordingPainter) Translate(offset Offset, fn func(Painter)) {
	r := p.recorder
	r.stack = append(r.stack, nil)
	defer func() {
		top := len(r.stack) - 1
		ops := r.stack[top]
		r.stack = r.stack[:top]
		r.append(TranslateOp{Offset: offset, Ops: ops})
	}()
	fn(p)
}

func (p *recordingPainter) DrawRect(pos Offset, size Size, paint Paint) {
	p.recorder.append(RectOp{Pos: pos, Size: size, Paint: paint})
}

func (p *recordingPainter) DrawRoundedRect(pos Offset, size Size, radius, smoothing float64, paint Paint) {
	p.recorder.append(RoundedRectOp{Pos: pos, Size: size, Radius: radius, Smoothing: smoothing, Paint: paint})
}

func (p *recordingPainter) DrawText(text *TextLayout, pos Offset, width float64) {
	p.recorder.append(TextOp{Text: text, Pos: pos, Width: width})
}
