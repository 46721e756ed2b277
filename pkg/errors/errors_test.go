package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestFluxErrorString(t *testing.T) {
	err := &FluxError{
		Op:   "config.LoadOptional",
		Kind: KindConfig,
		Err:  fmt.Errorf("bad yaml"),
	}
	want := "config.LoadOptional [config]: bad yaml"
	if got := err.Error(); got != want {
		t.Errorf("FluxError.Error() = %q, want %q", got, want)
	}
}

func TestFluxErrorWithView(t *testing.T) {
	err := &FluxError{
		Op:   "core.Tree.Mount",
		Kind: KindLayout,
		View: "views.Label",
		Err:  fmt.Errorf("negative size"),
	}
	got := err.Error()
	if !strings.Contains(got, "view=views.Label") {
		t.Errorf("error string %q should contain view name", got)
	}
}

func TestFluxErrorUnwrap(t *testing.T) {
	inner := fmt.Errorf("inner")
	err := &FluxError{Op: "op", Err: inner}
	if !stderrors.Is(err, inner) {
		t.Error("errors.Is should see the wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindIdentity, "identity"},
		{KindState, "state"},
		{KindAliasing, "aliasing"},
		{KindLayout, "layout"},
		{KindPanic, "panic"},
		{KindBuild, "build"},
		{KindConfig, "config"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestInvariantPanics(t *testing.T) {
	defer func() {
		r := recover()
		inv, ok := r.(*InvariantError)
		if !ok {
			t.Fatalf("recovered %T, want *InvariantError", r)
		}
		if inv.Kind != KindIdentity {
			t.Errorf("Kind = %v, want identity", inv.Kind)
		}
		want := "arena.Get [identity]: slot 3 is stale"
		if inv.Error() != want {
			t.Errorf("Error() = %q, want %q", inv.Error(), want)
		}
	}()
	Invariant("arena.Get", KindIdentity, "slot %d is stale", 3)
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	want := "panic: test panic"
	if got := err.Error(); got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorStringWithOp(t *testing.T) {
	err := &PanicError{
		Op:        "app.MouseInput",
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	want := "panic in app.MouseInput: test panic"
	if got := err.Error(); got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorUnwrapsInvariant(t *testing.T) {
	inv := &InvariantError{Op: "state.GetMut", Kind: KindAliasing, Detail: "overlap"}
	err := &PanicError{Value: inv}
	var target *InvariantError
	if !stderrors.As(err, &target) {
		t.Fatal("errors.As should find the invariant payload")
	}
	if target.Kind != KindAliasing {
		t.Errorf("Kind = %v, want aliasing", target.Kind)
	}
}

func TestReport(t *testing.T) {
	var capturedErr *FluxError
	handler := &testHandler{
		onError: func(err *FluxError) {
			capturedErr = err
		},
	}

	defer SetHandler(SetHandler(handler))

	Report(&FluxError{
		Op:   "test.op",
		Kind: KindConfig,
		Err:  fmt.Errorf("boom"),
	})

	if capturedErr == nil {
		t.Fatal("expected error to be captured")
	}
	if capturedErr.Op != "test.op" {
		t.Errorf("Op = %q, want %q", capturedErr.Op, "test.op")
	}
	if capturedErr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportPanic(t *testing.T) {
	var capturedPanic *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			capturedPanic = err
		},
	}

	defer SetHandler(SetHandler(handler))

	ReportPanic(&PanicError{
		Value:     "test panic value",
		Timestamp: time.Now(),
	})

	if capturedPanic == nil {
		t.Fatal("expected panic to be captured")
	}
	if capturedPanic.Value != "test panic value" {
		t.Errorf("Value = %v, want %q", capturedPanic.Value, "test panic value")
	}
}

func TestRecover(t *testing.T) {
	var capturedPanic *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			capturedPanic = err
		},
	}

	defer SetHandler(SetHandler(handler))

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if capturedPanic == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if capturedPanic.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", capturedPanic.Value, "intentional test panic")
	}
	if capturedPanic.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", capturedPanic.Op, "test.recover")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	defer SetHandler(SetHandler(&testHandler{}))

	var got any
	func() {
		defer RecoverWithCallback("test.callback", func(r any) { got = r })
		panic(42)
	}()
	if got != 42 {
		t.Errorf("callback value = %v, want 42", got)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	defer SetHandler(SetHandler(nil))
	if _, ok := Handler().(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", Handler())
	}
}

func TestSetHandlerReturnsPrevious(t *testing.T) {
	first := &testHandler{}
	restore := SetHandler(first)
	defer SetHandler(restore)

	if got := SetHandler(&testHandler{}); got != first {
		t.Errorf("SetHandler returned %p, want %p", got, first)
	}
}

func TestBuildErrorString(t *testing.T) {
	err := &BuildError{
		View:      "demo.Counter",
		Recovered: "nil pointer dereference",
		Timestamp: time.Now(),
	}
	want := "panic in demo.Counter.Build(): nil pointer dereference"
	if got := err.Error(); got != want {
		t.Errorf("BuildError.Error() = %q, want %q", got, want)
	}

	err2 := &BuildError{View: "demo.Counter", Err: fmt.Errorf("bad")}
	if got := err2.Error(); !strings.Contains(got, "error in demo.Counter.Build()") {
		t.Errorf("BuildError.Error() = %q, should contain 'error in'", got)
	}

	err3 := &BuildError{View: "demo.Counter"}
	want3 := "unknown error in demo.Counter.Build()"
	if got := err3.Error(); got != want3 {
		t.Errorf("BuildError.Error() = %q, want %q", got, want3)
	}
}

func TestReportBuildError(t *testing.T) {
	var capturedErr *BuildError
	handler := &testHandler{
		onBuildError: func(err *BuildError) {
			capturedErr = err
		},
	}

	defer SetHandler(SetHandler(handler))

	ReportBuildError(&BuildError{View: "demo.Test", Recovered: "test panic"})

	if capturedErr == nil {
		t.Fatal("expected build error to be captured")
	}
	if capturedErr.View != "demo.Test" {
		t.Errorf("View = %q, want %q", capturedErr.View, "demo.Test")
	}
	if capturedErr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestLogHandlerWritesToOut(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleError(&FluxError{Op: "config.Parse", Kind: KindConfig, Err: fmt.Errorf("bad")})
	h.HandlePanic(&PanicError{Op: "app.Resize", Value: "boom"})
	got := buf.String()
	for _, want := range []string{"[flux error] config.Parse: bad", "[flux panic] app.Resize: boom"} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
}

type testHandler struct {
	onError      func(*FluxError)
	onPanic      func(*PanicError)
	onBuildError func(*BuildError)
}

func (h *testHandler) HandleError(err *FluxError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func (h *testHandler) HandleBuildError(err *BuildError) {
	if h.onBuildError != nil {
		h.onBuildError(err)
	}
}
