package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

type handlerSlot struct {
	h ErrorHandler
}

var current atomic.Pointer[handlerSlot]

func init() {
	current.Store(&handlerSlot{h: &LogHandler{}})
}

// Handler returns the handler that receives reported errors. It is a
// non-verbose [LogHandler] until SetHandler is called.
func Handler() ErrorHandler {
	return current.Load().h
}

// SetHandler installs h and returns the handler it replaced, so tests can
// restore it with a single deferred call:
//
//	defer errors.SetHandler(errors.SetHandler(h))
//
// Passing nil installs a fresh non-verbose LogHandler.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	return current.Swap(&handlerSlot{h: h}).h
}

func stamp(t *time.Time) {
	if t.IsZero() {
		*t = time.Now()
	}
}

// Report hands a recoverable error to the handler, stamping it if needed.
func Report(err *FluxError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	Handler().HandleError(err)
}

// ReportPanic hands a recovered panic to the handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	Handler().HandlePanic(err)
}

// ReportBuildError hands a failed Build call to the handler.
func ReportBuildError(err *BuildError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	Handler().HandleBuildError(err)
}

func panicError(op string, r any) *PanicError {
	return &PanicError{Op: op, Value: r, StackTrace: CaptureStack(), Timestamp: time.Now()}
}

// Recover reports a panic in progress and lets the caller continue. It must
// be deferred directly:
//
//	defer errors.Recover("viewtest.Tester.Pump")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(panicError(op, r))
	}
}

// RecoverWithCallback is like Recover but then passes the panic value to
// callback. The app layer uses it to report a failed cycle and then panic
// again.
func RecoverWithCallback(op string, callback func(r any)) {
	if r := recover(); r != nil {
		ReportPanic(panicError(op, r))
		if callback != nil {
			callback(r)
		}
	}
}

// CaptureStack formats the calling goroutine's stack, starting at the
// caller of the function that called CaptureStack.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return sb.String()
}
