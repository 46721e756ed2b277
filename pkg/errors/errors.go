// Package errors provides structured error handling for the Flux view engine.
//
// Two classes of failure exist. Recoverable failures (a malformed config file,
// a missing asset) are returned as *FluxError values and may be reported to the
// global ErrorHandler. Programmer errors (a dangling node ID, overlapping state
// access, a missing state entry) are not recoverable: the engine panics with an
// *InvariantError so the failure surfaces at the offending call site.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindIdentity indicates a lookup with a removed or foreign node ID.
	KindIdentity
	// KindState indicates a state access without a registered entry.
	KindState
	// KindAliasing indicates overlapping exclusive and shared state access.
	KindAliasing
	// KindLayout indicates an inconsistent size or layout result.
	KindLayout
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindBuild indicates a failure while building a view.
	KindBuild
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindIdentity:
		return "identity"
	case KindState:
		return "state"
	case KindAliasing:
		return "aliasing"
	case KindLayout:
		return "layout"
	case KindPanic:
		return "panic"
	case KindBuild:
		return "build"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// FluxError represents a structured, recoverable error.
type FluxError struct {
	// Op is the operation that failed (e.g., "config.LoadOptional").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// View is the debug name of the view involved, if any.
	View string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FluxError) Error() string {
	if e.View != "" {
		return fmt.Sprintf("%s [%s] view=%s: %v", e.Op, e.Kind, e.View, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FluxError) Unwrap() error {
	return e.Err
}

// InvariantError is the panic payload for programmer errors detected by the
// engine. It is never returned.
type InvariantError struct {
	// Op is the operation that detected the violation (e.g., "arena.Get").
	Op string
	// Kind categorizes the violation.
	Kind ErrorKind
	// Detail describes what was violated.
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s [%s]: %s", e.Op, e.Kind, e.Detail)
}

// Invariant panics with an *InvariantError built from the arguments.
func Invariant(op string, kind ErrorKind, format string, args ...any) {
	panic(&InvariantError{Op: op, Kind: kind, Detail: fmt.Sprintf(format, args...)})
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "app.MouseInput").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes an *InvariantError or error panic value.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// BuildError represents a failure while a view was building.
type BuildError struct {
	// View is the debug name of the view that failed.
	View string
	// Depth is the depth of the failing node in the tree.
	Depth int
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BuildError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in %s.Build(): %v", e.View, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error in %s.Build(): %v", e.View, e.Err)
	}
	return fmt.Sprintf("unknown error in %s.Build()", e.View)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the engine.
type ErrorHandler interface {
	// HandleError is called when a recoverable error occurs.
	HandleError(err *FluxError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleBuildError is called when a view build fails.
	HandleBuildError(err *BuildError)
}
