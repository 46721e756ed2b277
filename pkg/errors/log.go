package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler writes one line per report. It is the default handler.
type LogHandler struct {
	// Verbose adds kinds, view names and stack traces.
	Verbose bool
	// Out overrides the destination; nil means os.Stderr.
	Out io.Writer
}

func (h *LogHandler) writer() io.Writer {
	if h.Out == nil {
		return os.Stderr
	}
	return h.Out
}

func (h *LogHandler) trace(w io.Writer, stack string) {
	if h.Verbose && stack != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", stack)
	}
}

func (h *LogHandler) HandleError(err *FluxError) {
	if err == nil {
		return
	}
	w := h.writer()
	label := err.Op
	if h.Verbose {
		label = fmt.Sprintf("%s [%s]", err.Op, err.Kind)
		if err.View != "" {
			label += " view=" + err.View
		}
	}
	fmt.Fprintf(w, "[flux error] %s: %v\n", label, err.Err)
	h.trace(w, err.StackTrace)
}

func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.writer()
	if err.Op == "" {
		fmt.Fprintf(w, "[flux panic] %v\n", err.Value)
	} else {
		fmt.Fprintf(w, "[flux panic] %s: %v\n", err.Op, err.Value)
	}
	h.trace(w, err.StackTrace)
}

func (h *LogHandler) HandleBuildError(err *BuildError) {
	if err == nil {
		return
	}
	w := h.writer()
	fmt.Fprintf(w, "[flux build error] %s (depth %d)\n", err.Error(), err.Depth)
	h.trace(w, err.StackTrace)
}
