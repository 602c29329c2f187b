package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that logs errors, one line each.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out receives the log lines. Nil means stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out == nil {
		return os.Stderr
	}
	return h.Out
}

// HandleError logs a CalcError.
func (h *LogHandler) HandleError(err *CalcError) {
	if err == nil {
		return
	}
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[calc error] %s [%s]", err.Op, err.Kind)
		if err.Display != "" {
			fmt.Fprintf(w, " display=%q", err.Display)
		}
		fmt.Fprintf(w, ": %v\n", err.Err)
	} else {
		fmt.Fprintf(w, "[calc error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	fmt.Fprint(w, "[calc panic]")
	if err.Op != "" {
		fmt.Fprintf(w, " %s", err.Op)
	}
	if h.Verbose && err.Display != "" {
		fmt.Fprintf(w, " display=%q", err.Display)
	}
	if err.Op != "" || (h.Verbose && err.Display != "") {
		fmt.Fprint(w, ":")
	}
	fmt.Fprintf(w, " %v\n", err.Value)
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// NopHandler discards everything it receives.
type NopHandler struct{}

func (NopHandler) HandleError(*CalcError)  {}
func (NopHandler) HandlePanic(*PanicError) {}
