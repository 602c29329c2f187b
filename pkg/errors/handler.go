package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler is the global error handler.
	// It defaults to LogHandler with verbose=false.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler configures the global error handler and returns the previous
// one. Pass nil to restore the default LogHandler.
func SetHandler(h ErrorHandler) ErrorHandler {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := DefaultHandler
	if h == nil {
		DefaultHandler = &LogHandler{}
	} else {
		DefaultHandler = h
	}
	return prev
}

func getHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report sends an error to the global handler.
// If err.Timestamp is zero, it is set to the current time.
func Report(err *CalcError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleError(err)
	}
}

// ReportPanic sends a panic error to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandlePanic(err)
	}
}

// Recover stops a panic in the function that defers it, reports it with
// the display shown at the time, and passes the report to onPanic if set.
// It must be deferred directly:
//
//	defer errors.Recover("calc.listener", display, nil)
func Recover(op, display string, onPanic func(*PanicError)) {
	r := recover()
	if r == nil {
		return
	}
	perr := &PanicError{
		Op:         op,
		Value:      r,
		Display:    display,
		StackTrace: CaptureStack(),
	}
	ReportPanic(perr)
	if onPanic != nil {
		onPanic(perr)
	}
}

const recoverFunc = "github.com/go-drift/calcphone/pkg/errors.Recover"

// CaptureStack returns the caller's stack, one "function\n\tfile:line"
// entry per frame. Frames inside the runtime, such as the panic machinery
// between a deferred Recover and the panic site, are left out.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var sb strings.Builder
	for {
		frame, more := frames.Next()
		if frame.Function != "" && frame.Function != recoverFunc &&
			!strings.HasPrefix(frame.Function, "runtime.") {
			fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return sb.String()
}
