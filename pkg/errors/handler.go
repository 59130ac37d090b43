package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// handlerSlot boxes the installed handler so it can be swapped atomically.
type handlerSlot struct{ h ErrorHandler }

var installed atomic.Pointer[handlerSlot]

func init() {
	installed.Store(&handlerSlot{h: &LogHandler{}})
}

// Handler returns the handler Report and Recover deliver to. Until a host
// calls SetHandler it is a LogHandler that discards everything, so gesture
// corrections stay silent.
func Handler() ErrorHandler {
	return installed.Load().h
}

// SetHandler installs h and returns the handler it replaced. Nil installs a
// discarding LogHandler.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	return installed.Swap(&handlerSlot{h: h}).h
}

func stamp(t *time.Time) {
	if t.IsZero() {
		*t = time.Now()
	}
}

// Report delivers err to the installed handler, stamping it if needed.
func Report(err *DrawerError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	Handler().HandleError(err)
}

// Reportf reports a DrawerError whose cause is built from format and args.
func Reportf(op string, kind ErrorKind, format string, args ...any) {
	Report(&DrawerError{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)})
}

// ReportPanic delivers a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	Handler().HandlePanic(err)
}

// Recover reports a panic in the deferring function and swallows it, so a
// failing gesture handler cannot unwind the host's event loop:
//
//	defer errors.Recover("drawer.handlePointerUp")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack()})
}

// CaptureStack formats the caller's stack, one "function\n\tfile:line" entry
// per frame.
func CaptureStack() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for more := true; more; {
		var f runtime.Frame
		f, more = frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
	}
	return sb.String()
}
