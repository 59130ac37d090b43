// Package errors provides structured error handling for drawer components.
//
// Interactive code paths never return errors to the host: a gesture that hits
// a bad index or a missing element corrects itself locally and reports what
// happened here, so the installed [ErrorHandler] decides whether it is logged.
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
	// KindConfig indicates invalid configuration, such as an out-of-range snap index.
	KindConfig
	// KindGeometry indicates a geometry value that was tolerated but unusual.
	KindGeometry
	// KindTarget indicates a missing DOM target.
	KindTarget
	// KindParsing indicates a declarative value that failed to parse.
	KindParsing
	// KindPanic indicates a recovered panic.
	KindPanic
)

var kindNames = map[ErrorKind]string{
	KindConfig:   "config",
	KindGeometry: "geometry",
	KindTarget:   "target",
	KindParsing:  "parsing",
	KindPanic:    "panic",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Corrected reports whether errors of this kind were already absorbed by
// the drawer (a clamped index, a skipped overlay) rather than left unhandled.
func (k ErrorKind) Corrected() bool {
	return k == KindConfig || k == KindGeometry || k == KindTarget
}

// DrawerError represents a structured error raised by a drawer component.
type DrawerError struct {
	// Op is the operation that failed (e.g., "drawer.SnapTo").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Target is the DOM target name involved, if any.
	Target string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *DrawerError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s [%s] target=%s: %v", e.Op, e.Kind, e.Target, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *DrawerError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "drawer.handlePointerMove").
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

// ParseError represents a failure to parse a declarative value.
type ParseError struct {
	// Attribute is the attribute or key the value came from.
	Attribute string
	// DataType is the expected type name.
	DataType string
	// Got is the raw value received.
	Got any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s from %s: got %T(%v)", e.DataType, e.Attribute, e.Got, e.Got)
}

// ErrorHandler receives errors reported by drawer components.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *DrawerError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
