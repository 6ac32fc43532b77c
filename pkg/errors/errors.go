// Package errors provides structured error handling for the Forms control core.
//
// The core performs no I/O; every failure is either a caller contract
// violation (a usage error, which is reported and then panics) or a recovered
// panic. Install an [ErrorHandler] with [SetHandler] to capture reports.
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
	// KindUsage indicates a caller contract violation, such as passing a
	// composite state mask where a single state is required.
	KindUsage
	// KindStyle indicates a style or theme resolution error.
	KindStyle
	// KindAnimation indicates an animation blending error.
	KindAnimation
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindStyle:
		return "style"
	case KindAnimation:
		return "animation"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// FormsError represents a structured error in the Forms control core.
type FormsError struct {
	// Op is the operation that failed (e.g., "control.SetState").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FormsError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FormsError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "events.Registry.Notify").
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

// ErrorHandler receives errors reported by the control core.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *FormsError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
