// Package errors provides structured error handling for the Fortis component model.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// Sentinel errors for the failure categories of the component model.
// Match them with errors.Is against any returned error.
var (
	// ErrWriteNotAllowed is returned when writing to the children entry or a
	// listener entry of a props view.
	ErrWriteNotAllowed = stderrors.New("write not allowed")
	// ErrUnknownAttribute is returned when a props view is asked for a key
	// its schema does not declare.
	ErrUnknownAttribute = stderrors.New("unknown attribute")
	// ErrKindMismatch is returned when a prop is accessed as a kind other
	// than the one declared in the schema.
	ErrKindMismatch = stderrors.New("prop kind mismatch")
	// ErrInvalidSchema is returned when a prop schema cannot be compiled.
	ErrInvalidSchema = stderrors.New("invalid prop schema")
	// ErrInvalidTag is raised when the factory receives a tag it cannot build.
	ErrInvalidTag = stderrors.New("invalid tag")
	// ErrUnsupportedChild is reported when the factory drops a child value
	// it cannot turn into a node.
	ErrUnsupportedChild = stderrors.New("unsupported child")
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindWriteNotAllowed indicates a write to a read-only view entry.
	KindWriteNotAllowed
	// KindUnknownAttribute indicates access to an undeclared prop.
	KindUnknownAttribute
	// KindKindMismatch indicates typed access of the wrong prop kind.
	KindKindMismatch
	// KindSchema indicates a schema compilation failure.
	KindSchema
	// KindRender indicates a component render failure.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindFactory indicates a tree construction failure.
	KindFactory
)

func (k ErrorKind) String() string {
	switch k {
	case KindWriteNotAllowed:
		return "write-not-allowed"
	case KindUnknownAttribute:
		return "unknown-attribute"
	case KindKindMismatch:
		return "kind-mismatch"
	case KindSchema:
		return "schema"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindFactory:
		return "factory"
	default:
		return "unknown"
	}
}

// FortisError represents a structured error in the component model.
type FortisError struct {
	// Op is the operation that failed (e.g., "props.View.Set").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Key is the prop or attribute name involved, if any.
	Key string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FortisError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s [%s] key=%s: %v", e.Op, e.Kind, e.Key, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FortisError) Unwrap() error {
	return e.Err
}

// WriteNotAllowed builds the error returned for writes to read-only entries.
func WriteNotAllowed(op, key string) *FortisError {
	return &FortisError{Op: op, Kind: KindWriteNotAllowed, Key: key, Err: ErrWriteNotAllowed}
}

// UnknownAttribute builds the error returned for undeclared prop keys.
func UnknownAttribute(op, key string) *FortisError {
	return &FortisError{Op: op, Kind: KindUnknownAttribute, Key: key, Err: ErrUnknownAttribute}
}

// KindMismatch builds the error returned for access with the wrong prop kind.
func KindMismatch(op, key, detail string) *FortisError {
	return &FortisError{
		Op:   op,
		Kind: KindKindMismatch,
		Key:  key,
		Err:  fmt.Errorf("%w: %s", ErrKindMismatch, detail),
	}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "dom.DispatchSignal").
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

// RenderError represents a failure during a component render.
type RenderError struct {
	// Component is the stable name of the component that failed.
	Component string
	// Type is the Go type of the component value.
	Type string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RenderError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in %s.Render(): %v", e.Component, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error in %s.Render(): %v", e.Component, e.Err)
	}
	return fmt.Sprintf("unknown error in %s.Render()", e.Component)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the component model.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *FortisError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleRenderError is called when a component render fails.
	HandleRenderError(err *RenderError)
}
