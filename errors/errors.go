// This module implements errors which carry the stack trace of the place
// they were created at.
//
// NOTE: This package intentionally mirrors the standard "errors" module, and
// the errors it builds work with errors.Is / errors.As through Unwrap.
package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"runtime"
	"sync"
)

// This interface exposes additional information about the error.
type StackError interface {
	// This returns the error message without the stack trace.
	GetMessage() string

	// This returns the wrapped error, or nil if this does not wrap another
	// error.
	GetInner() error

	// Implements the built-in error interface.
	Error() string

	// Returns string representation of stack frames.
	GetStack() string

	// Same as GetInner. Makes the standard library aware of the chain.
	Unwrap() error
}

type StackFrame struct {
	PC         uintptr
	FuncName   string
	File       string
	LineNumber int
}

type baseError struct {
	msg   string
	inner error

	stack       []uintptr
	framesOnce  sync.Once
	stackFrames []StackFrame
}

// This returns the error string without stack trace information.
func GetMessage(err interface{}) string {
	switch e := err.(type) {
	case StackError:
		return fullMessage(e, false)
	case error:
		return e.Error()
	default:
		return "Passed a non-error to GetMessage"
	}
}

// This returns a string with all available error information, including inner
// errors that are wrapped by this errors.
func (e *baseError) Error() string {
	return fullMessage(e, true)
}

// Implements StackError interface.
func (e *baseError) GetMessage() string {
	return e.msg
}

// Implements StackError interface.
func (e *baseError) GetInner() error {
	return e.inner
}

// Implements StackError interface.
func (e *baseError) Unwrap() error {
	return e.inner
}

func (e *baseError) StackFrames() []StackFrame {
	e.framesOnce.Do(func() {
		frames := runtime.CallersFrames(e.stack)
		for {
			frame, more := frames.Next()
			e.stackFrames = append(e.stackFrames, StackFrame{
				PC:         frame.PC,
				FuncName:   frame.Function,
				File:       frame.File,
				LineNumber: frame.Line,
			})
			if !more {
				break
			}
		}
	})
	return e.stackFrames
}

// Implements StackError interface.
func (e *baseError) GetStack() string {
	buf := bytes.NewBuffer(make([]byte, 0, 256))
	for _, frame := range e.StackFrames() {
		_, _ = buf.WriteString(frame.FuncName)
		_, _ = buf.WriteString("\n")
		fmt.Fprintf(buf, "\t%s:%d +0x%x\n",
			frame.File, frame.LineNumber, frame.PC)
	}
	return buf.String()
}

// This returns a new error initialized with the given message and
// the current stack trace.
func New(msg string) StackError {
	return newError(nil, msg)
}

// Same as New, but with fmt.Printf-style parameters.
func Newf(format string, args ...interface{}) StackError {
	return newError(nil, fmt.Sprintf(format, args...))
}

// Wraps another error in a new StackError.
func Wrap(err error, msg string) StackError {
	return newError(err, msg)
}

// Same as Wrap, but with fmt.Printf-style parameters.
func Wrapf(err error, format string, args ...interface{}) StackError {
	return newError(err, fmt.Sprintf(format, args...))
}

// Must be called directly by the exported constructors; the caller skip
// count below assumes exactly one level of indirection.
func newError(err error, msg string) *baseError {
	stack := make([]uintptr, 64)
	stackLength := runtime.Callers(3, stack)
	return &baseError{
		msg:   msg,
		stack: stack[:stackLength],
		inner: err,
	}
}

// Builds the message of e followed by the messages of every error it wraps.
// If includeStack is true the stack of the deepest StackError is appended.
func fullMessage(e StackError, includeStack bool) string {
	var deepest StackError
	errMsg := bytes.NewBuffer(make([]byte, 0, 256))

	cur := e
	for {
		deepest = cur
		errMsg.WriteString(cur.GetMessage())

		inner := cur.GetInner()
		if inner == nil {
			break
		}
		next, ok := inner.(StackError)
		if !ok {
			errMsg.WriteString(": ")
			errMsg.WriteString(inner.Error())
			break
		}
		errMsg.WriteString("\n")
		cur = next
	}
	if includeStack {
		errMsg.WriteString("\nORIGINAL STACK TRACE:\n")
		errMsg.WriteString(deepest.GetStack())
	}
	return errMsg.String()
}

// Keep peeling away layers of context until a primitive error is revealed.
func RootError(err error) error {
	for {
		inner := stderrors.Unwrap(err)
		if inner == nil {
			return err
		}
		err = inner
	}
}

// Reports whether err or anything it wraps is target.
func IsError(err, target error) bool {
	return stderrors.Is(err, target)
}
