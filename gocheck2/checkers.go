// Extensions to the go-check unittest framework.
//
// NOTE: see https://github.com/go-check/check/pull/6 for reasons why these
// checkers live here.
package gocheck2

import (
	"errors"

	. "gopkg.in/check.v1"
)

// -----------------------------------------------------------------------
// IsTrue / IsFalse checker.

type isBoolValueChecker struct {
	*CheckerInfo
	expected bool
}

func (checker *isBoolValueChecker) Check(
	params []interface{},
	names []string) (
	result bool,
	error string) {

	obtained, ok := params[0].(bool)
	if !ok {
		return false, "Argument to " + checker.Name + " must be bool"
	}

	return obtained == checker.expected, ""
}

// The IsTrue checker verifies that the obtained value is true.
//
// For example:
//
//     c.Assert(value, IsTrue)
//
var IsTrue Checker = &isBoolValueChecker{
	&CheckerInfo{Name: "IsTrue", Params: []string{"obtained"}},
	true,
}

// The IsFalse checker verifies that the obtained value is false.
//
// For example:
//
//     c.Assert(value, IsFalse)
//
var IsFalse Checker = &isBoolValueChecker{
	&CheckerInfo{Name: "IsFalse", Params: []string{"obtained"}},
	false,
}

// -----------------------------------------------------------------------
// ErrorIs checker.

type errorIsChecker struct {
	*CheckerInfo
}

func (checker *errorIsChecker) Check(
	params []interface{},
	names []string) (
	result bool,
	errStr string) {

	if params[0] == nil {
		return false, ""
	}
	obtained, ok := params[0].(error)
	if !ok {
		return false, "First argument to ErrorIs must be an error"
	}
	target, ok := params[1].(error)
	if !ok {
		return false, "Second argument to ErrorIs must be an error"
	}

	return errors.Is(obtained, target), ""
}

// The ErrorIs checker verifies that the obtained error is, or wraps, the
// expected error.
//
// For example:
//
//     c.Assert(cursor.Err(), ErrorIs, ErrCursorInvalidated)
//
var ErrorIs Checker = &errorIsChecker{
	&CheckerInfo{Name: "ErrorIs", Params: []string{"obtained", "expected"}},
}
