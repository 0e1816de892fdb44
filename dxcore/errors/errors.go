/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package errors provides the error types shared by the dxstate packages.
//
// Two families live here. The first reports problems with enum-like values
// (category names, log formats) while parsing, marshaling or unmarshaling
// them. The second reports validation outcomes produced by state validators
// and by configuration checks.
//
// All types are simple value carriers with stable message formats. They are
// designed to be:
//
//   - cheap to construct from validator predicates,
//   - recognizable via errors.As,
//   - readable when surfaced in warnings and logs.
//
// # Validation taxonomy
//
//   - TypeError
//     The runtime category of a value differs from the expected one.
//
//   - DescriptorError
//     A validator was built from a malformed descriptor, for example a union
//     without a validator list or a shape without a key map. Validators built
//     this way fail every check with this error instead of panicking.
//
//   - ValidationError
//     A composite check (array, object, shape, union) or a configuration
//     constraint failed. Cause carries the nested failures, if any.
//
// Reason extracts the short human-readable reason from any of the three, which
// is what the warning emitter prints.
package errors

import (
	stderrors "errors"
	"strconv"
)

// ParseError is returned when parsing a string into a strongly typed enum-like
// value fails.
//
// Type identifies the logical type being parsed (for example, "Category" or
// "Format"), and Value contains the exact string that could not be
// interpreted.
//
// # Example
//
//	func ParseFormat(s string) (Format, error) {
//	    switch s {
//	    case "json":
//	        return FormatJSON, nil
//	    default:
//	        // "dxstate: invalid Format value: <value>"
//	        return 0, &errors.ParseError{Type: "Format", Value: s}
//	    }
//	}
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Category").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxstate: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return "dxstate: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails due to it being
// outside the set of valid constants.
//
// In most cases a MarshalError indicates a programming error, such as a
// category value produced by an unchecked conversion.
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxstate: cannot marshal invalid {Type} value: {Value}"
func (e *MarshalError) Error() string {
	return "dxstate: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Data contains the original raw payload and Reason a short explanation.
// Data is deliberately left out of Error() so that large or sensitive
// payloads do not end up in logs.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxstate: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return "dxstate: cannot unmarshal " + e.Type + ": " + e.Reason
}

// TypeError is returned when the runtime category of a value does not match
// the category a validator expects.
//
// Expected and Actual hold category names ("number", "array", ...). Type is the
// name of the validator that rejected the value.
//
// # Example
//
//	// "dxstate: number expected type number, got string"
//	&errors.TypeError{Type: "number", Expected: "number", Actual: "string"}
type TypeError struct {
	// Type is the name of the validator reporting the mismatch.
	Type string

	// Expected is the category name the validator requires.
	Expected string

	// Actual is the category name of the value that was checked.
	Actual string

	// Value optionally contains the rejected value.
	Value any
}

// Error implements the error interface for TypeError.
//
// The error message format is:
//
//	"dxstate: {Type} expected type {Expected}, got {Actual}"
func (e *TypeError) Error() string {
	return "dxstate: " + e.Type + " expected type " + e.Expected + ", got " + e.Actual
}

// Reason returns the short form printed in warnings, "expected type {Expected}".
func (e *TypeError) Reason() string {
	return "expected type " + e.Expected
}

// DescriptorError is returned when a validator was constructed from a
// malformed descriptor.
//
// The error is not raised at construction time. The factory returns a
// validator that reports DescriptorError from every check, so that a bad
// declaration produces warnings rather than crashing the caller.
type DescriptorError struct {
	// Type is the name of the factory that received the bad descriptor
	// (for example, "oneOfType").
	Type string

	// Reason describes what the factory expected.
	Reason string
}

// Error implements the error interface for DescriptorError.
//
// The error message format is:
//
//	"dxstate: malformed {Type} descriptor: {Reason}"
func (e *DescriptorError) Error() string {
	return "dxstate: malformed " + e.Type + " descriptor: " + e.Reason
}

// ValidationError is returned when validation of a composite value or of a
// configuration model fails.
//
// Type identifies the validator or model (for example, "arrayOf(number)" or
// "Config"), Field optionally identifies which field or state key failed,
// Reason provides a human-readable explanation, and Cause holds the nested
// failures that led to this one. Cause is typically an rxmerr combination of
// per-element errors.
//
// # Example
//
//	return &errors.ValidationError{
//	    Type:   "arrayOf(number)",
//	    Reason: "expected an array of single type",
//	    Cause:  rxmerr.Combine(elementErrs...),
//	}
type ValidationError struct {
	// Type is the logical name of the validator or model.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire value.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	// May be nil if not applicable or if the value should not be logged.
	Value any

	// Cause holds the underlying failures, if any.
	Cause error
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxstate: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxstate: invalid {Type}: {Reason}" (when Field is empty)
//
// followed by ": {Cause}" when Cause is set.
func (e *ValidationError) Error() string {
	msg := "dxstate: invalid " + e.Type
	if e.Field != "" {
		msg += "." + e.Field
	}
	msg += ": " + e.Reason
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns Cause so that errors.Is and errors.As reach nested failures.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Reason returns the short human-readable reason carried by err.
//
// For TypeError it is "expected type {Expected}"; for DescriptorError and
// ValidationError it is the Reason field. A ValidationError that only names a
// field and wraps another failure yields the reason of that failure. Any other
// non-nil error yields err.Error(), and nil yields "".
func Reason(err error) string {
	if err == nil {
		return ""
	}

	var te *TypeError
	var de *DescriptorError
	var ve *ValidationError
	switch {
	case stderrors.As(err, &ve):
		if ve.Reason == "" && ve.Cause != nil {
			return Reason(ve.Cause)
		}
		return ve.Reason
	case stderrors.As(err, &de):
		return de.Reason
	case stderrors.As(err, &te):
		return te.Reason()
	default:
		return err.Error()
	}
}
