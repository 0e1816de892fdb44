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

// Package statetype provides runtime type validators for component state.
//
// A Validator checks one value against a type descriptor. Descriptors are
// either primitives (Any, Array, Bool, Func, Number, Object, String) or
// composites built from other validators (ArrayOf, ObjectOf, OneOfType,
// Shape, InstanceOf). Composites are validators too, so descriptors nest
// freely.
//
// Every Validator wraps a single pure predicate and exposes it in two forms:
//
//   - Check, the silent form, returns nil or a typed error and never logs.
//   - Validate, the warn form, emits one diag.Diagnostic when the value is
//     invalid and always returns true, so callers that ignore the result are
//     unaffected by validation.
//
// Composites only ever call their children through Check. A failing nested
// value therefore produces exactly one warning, from the outermost Validate
// call.
//
// Validators hold no mutable state and are safe for concurrent use.
//
//	todo := statetype.Shape(map[string]*statetype.Validator{
//	    "title": statetype.String,
//	    "tags":  statetype.ArrayOf(statetype.String),
//	})
//	todo.Validate(diag.Component("TodoItem", "TodoList"), "todo", value)
package statetype

import (
	"dirpx.dev/dxstate/dxcore/diag"
)

// Predicate reports why value is invalid, or nil if it is valid. Predicates
// MUST be pure: no logging, no mutation of value, no retained state.
type Predicate func(value any) error

// Validator is an immutable named predicate with warn and silent forms.
type Validator struct {
	name  string
	check Predicate
	sink  diag.Sink
}

// New returns a Validator named name that runs check. A nil check accepts
// every value.
func New(name string, check Predicate) *Validator {
	return &Validator{name: name, check: check}
}

// Name returns the descriptor name, such as "number" or "arrayOf(string)".
func (v *Validator) Name() string {
	if v == nil {
		return ""
	}
	return v.name
}

// Check is the silent form. It returns nil if value is valid and a typed
// error from dxcore/errors otherwise. It never emits diagnostics.
func (v *Validator) Check(value any) error {
	if v == nil {
		return nilValidatorError("validator")
	}
	if v.check == nil {
		return nil
	}
	return v.check(value)
}

// Valid reports whether Check(value) returns nil.
func (v *Validator) Valid(value any) bool {
	return v.Check(value) == nil
}

// Validate is the warn form. If value is invalid it emits one diagnostic
// naming field and the components described by c, which may be nil.
//
// Validate always returns true.
func (v *Validator) Validate(c diag.Context, field string, value any) bool {
	if err := v.Check(value); err != nil {
		v.emit(diag.NewDiagnostic(c, field, v.Name(), value, err))
	}
	return true
}

// WithSink returns a copy of v that emits to s instead of diag.Default().
// A nil s restores the default.
func (v *Validator) WithSink(s diag.Sink) *Validator {
	if v == nil {
		return nil
	}
	cp := *v
	cp.sink = s
	return &cp
}

func (v *Validator) emit(d diag.Diagnostic) {
	s := diag.Default()
	if v != nil && v.sink != nil {
		s = v.sink
	}
	s.Emit(d)
}

func (v *Validator) String() string {
	return v.Name()
}
