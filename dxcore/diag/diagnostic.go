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

package diag

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"dirpx.dev/dxstate/dxcore/errors"
	"dirpx.dev/dxstate/dxcore/model/category"
)

// Diagnostic is one warning about an invalid state value.
type Diagnostic struct {
	// Field is the state key the value was assigned to.
	Field string

	// Reason is the short failure reason, for example "expected type number".
	Reason string

	// Component is the display name of the receiving component.
	Component string

	// Parent is the display name of the rendering component.
	Parent string

	// Validator is the name of the failing validator, e.g. "arrayOf(number)".
	Validator string

	// Category is the category of the rejected value.
	Category category.Category

	// Err is the error returned by the validator's silent check.
	Err error
}

// NewDiagnostic assembles a Diagnostic for a failed check. c may be nil.
func NewDiagnostic(c Context, field, validator string, value any, err error) Diagnostic {
	return Diagnostic{
		Field:     field,
		Reason:    errors.Reason(err),
		Component: displayName(c),
		Parent:    parentDisplayName(c),
		Validator: validator,
		Category:  category.Of(value),
		Err:       err,
	}
}

// String renders the warning line:
//
//	Warning: Invalid state passed to '<field>'. <Reason>. Passed to '<component>'. Check render method of '<parent>'.
//
// Segments whose data is missing are omitted.
func (d Diagnostic) String() string {
	var b strings.Builder

	if d.Field != "" {
		b.WriteString("Warning: Invalid state passed to '")
		b.WriteString(d.Field)
		b.WriteString("'.")
	} else {
		b.WriteString("Warning: Invalid state.")
	}

	if reason := sentence(d.Reason); reason != "" {
		b.WriteString(" ")
		b.WriteString(reason)
	}

	if d.Component != "" {
		b.WriteString(" Passed to '")
		b.WriteString(d.Component)
		b.WriteString("'.")
	}

	if d.Parent != "" {
		b.WriteString(" Check render method of '")
		b.WriteString(d.Parent)
		b.WriteString("'.")
	}

	return b.String()
}

// sentence capitalizes s and terminates it with a single period.
func sentence(s string) string {
	s = strings.TrimRight(strings.TrimSpace(s), ".")
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:] + "."
}
