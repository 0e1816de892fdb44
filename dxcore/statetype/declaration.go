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

package statetype

import (
	"sort"

	"dirpx.dev/dxstate/dxcore/diag"
	"dirpx.dev/dxstate/dxcore/errors"
	"dirpx.dev/rxmerr"
)

// Declaration maps the state keys of a component to their validators. It is
// what a component declares once and validates against on every render.
//
//	var todoState = statetype.Declaration{
//	    "items":  statetype.ArrayOf(statetype.String),
//	    "filter": statetype.OneOfType([]*statetype.Validator{statetype.String, statetype.Func}),
//	}
type Declaration map[string]*Validator

// Keys returns the declared keys in sorted order.
func (d Declaration) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate runs every declared validator in warn mode against the matching
// entry of state, in key order. Keys absent from state and keys absent from
// the declaration are skipped. A nil validator reports a malformed
// descriptor for its key.
//
// Validate always returns true.
func (d Declaration) Validate(c diag.Context, state map[string]any) bool {
	for _, k := range d.Keys() {
		value, ok := state[k]
		if !ok {
			continue
		}
		d.validator(k).Validate(c, k, value)
	}
	return true
}

// Check runs every declared validator silently and returns all failures
// combined with rxmerr. Each failure is a *errors.ValidationError whose
// Field is the state key.
func (d Declaration) Check(state map[string]any) error {
	errs := rxmerr.NewCollector()
	for _, k := range d.Keys() {
		value, ok := state[k]
		if !ok {
			continue
		}
		v := d.validator(k)
		if err := v.Check(value); err != nil {
			errs.Append(&errors.ValidationError{Type: v.Name(), Field: k, Reason: errors.Reason(err), Value: value, Cause: err})
		}
	}
	return errs.Err()
}

// WithSink returns a copy of d whose validators emit to s.
func (d Declaration) WithSink(s diag.Sink) Declaration {
	out := make(Declaration, len(d))
	for k := range d {
		out[k] = d.validator(k).WithSink(s)
	}
	return out
}

func (d Declaration) validator(key string) *Validator {
	if v := d[key]; v != nil {
		return v
	}
	return malformed("nil", "declaration", "expected a validator for state key "+key+", got nil")
}
