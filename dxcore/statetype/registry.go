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
	"fmt"
	"reflect"
	"sort"
	"strings"

	"dirpx.dev/dxstate/dxcore/errors"
)

// registry maps the names a component framework uses in state declarations
// to the primitive validators.
var registry = map[string]*Validator{
	"any":    Any,
	"array":  Array,
	"bool":   Bool,
	"func":   Func,
	"number": Number,
	"object": Object,
	"string": String,
}

// Registry returns a copy of the name to validator mapping:
// any, array, bool, func, number, object and string.
func Registry() map[string]*Validator {
	out := make(map[string]*Validator, len(registry))
	for k, v := range registry {
		out[k] = v
	}
	return out
}

// Names returns the registered names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the primitive validator registered under name. The match is
// exact apart from surrounding whitespace.
func Lookup(name string) (*Validator, error) {
	if v, ok := registry[strings.TrimSpace(name)]; ok {
		return v, nil
	}
	return nil, &errors.ParseError{Type: "Validator", Value: name}
}

// Factory builds a validator from a descriptor argument. An argument of the
// wrong type yields a validator that reports a malformed descriptor, as the
// typed constructors do for nil arguments.
type Factory func(arg any) *Validator

// factories maps the declaration names of the composite validators to their
// constructors.
var factories = map[string]Factory{
	"arrayOf": func(arg any) *Validator {
		elem, ok := arg.(*Validator)
		if !ok {
			return malformed("arrayOf", "arrayOf", fmt.Sprintf("expected an element validator, got %T", arg))
		}
		return ArrayOf(elem)
	},
	"objectOf": func(arg any) *Validator {
		elem, ok := arg.(*Validator)
		if !ok {
			return malformed("objectOf", "objectOf", fmt.Sprintf("expected a value validator, got %T", arg))
		}
		return ObjectOf(elem)
	},
	"oneOfType": func(arg any) *Validator {
		list, reason := validatorList(arg)
		if reason != "" {
			return malformed("oneOfType", "oneOfType", reason)
		}
		return OneOfType(list)
	},
	"shape": func(arg any) *Validator {
		fields, reason := validatorMap(arg)
		if reason != "" {
			return malformed("shape", "shape", reason)
		}
		return Shape(fields)
	},
	"instanceOf": func(arg any) *Validator {
		t, ok := arg.(reflect.Type)
		if !ok {
			return malformed("instanceOf", "instanceOf", fmt.Sprintf("expected a type, got %T", arg))
		}
		return InstanceOf(t)
	},
}

// FactoryNames returns the names of the composite factories in sorted order.
func FactoryNames() []string {
	names := make([]string, 0, len(factories))
	for k := range factories {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// LookupFactory returns the composite factory registered under name:
// arrayOf, objectOf, oneOfType, shape or instanceOf.
//
//	f, _ := statetype.LookupFactory("arrayOf")
//	items := f(statetype.String)
func LookupFactory(name string) (Factory, error) {
	if f, ok := factories[strings.TrimSpace(name)]; ok {
		return f, nil
	}
	return nil, &errors.ParseError{Type: "Factory", Value: name}
}

// validatorList accepts []*Validator, or []any holding only validators.
func validatorList(arg any) ([]*Validator, string) {
	switch a := arg.(type) {
	case []*Validator:
		return a, ""
	case []any:
		if a == nil {
			return nil, ""
		}
		out := make([]*Validator, len(a))
		for i, x := range a {
			v, ok := x.(*Validator)
			if !ok {
				return nil, fmt.Sprintf("expected a validator at index %d, got %T", i, x)
			}
			out[i] = v
		}
		return out, ""
	default:
		return nil, fmt.Sprintf("expected an array, got %T", arg)
	}
}

// validatorMap accepts map[string]*Validator, a Declaration, or
// map[string]any holding only validators.
func validatorMap(arg any) (map[string]*Validator, string) {
	switch a := arg.(type) {
	case map[string]*Validator:
		return a, ""
	case Declaration:
		return a, ""
	case map[string]any:
		if a == nil {
			return nil, ""
		}
		out := make(map[string]*Validator, len(a))
		for k, x := range a {
			v, ok := x.(*Validator)
			if !ok && x != nil {
				return nil, fmt.Sprintf("expected a validator for key %q, got %T", k, x)
			}
			out[k] = v
		}
		return out, ""
	default:
		return nil, fmt.Sprintf("expected an object of validators, got %T", arg)
	}
}
