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
	"dirpx.dev/dxstate/dxcore/model/category"
	"dirpx.dev/rxmerr"
)

// ArrayOf returns a validator accepting slices and arrays whose every element
// passes elem. Empty and nil slices pass. All failing elements are reported
// in the error's Cause, each prefixed with its index.
func ArrayOf(elem *Validator) *Validator {
	if elem == nil {
		return malformed("arrayOf(nil)", "arrayOf", "expected an element validator, got nil")
	}

	name := "arrayOf(" + elem.Name() + ")"
	return New(name, func(value any) error {
		if err := expectCategory(name, category.Array, value); err != nil {
			return err
		}

		rv := indirect(reflect.ValueOf(value))
		errs := rxmerr.NewCollector()
		for i := 0; i < rv.Len(); i++ {
			if err := elem.Check(rv.Index(i).Interface()); err != nil {
				errs.Append(fmt.Errorf("[%d]: %w", i, err))
			}
		}
		if errs.HasError() {
			return &errors.ValidationError{Type: name, Reason: "expected an array of single type", Value: value, Cause: errs.Err()}
		}
		return nil
	})
}

// ObjectOf returns a validator accepting values whose every own value passes
// elem: map values, exported struct fields (embedded structs flattened as
// encoding/json does) and slice or array elements keyed by index. Anything
// else, nil included, has no values and passes.
func ObjectOf(elem *Validator) *Validator {
	if elem == nil {
		return malformed("objectOf(nil)", "objectOf", "expected a value validator, got nil")
	}

	name := "objectOf(" + elem.Name() + ")"
	return New(name, func(value any) error {
		errs := rxmerr.NewCollector()
		for _, e := range entries(indirect(reflect.ValueOf(value))) {
			if err := elem.Check(e.value); err != nil {
				errs.Append(fmt.Errorf("[%q]: %w", e.key, err))
			}
		}
		if errs.HasError() {
			return &errors.ValidationError{Type: name, Reason: "expected object of one type", Value: value, Cause: errs.Err()}
		}
		return nil
	})
}

// OneOfType returns a validator accepting values that pass at least one of
// validators, tried in order. A nil list, or a nil entry in it, is a
// malformed descriptor. An empty list accepts nothing.
func OneOfType(validators []*Validator) *Validator {
	if validators == nil {
		return malformed("oneOfType(nil)", "oneOfType", "expected an array")
	}

	names := make([]string, len(validators))
	for i, v := range validators {
		if v == nil {
			return malformed("oneOfType", "oneOfType", fmt.Sprintf("expected a validator at index %d, got nil", i))
		}
		names[i] = v.Name()
	}

	list := append([]*Validator(nil), validators...)
	name := "oneOfType(" + strings.Join(names, "|") + ")"
	return New(name, func(value any) error {
		errs := rxmerr.NewCollector()
		for _, v := range list {
			err := v.Check(value)
			if err == nil {
				return nil
			}
			errs.Append(err)
		}
		return &errors.ValidationError{Type: name, Reason: "expected one of given types", Value: value, Cause: errs.Err()}
	})
}

// Shape returns a validator accepting maps and structs whose values at the
// keys of fields pass the corresponding validators.
//
// Keys are not required: a key that is absent, or whose value is falsy (nil,
// false, zero number, empty string, nil slice/map/pointer/func), is skipped.
// Struct fields are matched by json tag name, else by field name, with
// embedded structs flattened as encoding/json does. A value that is not a map
// or struct, nil included, has no keys and passes. Nil entries in fields are
// ignored. A nil fields map is a malformed descriptor.
func Shape(fields map[string]*Validator) *Validator {
	if fields == nil {
		return malformed("shape(nil)", "shape", "expected an object of validators")
	}

	keys := make([]string, 0, len(fields))
	spec := make(map[string]*Validator, len(fields))
	for k, v := range fields {
		if v == nil {
			continue
		}
		keys = append(keys, k)
		spec[k] = v
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ":" + spec[k].Name()
	}
	name := "shape{" + strings.Join(parts, ",") + "}"

	return New(name, func(value any) error {
		rv := indirect(reflect.ValueOf(value))
		errs := rxmerr.NewCollector()
		for _, k := range keys {
			fv, ok := lookup(rv, k)
			if !ok || !truthy(fv) {
				continue
			}
			if err := spec[k].Check(fv.Interface()); err != nil {
				errs.Append(fmt.Errorf("[%q]: %w", k, err))
			}
		}
		if errs.HasError() {
			return &errors.ValidationError{Type: name, Reason: "expected object with a specific shape", Value: value, Cause: errs.Err()}
		}
		return nil
	})
}

// InstanceOf returns a validator accepting values whose dynamic type is
// assignable to t. For an interface t that means "implements t". A pointer
// and the type it points to are treated as the same class, so InstanceOf of
// a struct type accepts pointers to it and vice versa.
func InstanceOf(t reflect.Type) *Validator {
	if t == nil {
		return malformed("instanceOf(nil)", "instanceOf", "expected a type, got nil")
	}

	name := "instanceOf(" + t.String() + ")"
	reason := "expected instance of " + t.String()
	return New(name, func(value any) error {
		if !isInstance(reflect.TypeOf(value), t) {
			return &errors.ValidationError{Type: name, Reason: reason, Value: value}
		}
		return nil
	})
}

// InstanceOfType is InstanceOf for the type parameter T.
//
//	statetype.InstanceOfType[*Store]()
//	statetype.InstanceOfType[fmt.Stringer]()
func InstanceOfType[T any]() *Validator {
	return InstanceOf(reflect.TypeFor[T]())
}

func isInstance(vt, t reflect.Type) bool {
	switch {
	case vt == nil:
		return false
	case vt.AssignableTo(t):
		return true
	case vt.Kind() == reflect.Pointer && vt.Elem().AssignableTo(t):
		return true
	case t.Kind() == reflect.Pointer && vt.AssignableTo(t.Elem()):
		return true
	default:
		return false
	}
}

// malformed returns a validator that rejects every value with a
// DescriptorError.
func malformed(name, factory, reason string) *Validator {
	err := &errors.DescriptorError{Type: factory, Reason: reason}
	return New(name, func(any) error {
		return err
	})
}
