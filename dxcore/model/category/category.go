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

// Package category classifies Go values into the coarse runtime categories
// that state validators reason about.
//
// A Category is the dxstate analogue of a dynamic language's typeof tag, with
// arrays split out into their own category. Of is the single classification
// function; every primitive validator compares Of(value) against the
// category it expects, so the mapping from Go kinds to categories is defined
// in exactly one place.
package category

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"dirpx.dev/dxstate/dxcore/errors"
	"dirpx.dev/dxstate/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Category describes the runtime category of a value.
//
// This type implements the model.Model interface. The zero value, Unknown,
// is valid and is reported for values no validator can meaningfully accept,
// such as channels.
//
// JSON and YAML serialization uses the lowercase names ("number", "array",
// ...) rather than numeric values.
type Category uint8

const (
	// Unknown is reported for channels, unsafe pointers and invalid
	// reflect values. This is the zero value.
	Unknown Category = iota

	// Undefined is reported for a nil interface value, the analogue of a
	// missing value.
	Undefined

	// Array is reported for slices and arrays, including nil slices.
	Array

	// Boolean is reported for bool.
	Boolean

	// Function is reported for func values, including nil funcs.
	Function

	// Number is reported for every integer, unsigned, floating point and
	// complex kind.
	Number

	// Object is reported for maps, structs and pointers. A nil map or nil
	// pointer is still an Object, the analogue of null.
	Object

	// String is reported for string.
	String
)

const (
	UnknownStr   = "unknown"
	UndefinedStr = "undefined"
	ArrayStr     = "array"
	BooleanStr   = "boolean"
	FunctionStr  = "function"
	NumberStr    = "number"
	ObjectStr    = "object"
	StringStr    = "string"
)

// ParseCategory parses a string into a Category.
//
// The input is trimmed and lowercased before matching. Besides the canonical
// names, the short forms "bool", "func" and "nil" are accepted because they are
// the names used by the validator registry.
//
//	c, err := category.ParseCategory("  Number ")
//	// c = Number, err = nil
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case UnknownStr:
		return Unknown, nil
	case UndefinedStr, "nil":
		return Undefined, nil
	case ArrayStr:
		return Array, nil
	case BooleanStr, "bool":
		return Boolean, nil
	case FunctionStr, "func":
		return Function, nil
	case NumberStr:
		return Number, nil
	case ObjectStr:
		return Object, nil
	case StringStr:
		return String, nil
	default:
		return Unknown, &errors.ParseError{Type: "Category", Value: s}
	}
}

// Of returns the category of v.
//
// Non-nil pointers are classified by the value they point to, so a *int is a
// Number and a *[]string is an Array. Nil pointers are Objects.
func Of(v any) Category {
	if v == nil {
		return Undefined
	}
	return OfValue(reflect.ValueOf(v))
}

// OfValue is Of for an already reflected value.
func OfValue(rv reflect.Value) Category {
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Object
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return Unknown
	}

	switch rv.Kind() {
	case reflect.Interface:
		if rv.IsNil() {
			return Undefined
		}
		return OfValue(rv.Elem())
	case reflect.Bool:
		return Boolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return Number
	case reflect.String:
		return String
	case reflect.Slice, reflect.Array:
		return Array
	case reflect.Func:
		return Function
	case reflect.Map, reflect.Struct:
		return Object
	default:
		return Unknown
	}
}

// Compile-time assertion that Category implements model.Model.
var _ model.Model = (*Category)(nil)

// String returns the lowercase name of the category.
func (c Category) String() string {
	switch c {
	case Unknown:
		return UnknownStr
	case Undefined:
		return UndefinedStr
	case Array:
		return ArrayStr
	case Boolean:
		return BooleanStr
	case Function:
		return FunctionStr
	case Number:
		return NumberStr
	case Object:
		return ObjectStr
	case String:
		return StringStr
	default:
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
}

// Redacted returns String; category names are not sensitive.
func (c Category) Redacted() string {
	return c.String()
}

// TypeName returns "Category".
func (c Category) TypeName() string {
	return "Category"
}

// IsZero reports whether c is Unknown.
func (c Category) IsZero() bool {
	return c == Unknown
}

// Equal reports whether c and other are the same category.
func (c Category) Equal(other Category) bool {
	return c == other
}

// Validate returns an error if c is not one of the defined constants.
func (c Category) Validate() error {
	if c > String {
		return fmt.Errorf("Category value %d is not a known category (valid range: 0-%d)", uint8(c), uint8(String))
	}
	return nil
}

// MarshalText encodes c as its name. It rejects unknown numeric values.
func (c Category) MarshalText() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: c.TypeName(), Value: int(c)}
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a category name via ParseCategory.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return &errors.UnmarshalError{Type: c.TypeName(), Data: text, Reason: err.Error()}
	}
	*c = parsed
	return nil
}

// MarshalJSON encodes c as a JSON string such as "number".
func (c Category) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: c.TypeName(), Value: int(c)}
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a JSON string into c. The receiver is left untouched
// on error.
func (c *Category) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: c.TypeName(), Data: data, Reason: err.Error()}
	}
	return c.UnmarshalText([]byte(str))
}

// MarshalYAML encodes c as a YAML string.
func (c Category) MarshalYAML() (interface{}, error) {
	if err := c.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: c.TypeName(), Value: int(c)}
	}
	return c.String(), nil
}

// UnmarshalYAML decodes a YAML scalar into c. The receiver is left untouched
// on error.
func (c *Category) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: c.TypeName(), Reason: err.Error()}
	}
	return c.UnmarshalText([]byte(str))
}
