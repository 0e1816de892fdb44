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

package category

import (
	"encoding/json"
	stderrors "errors"
	"reflect"
	"testing"
	"unsafe"

	"dirpx.dev/dxstate/dxcore/errors"
	"gopkg.in/yaml.v3"
)

type widget struct{ Label string }

func TestOf(t *testing.T) {
	var nilSlice []int
	var nilMap map[string]int
	var nilPtr *widget
	var nilFunc func()
	n := 7
	var iface any = "x"

	tests := []struct {
		name  string
		value any
		want  Category
	}{
		{"nil", nil, Undefined},
		{"bool", true, Boolean},
		{"int", 1, Number},
		{"uint8", uint8(1), Number},
		{"float64", 1.5, Number},
		{"complex", complex(1, 2), Number},
		{"uintptr", uintptr(1), Number},
		{"string", "s", String},
		{"empty string", "", String},
		{"slice", []int{1}, Array},
		{"nil slice", nilSlice, Array},
		{"array", [2]string{"a", "b"}, Array},
		{"func", func() {}, Function},
		{"nil func", nilFunc, Function},
		{"map", map[string]any{}, Object},
		{"nil map", nilMap, Object},
		{"struct", widget{}, Object},
		{"struct pointer", &widget{}, Object},
		{"nil pointer", nilPtr, Object},
		{"pointer to int", &n, Number},
		{"pointer to interface", &iface, String},
		{"chan", make(chan int), Unknown},
		{"unsafe pointer", unsafe.Pointer(&n), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Of(tt.value); got != tt.want {
				t.Errorf("Of(%T) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestOfValue_InterfaceElements(t *testing.T) {
	values := []any{nil, 1, "x"}
	rv := reflect.ValueOf(values)

	want := []Category{Undefined, Number, String}
	for i, w := range want {
		if got := OfValue(rv.Index(i)); got != w {
			t.Errorf("OfValue(values[%d]) = %v, want %v", i, got, w)
		}
	}

	if got := OfValue(reflect.Value{}); got != Unknown {
		t.Errorf("OfValue(invalid) = %v, want %v", got, Unknown)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{"number", "number", Number, false},
		{"upper with spaces", "  ARRAY ", Array, false},
		{"bool alias", "bool", Boolean, false},
		{"boolean", "boolean", Boolean, false},
		{"func alias", "func", Function, false},
		{"nil alias", "nil", Undefined, false},
		{"object", "object", Object, false},
		{"string", "string", String, false},
		{"unknown", "unknown", Unknown, false},

		{"empty", "", Unknown, true},
		{"symbol", "symbol", Unknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseCategory() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseCategory() = %v, want %v", got, tt.want)
			}
			if tt.wantErr {
				var pe *errors.ParseError
				if !stderrors.As(err, &pe) {
					t.Errorf("ParseCategory() error type = %T, want *errors.ParseError", err)
				}
			}
		})
	}
}

func TestCategory_String(t *testing.T) {
	tests := []struct {
		c    Category
		want string
	}{
		{Unknown, "unknown"},
		{Undefined, "undefined"},
		{Array, "array"},
		{Boolean, "boolean"},
		{Function, "function"},
		{Number, "number"},
		{Object, "object"},
		{String, "string"},
		{Category(42), "Category(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.c.String(); got != tt.want {
				t.Errorf("Category.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCategory_Validate(t *testing.T) {
	for c := Unknown; c <= String; c++ {
		if err := c.Validate(); err != nil {
			t.Errorf("%v.Validate() error = %v, want nil", c, err)
		}
	}
	if err := Category(99).Validate(); err == nil {
		t.Error("Category(99).Validate() error = nil, want error")
	}
}

func TestCategory_Model(t *testing.T) {
	if !Unknown.IsZero() || Number.IsZero() {
		t.Error("IsZero() must hold only for Unknown")
	}
	if !Number.Equal(Number) || Number.Equal(String) {
		t.Error("Equal() mismatch")
	}
	if got := Array.TypeName(); got != "Category" {
		t.Errorf("TypeName() = %q, want %q", got, "Category")
	}
	if got := Array.Redacted(); got != "array" {
		t.Errorf("Redacted() = %q, want %q", got, "array")
	}
}

func TestCategory_JSON(t *testing.T) {
	data, err := json.Marshal(map[string]Category{"kind": Function})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if want := `{"kind":"function"}`; string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}

	var c Category
	if err := json.Unmarshal([]byte(`"  Boolean "`), &c); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if c != Boolean {
		t.Errorf("json.Unmarshal() = %v, want %v", c, Boolean)
	}

	c = Number
	if err := json.Unmarshal([]byte(`"symbol"`), &c); err == nil {
		t.Error("json.Unmarshal(symbol) error = nil, want error")
	}
	if c != Number {
		t.Errorf("receiver modified on error: got %v, want %v", c, Number)
	}

	if _, err := json.Marshal(Category(200)); err == nil {
		t.Error("json.Marshal(Category(200)) error = nil, want error")
	}
}

func TestCategory_YAML(t *testing.T) {
	data, err := yaml.Marshal(map[string]Category{"kind": Object})
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	if want := "kind: object\n"; string(data) != want {
		t.Errorf("yaml.Marshal() = %q, want %q", data, want)
	}

	var out struct {
		Kind Category `yaml:"kind"`
	}
	if err := yaml.Unmarshal([]byte("kind: STRING\n"), &out); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if out.Kind != String {
		t.Errorf("yaml.Unmarshal() = %v, want %v", out.Kind, String)
	}

	if err := yaml.Unmarshal([]byte("kind: symbol\n"), &out); err == nil {
		t.Error("yaml.Unmarshal(symbol) error = nil, want error")
	}
}

func TestCategory_Text(t *testing.T) {
	text, err := Array.MarshalText()
	if err != nil || string(text) != "array" {
		t.Errorf("MarshalText() = %q, %v; want %q, nil", text, err, "array")
	}

	var c Category
	err = c.UnmarshalText([]byte("bogus"))
	var ue *errors.UnmarshalError
	if !stderrors.As(err, &ue) {
		t.Errorf("UnmarshalText() error type = %T, want *errors.UnmarshalError", err)
	}
}
