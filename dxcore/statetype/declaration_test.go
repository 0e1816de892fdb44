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
	stderrors "errors"
	"reflect"
	"testing"

	"dirpx.dev/dxstate/dxcore/diag"
	"dirpx.dev/dxstate/dxcore/errors"
	"dirpx.dev/rxmerr"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	r := Registry()

	want := map[string]*Validator{
		"any":    Any,
		"array":  Array,
		"bool":   Bool,
		"func":   Func,
		"number": Number,
		"object": Object,
		"string": String,
	}
	require.Len(t, r, len(want))
	for name, v := range want {
		assert.Same(t, v, r[name], name)
	}

	delete(r, "any")
	_, err := Lookup("any")
	assert.NoError(t, err, "Registry returns a copy")
}

func TestNames(t *testing.T) {
	want := []string{"any", "array", "bool", "func", "number", "object", "string"}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestLookup(t *testing.T) {
	v, err := Lookup(" bool ")
	require.NoError(t, err)
	assert.Same(t, Bool, v)

	_, err = Lookup("symbol")
	var pe *errors.ParseError
	require.True(t, stderrors.As(err, &pe))
	assert.Equal(t, "symbol", pe.Value)
}

func TestFactoryNames(t *testing.T) {
	assert.Equal(t, []string{"arrayOf", "instanceOf", "objectOf", "oneOfType", "shape"}, FactoryNames())
}

func TestLookupFactory(t *testing.T) {
	build := func(name string, arg any) *Validator {
		t.Helper()
		f, err := LookupFactory(name)
		require.NoError(t, err)
		return f(arg)
	}

	tests := []struct {
		name    string
		v       *Validator
		want    string
		valid   any
		invalid any
	}{
		{"arrayOf", build("arrayOf", Number), "arrayOf(number)", []int{1}, []any{"1"}},
		{"objectOf", build(" objectOf ", String), "objectOf(string)", map[string]string{"a": "x"}, map[string]any{"a": 1}},
		{"oneOfType", build("oneOfType", []*Validator{String, Number}), "oneOfType(string|number)", 1, true},
		{"oneOfType from []any", build("oneOfType", []any{Bool}), "oneOfType(bool)", false, "x"},
		{"shape", build("shape", map[string]*Validator{"id": Number}), "shape{id:number}", map[string]any{"id": 1}, map[string]any{"id": "1"}},
		{"shape from declaration", build("shape", Declaration{"id": Number}), "shape{id:number}", map[string]any{"id": 2}, map[string]any{"id": true}},
		{"shape from map[string]any", build("shape", map[string]any{"id": Number, "skip": nil}), "shape{id:number}", map[string]any{"id": 3}, map[string]any{"id": "x"}},
		{"instanceOf", build("instanceOf", reflect.TypeFor[testClass]()), "instanceOf(statetype.testClass)", testClass{}, testClass2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Name())
			assert.NoError(t, tt.v.Check(tt.valid))
			assert.Error(t, tt.v.Check(tt.invalid))
		})
	}
}

func TestLookupFactory_WrongArgument(t *testing.T) {
	tests := []struct {
		factory string
		arg     any
		reason  string
	}{
		{"arrayOf", "string", "expected an element validator, got string"},
		{"objectOf", nil, "expected a value validator, got <nil>"},
		{"oneOfType", String, "expected an array, got *statetype.Validator"},
		{"oneOfType", []any{String, "number"}, "expected a validator at index 1, got string"},
		{"oneOfType", []any(nil), "expected an array"},
		{"shape", []any{String}, "expected an object of validators, got []interface {}"},
		{"shape", map[string]any{"id": "number"}, `expected a validator for key "id", got string`},
		{"instanceOf", testClass{}, "expected a type, got statetype.testClass"},
	}

	for _, tt := range tests {
		t.Run(tt.factory, func(t *testing.T) {
			f, err := LookupFactory(tt.factory)
			require.NoError(t, err)

			var de *errors.DescriptorError
			require.True(t, stderrors.As(f(tt.arg).Check(1), &de))
			assert.Equal(t, tt.factory, de.Type)
			assert.Equal(t, tt.reason, de.Reason)
		})
	}
}

func TestLookupFactory_Unknown(t *testing.T) {
	_, err := LookupFactory("string")
	var pe *errors.ParseError
	require.True(t, stderrors.As(err, &pe))
	assert.Equal(t, "Factory", pe.Type)
	assert.Equal(t, "string", pe.Value)
}

func TestDeclaration_Validate(t *testing.T) {
	rec := recordDefault(t)

	decl := Declaration{
		"items":  ArrayOf(String),
		"count":  Number,
		"filter": OneOfType([]*Validator{String, Func}),
	}

	ok := decl.Validate(diag.Component("TodoList", "App"), map[string]any{
		"items":  []any{"a", 1},
		"count":  "3",
		"filter": "done",
		"extra":  true,
	})
	assert.True(t, ok)

	got := make([]string, 0, rec.Len())
	for _, d := range rec.Diagnostics() {
		got = append(got, d.String())
	}
	want := []string{
		"Warning: Invalid state passed to 'count'. Expected type number. Passed to 'TodoList'. Check render method of 'App'.",
		"Warning: Invalid state passed to 'items'. Expected an array of single type. Passed to 'TodoList'. Check render method of 'App'.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestDeclaration_MissingKeysAreNotRequired(t *testing.T) {
	rec := recordDefault(t)

	decl := Declaration{"count": Number, "title": String}
	decl.Validate(nil, map[string]any{})
	decl.Validate(nil, nil)

	assert.Zero(t, rec.Len())
	assert.NoError(t, decl.Check(map[string]any{"title": "x"}))
}

func TestDeclaration_Check(t *testing.T) {
	decl := Declaration{"count": Number, "title": String, "items": ArrayOf(Number)}

	err := decl.Check(map[string]any{"count": "1", "title": "ok", "items": []any{"x"}})
	require.Error(t, err)

	errs := rxmerr.Errors(err)
	require.Len(t, errs, 2)

	fields := make([]string, len(errs))
	for i, e := range errs {
		var ve *errors.ValidationError
		require.True(t, stderrors.As(e, &ve))
		fields[i] = ve.Field
	}
	assert.Equal(t, []string{"count", "items"}, fields)

	var te *errors.TypeError
	assert.True(t, stderrors.As(errs[0], &te))
}

func TestDeclaration_NilValidator(t *testing.T) {
	rec := recordDefault(t)

	decl := Declaration{"broken": nil}
	decl.Validate(nil, map[string]any{"broken": 1})

	require.Equal(t, 1, rec.Len())
	var de *errors.DescriptorError
	assert.True(t, stderrors.As(rec.Diagnostics()[0].Err, &de))

	assert.Error(t, decl.Check(map[string]any{"broken": 1}))
}

func TestDeclaration_WithSink(t *testing.T) {
	global := recordDefault(t)
	local := &diag.Recorder{}

	decl := Declaration{"count": Number, "broken": nil}.WithSink(local)
	decl.Validate(nil, map[string]any{"count": "x", "broken": 1})

	assert.Equal(t, 2, local.Len())
	assert.Zero(t, global.Len())
	assert.Equal(t, []string{"broken", "count"}, decl.Keys())
}
