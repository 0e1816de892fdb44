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
	"math"
	"reflect"
	"slices"
	"sort"
	"strconv"
	"strings"
)

type entry struct {
	key   string
	value any
}

// indirect follows pointers and interfaces. It returns the zero Value when it
// meets a nil.
func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

// entries lists map entries sorted by formatted key, struct fields in the
// order of structFields, or slice and array elements keyed by index.
func entries(rv reflect.Value) []entry {
	switch rv.Kind() {
	case reflect.Map:
		out := make([]entry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out = append(out, entry{key: fmt.Sprint(iter.Key().Interface()), value: iter.Value().Interface()})
		}
		sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
		return out
	case reflect.Struct:
		fields := structFields(rv.Type())
		out := make([]entry, 0, len(fields))
		for _, f := range fields {
			fv, err := rv.FieldByIndexErr(f.index)
			if err != nil {
				continue
			}
			out = append(out, entry{key: f.key, value: fv.Interface()})
		}
		return out
	case reflect.Slice, reflect.Array:
		out := make([]entry, rv.Len())
		for i := range out {
			out[i] = entry{key: strconv.Itoa(i), value: rv.Index(i).Interface()}
		}
		return out
	default:
		return nil
	}
}

// lookup returns the value stored under key in a string-keyed map, or in the
// struct field whose key is key.
func lookup(rv reflect.Value, key string) (reflect.Value, bool) {
	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return reflect.Value{}, false
		}
		v := rv.MapIndex(reflect.ValueOf(key).Convert(kt))
		return v, v.IsValid()
	case reflect.Struct:
		for _, f := range structFields(rv.Type()) {
			if f.key != key {
				continue
			}
			fv, err := rv.FieldByIndexErr(f.index)
			if err != nil {
				return reflect.Value{}, false
			}
			return fv, true
		}
		return reflect.Value{}, false
	default:
		return reflect.Value{}, false
	}
}

type field struct {
	key    string
	index  []int
	tagged bool
}

// structFields lists the fields of t visible under encoding/json rules:
// exported fields keyed by json tag name or Go name, fields tagged "-"
// dropped, and untagged embedded structs flattened into their parent. A
// shallower field hides deeper ones with the same key; at equal depth a single
// tagged field wins and otherwise all of them are dropped.
func structFields(t reflect.Type) []field {
	var all []field
	onPath := map[reflect.Type]bool{}

	var walk func(t reflect.Type, index []int)
	walk = func(t reflect.Type, index []int) {
		if onPath[t] {
			return
		}
		onPath[t] = true
		defer delete(onPath, t)

		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			tag := f.Tag.Get("json")
			if tag == "-" {
				continue
			}
			name, _, _ := strings.Cut(tag, ",")
			idx := append(append(make([]int, 0, len(index)+1), index...), i)

			if f.Anonymous && name == "" {
				ft := f.Type
				if ft.Kind() == reflect.Pointer {
					ft = ft.Elem()
				}
				if ft.Kind() == reflect.Struct {
					if !f.IsExported() && f.Type.Kind() == reflect.Pointer {
						continue
					}
					walk(ft, idx)
					continue
				}
			}
			if !f.IsExported() {
				continue
			}

			key := name
			if key == "" {
				key = f.Name
			}
			all = append(all, field{key: key, index: idx, tagged: name != ""})
		}
	}
	walk(t, nil)

	out := make([]field, 0, len(all))
	for _, f := range all {
		if dominant(all, f) {
			out = append(out, f)
		}
	}
	return out
}

func dominant(all []field, f field) bool {
	for _, g := range all {
		if g.key != f.key || len(g.index) > len(f.index) {
			continue
		}
		if len(g.index) < len(f.index) {
			return false
		}
		if slices.Equal(g.index, f.index) {
			continue
		}
		if !f.tagged || g.tagged {
			return false
		}
	}
	return true
}

// truthy reports whether rv holds a value that counts as present for Shape.
// nil, false, zero numbers, NaN and "" are falsy; structs, arrays and
// non-nil references are truthy.
func truthy(rv reflect.Value) bool {
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return truthy(rv.Elem())
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return !rv.IsNil()
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	default:
		return true
	}
}
