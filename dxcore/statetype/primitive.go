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
	"dirpx.dev/dxstate/dxcore/errors"
	"dirpx.dev/dxstate/dxcore/model/category"
)

// Primitive validators. Each accepts exactly the values whose category.Of
// equals its category; Any accepts everything.
var (
	Any    = New("any", nil)
	Array  = Primitive(category.Array)
	Bool   = Primitive(category.Boolean)
	Func   = Primitive(category.Function)
	Number = Primitive(category.Number)
	Object = Primitive(category.Object)
	String = Primitive(category.String)
)

// Primitive returns a validator that accepts values of category want.
// It is named after the category.
func Primitive(want category.Category) *Validator {
	name := want.String()
	return New(name, func(value any) error {
		return expectCategory(name, want, value)
	})
}

func expectCategory(name string, want category.Category, value any) error {
	if got := category.Of(value); got != want {
		return &errors.TypeError{Type: name, Expected: want.String(), Actual: got.String(), Value: value}
	}
	return nil
}

func nilValidatorError(factory string) error {
	return &errors.DescriptorError{Type: factory, Reason: "expected a validator, got nil"}
}
