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

// Package model defines the contracts shared by dxstate value types such as
// category.Category, config.Format and config.Config.
//
// Each of these types is a small immutable value that needs the same handful
// of behaviors: self-validation, JSON and YAML round-tripping, safe string
// forms for logs, a stable type name for error messages, and zero-value
// detection. Model bundles those behaviors so that the generic helpers in this
// package (ToJSON, ToYAML, FromJSON, FromYAML, MustValidate) can operate on
// any of them.
//
// Model values are treated as immutable. Concurrent reads are safe;
// unmarshaling mutates the receiver and requires exclusive access.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all contracts required for dxstate
// value types.
//
// Implementations usually assert conformance at compile time:
//
//	var _ model.Model = (*Category)(nil)
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable is implemented by types that check their own invariants.
//
// Validate MUST be deterministic, MUST NOT mutate the receiver and MUST NOT
// have side effects such as logging. It returns nil if and only if the value
// is usable.
type Validatable interface {
	Validate() error
}

// Serializable is implemented by types with JSON and YAML encodings.
//
// Marshal methods MUST reject values that fail Validate. Unmarshal methods
// MUST validate the decoded value and return an error rather than leaving an
// invalid value in the receiver.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable is implemented by types that can be printed.
type Loggable interface {
	// Redacted returns a representation safe for production logs.
	Redacted() string

	// String returns the full human-readable representation.
	String() string
}

// Identifiable is implemented by types that report a canonical type name,
// used when composing error messages.
type Identifiable interface {
	// TypeName returns a constant CamelCase name without package prefix.
	TypeName() string
}

// ZeroCheckable is implemented by types that can report whether they hold
// their zero value.
type ZeroCheckable interface {
	IsZero() bool
}
