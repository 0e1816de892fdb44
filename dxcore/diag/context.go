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

// Package diag composes and delivers the warnings state validators emit in
// warn mode.
//
// A warning names the state field that failed, the reason, the component the
// value was passed to and, when known, the component whose render method
// produced it. The component names come from a Context supplied by the
// caller; any part that is unavailable is left out of the message.
//
// Warnings are delivered to a Sink. The process-wide default sink is built
// lazily from config.FromEnv and writes through zerolog to standard error.
// Tests swap it with SetDefault, usually for a *Recorder.
package diag

import (
	"reflect"
)

// Context identifies the component a value was passed to. Either method may
// return "" when the name is unknown.
type Context interface {
	// DisplayName returns the name of the component receiving the value.
	DisplayName() string

	// ParentDisplayName returns the name of the component that rendered it.
	ParentDisplayName() string
}

// Names is a Context with fixed names.
type Names struct {
	Component string
	Parent    string
}

func (n Names) DisplayName() string       { return n.Component }
func (n Names) ParentDisplayName() string { return n.Parent }

// Component returns a Context with the given names.
func Component(name, parent string) Context {
	return Names{Component: name, Parent: parent}
}

// namer and parentNamer are the partial capabilities accepted by Of.
type namer interface {
	DisplayName() string
}

type parentNamer interface {
	ParentDisplayName() string
}

// Of derives a Context from an arbitrary component value.
//
// If component implements Context it is returned unchanged. Otherwise the
// display name comes from a DisplayName method when present, falling back to
// the component's type name, and the parent name comes from a
// ParentDisplayName method when present. A nil component, including a nil
// pointer or other nil reference held in an interface, yields a Context with
// empty names.
func Of(component any) Context {
	if isNil(component) {
		return Names{}
	}
	if c, ok := component.(Context); ok {
		return c
	}

	var n Names
	if dn, ok := component.(namer); ok {
		n.Component = dn.DisplayName()
	} else {
		n.Component = TypeName(component)
	}
	if pn, ok := component.(parentNamer); ok {
		n.Parent = pn.ParentDisplayName()
	}
	return n
}

// TypeName returns the unqualified type name of v, looking through pointers.
// Unnamed types yield "".
func TypeName(v any) string {
	if v == nil {
		return ""
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

func displayName(c Context) string {
	if isNil(c) {
		return ""
	}
	return c.DisplayName()
}

func parentDisplayName(c Context) string {
	if isNil(c) {
		return ""
	}
	return c.ParentDisplayName()
}

// isNil reports whether v is nil or a typed nil reference. Calling a method
// on a typed nil pointer whose method has a value receiver panics, so such
// components are treated as absent.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
