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

package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"dirpx.dev/dxstate/dxcore/errors"
	"dirpx.dev/dxstate/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Format selects how the default diagnostic sink renders warnings.
//
// The zero value, FormatConsole, writes one human-readable line per warning.
// FormatJSON writes one JSON object per warning for log aggregation.
type Format uint8

const (
	// FormatConsole renders plain text lines. This is the zero value.
	FormatConsole Format = iota

	// FormatJSON renders structured JSON records.
	FormatJSON
)

const (
	FormatConsoleStr = "console"
	FormatJSONStr    = "json"
)

// ParseFormat parses "console" (alias "text") or "json", ignoring case and
// surrounding whitespace.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case FormatConsoleStr, "text":
		return FormatConsole, nil
	case FormatJSONStr:
		return FormatJSON, nil
	default:
		return FormatConsole, &errors.ParseError{Type: "Format", Value: s}
	}
}

var _ model.Model = (*Format)(nil)

func (f Format) String() string {
	switch f {
	case FormatConsole:
		return FormatConsoleStr
	case FormatJSON:
		return FormatJSONStr
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

func (f Format) Redacted() string { return f.String() }

func (f Format) TypeName() string { return "Format" }

func (f Format) IsZero() bool { return f == FormatConsole }

func (f Format) Equal(other Format) bool { return f == other }

func (f Format) Validate() error {
	switch f {
	case FormatConsole, FormatJSON:
		return nil
	default:
		return &errors.ValidationError{Type: f.TypeName(), Reason: "unknown format", Value: uint8(f)}
	}
}

// MarshalText is used by caarlos0/env and by encoders that prefer text.
func (f Format) MarshalText() ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: f.TypeName(), Value: int(f)}
	}
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return &errors.UnmarshalError{Type: f.TypeName(), Data: text, Reason: err.Error()}
	}
	*f = parsed
	return nil
}

func (f Format) MarshalJSON() ([]byte, error) {
	text, err := f.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

func (f *Format) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: f.TypeName(), Data: data, Reason: err.Error()}
	}
	return f.UnmarshalText([]byte(str))
}

func (f Format) MarshalYAML() (any, error) {
	text, err := f.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

func (f *Format) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: f.TypeName(), Reason: err.Error()}
	}
	return f.UnmarshalText([]byte(str))
}
