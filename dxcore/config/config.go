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

// Package config holds the settings of the diagnostic sink used by state
// validators in warn mode.
//
// Settings come from the environment (see FromEnv) or from a YAML document
// (see FromYAML). Both paths validate the result, so a Config returned
// without error is always usable.
//
// Environment variables:
//
//	DXSTATE_WARNINGS    enable warnings (default true)
//	DXSTATE_LOG_FORMAT  console or json (default console)
//	DXSTATE_LOG_LEVEL   zerolog level name (default warn)
package config

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/dxstate/dxcore/errors"
	"dirpx.dev/dxstate/dxcore/model"
	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config configures warning emission.
//
// Warnings toggles emission entirely. Level is the minimum zerolog level of
// the sink's logger; warnings are written at warn level, so a Level of
// "error" or above silences them as well.
type Config struct {
	Warnings bool   `env:"DXSTATE_WARNINGS" envDefault:"true" json:"warnings" yaml:"warnings"`
	Format   Format `env:"DXSTATE_LOG_FORMAT" envDefault:"console" json:"format" yaml:"format"`
	Level    string `env:"DXSTATE_LOG_LEVEL" envDefault:"warn" json:"level" yaml:"level"`
}

// Default returns the configuration used when nothing is set: warnings on,
// console format, warn level.
func Default() Config {
	return Config{Warnings: true, Format: FormatConsole, Level: zerolog.WarnLevel.String()}
}

// FromEnv reads a Config from the process environment.
func FromEnv() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse %s from environment: %w", cfg.TypeName(), err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromYAML decodes a Config from YAML. Keys missing from data keep their
// Default values.
func FromYAML(data []byte) (Config, error) {
	cfg := Default()
	ptr := &cfg
	if err := model.FromYAML(data, &ptr); err != nil {
		return Config{}, err
	}
	return *ptr, nil
}

// MustFromEnv is FromEnv that panics on error, for use in main packages.
func MustFromEnv() Config {
	cfg, err := FromEnv()
	if err != nil {
		panic(err)
	}
	return *model.MustValidate(&cfg)
}

// ZerologLevel returns the parsed Level. It falls back to warn for values
// that do not parse, which Validate rejects anyway.
func (c Config) ZerologLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Level)
	if err != nil || c.Level == "" {
		return zerolog.WarnLevel
	}
	return lvl
}

// Enabled reports whether warnings would reach the output at all.
func (c Config) Enabled() bool {
	lvl := c.ZerologLevel()
	return c.Warnings && lvl != zerolog.Disabled && lvl <= zerolog.WarnLevel
}

var _ model.Model = (*Config)(nil)

func (c Config) Validate() error {
	if err := c.Format.Validate(); err != nil {
		return &errors.ValidationError{Type: c.TypeName(), Field: "Format", Reason: "invalid format", Cause: err}
	}
	if c.Level == "" {
		return &errors.ValidationError{Type: c.TypeName(), Field: "Level", Reason: "must not be empty"}
	}
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return &errors.ValidationError{Type: c.TypeName(), Field: "Level", Reason: "unknown level", Value: c.Level, Cause: err}
	}
	return nil
}

func (c Config) TypeName() string { return "Config" }

func (c Config) IsZero() bool { return c == Config{} }

func (c Config) String() string {
	return fmt.Sprintf("Config{Warnings:%t, Format:%s, Level:%s}", c.Warnings, c.Format, c.Level)
}

func (c Config) Redacted() string { return c.String() }

func (c Config) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	type alias Config
	return json.Marshal(alias(c))
}

func (c *Config) UnmarshalJSON(data []byte) error {
	type alias Config
	tmp := alias(*c)
	if err := json.Unmarshal(data, &tmp); err != nil {
		return &errors.UnmarshalError{Type: c.TypeName(), Data: data, Reason: err.Error()}
	}
	if err := Config(tmp).Validate(); err != nil {
		return err
	}
	*c = Config(tmp)
	return nil
}

func (c Config) MarshalYAML() (any, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	type alias Config
	return alias(c), nil
}

func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	type alias Config
	tmp := alias(*c)
	if err := node.Decode(&tmp); err != nil {
		return &errors.UnmarshalError{Type: c.TypeName(), Reason: err.Error()}
	}
	if err := Config(tmp).Validate(); err != nil {
		return err
	}
	*c = Config(tmp)
	return nil
}
