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

package diag

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"dirpx.dev/dxstate/dxcore/config"
	"github.com/rs/zerolog"
)

// Sink receives warnings. Implementations MUST be safe for concurrent use and
// MUST NOT panic; emission is fire-and-forget.
type Sink interface {
	Emit(d Diagnostic)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(d Diagnostic)

func (f SinkFunc) Emit(d Diagnostic) { f(d) }

// Nop is a Sink that drops everything.
var Nop Sink = nopSink{}

type nopSink struct{}

func (nopSink) Emit(Diagnostic) {}

// LogSink writes warnings through a zerolog.Logger at warn level.
type LogSink struct {
	logger zerolog.Logger
}

// NewLogSink returns a LogSink writing through logger.
func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Emit writes d as a single warn-level record. The composed warning line is
// the message; the parts are repeated as fields for structured consumers.
func (s *LogSink) Emit(d Diagnostic) {
	ev := s.logger.Warn()
	if d.Field != "" {
		ev = ev.Str("field", d.Field)
	}
	if d.Component != "" {
		ev = ev.Str("component", d.Component)
	}
	if d.Parent != "" {
		ev = ev.Str("parent", d.Parent)
	}
	if d.Validator != "" {
		ev = ev.Str("validator", d.Validator)
	}
	ev.Stringer("category", d.Category).Msg(d.String())
}

// NewLogger builds the zerolog.Logger described by cfg, writing to w.
//
// FormatConsole uses an uncoloured zerolog.ConsoleWriter so lines stay
// readable in terminals and test output; FormatJSON writes raw records.
func NewLogger(cfg config.Config, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	if cfg.Format == config.FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}
	}
	return zerolog.New(w).Level(cfg.ZerologLevel()).With().Timestamp().Logger()
}

// NewSink returns the Sink described by cfg: Nop when warnings are disabled,
// otherwise a LogSink writing to w.
func NewSink(cfg config.Config, w io.Writer) Sink {
	if !cfg.Enabled() {
		return Nop
	}
	return NewLogSink(NewLogger(cfg, w))
}

type sinkHolder struct {
	sink Sink
}

var (
	defaultSink     atomic.Pointer[sinkHolder]
	defaultSinkOnce sync.Once
)

// Default returns the process-wide sink.
//
// On first use it is built from config.FromEnv and writes to os.Stderr. An
// invalid environment falls back to config.Default so that a typo in a
// variable never disables the warnings it is meant to tune.
func Default() Sink {
	defaultSinkOnce.Do(func() {
		cfg, err := config.FromEnv()
		if err != nil {
			cfg = config.Default()
		}
		defaultSink.CompareAndSwap(nil, &sinkHolder{sink: NewSink(cfg, os.Stderr)})
	})
	return defaultSink.Load().sink
}

// SetDefault replaces the process-wide sink and returns the previous one.
// A nil s installs Nop.
//
//	prev := diag.SetDefault(rec)
//	defer diag.SetDefault(prev)
func SetDefault(s Sink) Sink {
	if s == nil {
		s = Nop
	}
	prev := Default()
	defaultSink.Store(&sinkHolder{sink: s})
	return prev
}
