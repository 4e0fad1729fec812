//go:build go1.23

// Package slog adapts a *log/slog.Logger to jsonext.Logger.
package slog

import (
	"context"
	stdslog "log/slog"
	"maps"
	"slices"

	"github.com/unkn0wn-root/jsonext"
)

var _ jsonext.Logger = Logger{}

type Logger struct{ L *stdslog.Logger }

func (s Logger) Debug(msg string, f jsonext.Fields) { s.log(stdslog.LevelDebug, msg, f) }
func (s Logger) Info(msg string, f jsonext.Fields)  { s.log(stdslog.LevelInfo, msg, f) }
func (s Logger) Warn(msg string, f jsonext.Fields)  { s.log(stdslog.LevelWarn, msg, f) }
func (s Logger) Error(msg string, f jsonext.Fields) { s.log(stdslog.LevelError, msg, f) }

func (s Logger) log(lvl stdslog.Level, msg string, f jsonext.Fields) {
	ctx := context.Background()
	if !s.L.Enabled(ctx, lvl) {
		return
	}
	s.L.LogAttrs(ctx, lvl, msg, attrs(f)...)
}

func attrs(f jsonext.Fields) []stdslog.Attr {
	if len(f) == 0 {
		return nil
	}
	out := make([]stdslog.Attr, 0, len(f))
	for _, k := range slices.Sorted(maps.Keys(f)) {
		out = append(out, stdslog.Any(k, f[k]))
	}
	return out
}
