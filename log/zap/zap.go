// Package zap adapts a *zap.Logger to jsonext.Logger.
package zap

import (
	"maps"
	"slices"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unkn0wn-root/jsonext"
)

var _ jsonext.Logger = Logger{}

// Logger writes codec events through L. Fields are emitted in key order.
type Logger struct{ L *zap.Logger }

func (z Logger) Debug(msg string, f jsonext.Fields) { z.log(zapcore.DebugLevel, msg, f) }
func (z Logger) Info(msg string, f jsonext.Fields)  { z.log(zapcore.InfoLevel, msg, f) }
func (z Logger) Warn(msg string, f jsonext.Fields)  { z.log(zapcore.WarnLevel, msg, f) }
func (z Logger) Error(msg string, f jsonext.Fields) { z.log(zapcore.ErrorLevel, msg, f) }

// log skips building fields when the level is disabled.
func (z Logger) log(lvl zapcore.Level, msg string, f jsonext.Fields) {
	if ce := z.L.Check(lvl, msg); ce != nil {
		ce.Write(zf(f)...)
	}
}

func zf(f jsonext.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for _, k := range slices.Sorted(maps.Keys(f)) {
		out = append(out, zap.Any(k, f[k]))
	}
	return out
}
