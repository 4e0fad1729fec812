// Package logrus adapts a *logrus.Entry to jsonext.Logger.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/jsonext"
)

var _ jsonext.Logger = Logger{}

type Logger struct{ E *logrus.Entry }

// New wraps l with a "component" field so codec events can be filtered.
func New(l *logrus.Logger) Logger {
	return Logger{E: l.WithField("component", "jsonext")}
}

func (l Logger) Debug(msg string, f jsonext.Fields) { l.log(logrus.DebugLevel, msg, f) }
func (l Logger) Info(msg string, f jsonext.Fields)  { l.log(logrus.InfoLevel, msg, f) }
func (l Logger) Warn(msg string, f jsonext.Fields)  { l.log(logrus.WarnLevel, msg, f) }
func (l Logger) Error(msg string, f jsonext.Fields) { l.log(logrus.ErrorLevel, msg, f) }

func (l Logger) log(lvl logrus.Level, msg string, f jsonext.Fields) {
	if !l.E.Logger.IsLevelEnabled(lvl) {
		return
	}
	l.E.WithFields(logrus.Fields(f)).Log(lvl, msg)
}
