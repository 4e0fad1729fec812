package slog

import (
	"bytes"
	stdslog "log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unkn0wn-root/jsonext"
)

func TestLoggerAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{
		Level: stdslog.LevelDebug,
		ReplaceAttr: func(_ []string, a stdslog.Attr) stdslog.Attr {
			if a.Key == stdslog.TimeKey {
				return stdslog.Attr{}
			}
			return a
		},
	})
	l := Logger{L: stdslog.New(h)}

	l.Warn("encoder replaced", jsonext.Fields{"type": "time.Time", "at": 1})
	assert.Equal(t, "level=WARN msg=\"encoder replaced\" at=1 type=time.Time\n", buf.String())
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{L: stdslog.New(stdslog.NewTextHandler(&buf, nil))}

	c := jsonext.New(jsonext.Options{Logger: l})
	_, _ = c.DecodeString(`[`)
	assert.False(t, strings.Contains(buf.String(), "decode failed"))

	l.Error("boom", nil)
	assert.Contains(t, buf.String(), "msg=boom")
}
