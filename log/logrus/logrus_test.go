package logrus

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/jsonext"
)

func TestLoggerFields(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)

	c := jsonext.New(jsonext.Options{Logger: New(base)})
	_, err := c.Encode(struct{}{})
	require.Error(t, err)

	var failed *logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "encode failed" {
			failed = e
		}
	}
	require.NotNil(t, failed)
	assert.Equal(t, logrus.DebugLevel, failed.Level)
	assert.Equal(t, "jsonext", failed.Data["component"])
	assert.Contains(t, failed.Data["err"], "no encoder registered")
}

func TestLoggerLevelFilter(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.WarnLevel)
	l := New(base)

	l.Debug("hidden", nil)
	l.Warn("shown", jsonext.Fields{"k": 1})

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "shown", hook.LastEntry().Message)
	assert.Equal(t, 1, hook.LastEntry().Data["k"])
}
