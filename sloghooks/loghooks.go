// Package sloghooks logs codec hook events through log/slog.
package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/jsonext"
	"github.com/unkn0wn-root/jsonext/internal/util"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	UnsupportedEvery uint64
	MalformedEvery   uint64
	// Optional redactor for malformed-input messages, which quote bytes of
	// the input. Defaults to a SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	unsupportedCtr atomic.Uint64
	malformedCtr   atomic.Uint64
}

var _ jsonext.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(s string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(s)
	}
	return util.ShortHash([]byte(s))
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) UnsupportedType(typeName string, key bool) {
	if h.l == nil || !sample(h.opts.UnsupportedEvery, &h.unsupportedCtr) {
		return
	}
	h.l.Warn("jsonext.unsupported_type",
		"type", typeName,
		"map_key", key)
}

func (h *Hooks) MalformedInput(err error) {
	if h.l == nil || !sample(h.opts.MalformedEvery, &h.malformedCtr) {
		return
	}
	h.l.Debug("jsonext.malformed_input",
		"err", h.redact(err.Error()))
}

func (h *Hooks) EncoderReplaced(typeName string) {
	if h.l == nil {
		return
	}
	h.l.Debug("jsonext.encoder_replaced",
		"type", typeName)
}
