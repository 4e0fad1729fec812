package jsonext

import (
	"fmt"
	"sync"
)

type point struct{ X, Y int }

var pointEncoder = For(func(p point, w *Writer) error {
	return w.WriteString(fmt.Sprintf("%d,%d", p.X, p.Y))
})

type shape interface{ Area() float64 }

type square struct{ Side float64 }

func (s square) Area() float64  { return s.Side * s.Side }
func (s square) String() string { return "square" }

type recordingHooks struct {
	mu          sync.Mutex
	unsupported []string
	keys        []string
	malformed   []error
	replaced    []string
}

func (h *recordingHooks) UnsupportedType(name string, key bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if key {
		h.keys = append(h.keys, name)
		return
	}
	h.unsupported = append(h.unsupported, name)
}

func (h *recordingHooks) MalformedInput(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.malformed = append(h.malformed, err)
}

func (h *recordingHooks) EncoderReplaced(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.replaced = append(h.replaced, name)
}

type logLine struct {
	level string
	msg   string
	f     Fields
}

type recordingLogger struct {
	mu    sync.Mutex
	lines []logLine
}

func (l *recordingLogger) add(level, msg string, f Fields) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, logLine{level: level, msg: msg, f: f})
}

func (l *recordingLogger) Debug(msg string, f Fields) { l.add("debug", msg, f) }
func (l *recordingLogger) Info(msg string, f Fields)  { l.add("info", msg, f) }
func (l *recordingLogger) Warn(msg string, f Fields)  { l.add("warn", msg, f) }
func (l *recordingLogger) Error(msg string, f Fields) { l.add("error", msg, f) }

func (l *recordingLogger) messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	for i, ln := range l.lines {
		out[i] = ln.msg
	}
	return out
}
