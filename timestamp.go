package jsonext

import "time"

// Timestamp is a point in time that carries its own layout. An empty Format
// falls back to the codec's date format, the same as a bare time.Time.
type Timestamp struct {
	Time   time.Time
	Format string
}

// TimestampOf wraps t with layout.
func TimestampOf(t time.Time, layout string) Timestamp {
	return Timestamp{Time: t, Format: layout}
}

func formatTime(t time.Time, layout string) string {
	return t.UTC().Format(layout)
}
