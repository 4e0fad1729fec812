package jsonext

const (
	// DefaultDateFormat renders timestamps in UTC with second precision and a
	// literal Z designator. Formats are Go time layouts.
	DefaultDateFormat = "2006-01-02T15:04:05Z"

	defaultIndent   = 2
	defaultMaxDepth = 10000
	streamBufSize   = 512
	flushThreshold  = 32 << 10
)

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
