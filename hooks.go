package jsonext

// Hooks lightweight callbacks for high-signal codec events.
// Implementations MUST be cheap, non-blocking and safe for concurrent use.
// The codec calls them from the goroutine doing the encode or decode.
type Hooks interface {
	// An encode call failed because no encoder resolved for a value
	// (key=false) or for a map key (key=true). typeName is "<nil>" for a nil key.
	UnsupportedType(typeName string, key bool)

	// A decode call rejected its input as malformed JSON.
	MalformedInput(err error)

	// A registration replaced an earlier entry for the same type while a
	// codec was being built (e.g. a user encoder for time.Time).
	EncoderReplaced(typeName string)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) UnsupportedType(string, bool) {}
func (NopHooks) MalformedInput(error)         {}
func (NopHooks) EncoderReplaced(string)       {}
