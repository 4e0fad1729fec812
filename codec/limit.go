package codec

import (
	"errors"
	"fmt"
)

// ErrTooLarge is returned (wrapped) when a payload exceeds Limit.MaxDecode.
var ErrTooLarge = errors.New("codec: payload too large")

// Limit wraps another codec to enforce a maximum allowed payload size
// at Decode time. Encode is forwarded to Inner unchanged.
// If MaxDecode <= 0, size limiting is disabled.
//
// Typical use: protect against oversized/malicious documents from an
// untrusted source before any parsing happens.
type Limit[V any] struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec[V]
	// MaxDecode is the maximum permitted length (in bytes) of the incoming
	// payload for Decode.
	MaxDecode int
}

func (c Limit[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }

func (c Limit[V]) Decode(b []byte) (V, error) {
	if err := c.Check(len(b)); err != nil {
		var zero V
		return zero, err
	}
	return c.Inner.Decode(b)
}

// Check reports whether a payload of n bytes is within the limit.
func (c Limit[V]) Check(n int) error {
	if c.MaxDecode > 0 && n > c.MaxDecode {
		return fmt.Errorf("%w: %d > %d", ErrTooLarge, n, c.MaxDecode)
	}
	return nil
}
