// Package codec adapts a *jsonext.Codec to typed byte codecs: plain JSON
// documents, size-limited decoding, and bridges to protobuf messages.
package codec

// Codec encodes/decodes values V to JSON bytes.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
