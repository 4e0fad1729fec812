package codec

import "github.com/unkn0wn-root/jsonext"

// Raw is a codec for documents that are already JSON text. Both directions
// parse the document and write it back through C, so the output is always
// one well-formed value laid out by C's options (pretty printing, ASCII
// escaping, sorted keys). C == nil uses jsonext.Default().
type Raw struct {
	C *jsonext.Codec
}

func (r Raw) Encode(doc []byte) ([]byte, error) { return r.reformat(doc) }
func (r Raw) Decode(doc []byte) ([]byte, error) { return r.reformat(doc) }

func (r Raw) reformat(doc []byte) ([]byte, error) {
	c := codecOrDefault(r.C)
	v, err := c.Decode(doc)
	if err != nil {
		return nil, err
	}
	return c.Encode(v)
}
