package codec

import (
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/unkn0wn-root/jsonext"
)

// Proto bridges jsonext values and google.protobuf.Value through their JSON
// text, so every encoder registered on C applies. google.protobuf.Value holds
// numbers as float64: integers beyond 2^53 lose precision on the way in.
//
// As a Codec[*structpb.Value] it reads and writes JSON documents.
type Proto struct {
	C *jsonext.Codec
}

// ToProto converts v to a google.protobuf.Value.
func (p Proto) ToProto(v any) (*structpb.Value, error) {
	b, err := codecOrDefault(p.C).Encode(v)
	if err != nil {
		return nil, err
	}
	pv := new(structpb.Value)
	if err := protojson.Unmarshal(b, pv); err != nil {
		return nil, err
	}
	return pv, nil
}

// FromProto converts pv to the value model of C (string or keyword keys,
// ordered maps, ... as configured).
func (p Proto) FromProto(pv *structpb.Value) (any, error) {
	if pv == nil {
		return nil, nil
	}
	b, err := protojson.Marshal(pv)
	if err != nil {
		return nil, err
	}
	return codecOrDefault(p.C).Decode(b)
}

func (p Proto) Encode(pv *structpb.Value) ([]byte, error) {
	v, err := p.FromProto(pv)
	if err != nil {
		return nil, err
	}
	return codecOrDefault(p.C).Encode(v)
}

func (p Proto) Decode(b []byte) (*structpb.Value, error) {
	v, err := codecOrDefault(p.C).Decode(b)
	if err != nil {
		return nil, err
	}
	return p.ToProto(v)
}

// ProtoMessage is a Codec for one concrete message type using the canonical
// protobuf JSON mapping. Encode re-writes protojson's output through C.
type ProtoMessage[T proto.Message] struct {
	new func() T // constructor for a concrete message (e.g., func() *mypb.User { return &mypb.User{} })
	c   *jsonext.Codec
}

func NewProtoMessage[T proto.Message](ctor func() T, c *jsonext.Codec) ProtoMessage[T] {
	return ProtoMessage[T]{new: ctor, c: c}
}

func (pm ProtoMessage[T]) Encode(m T) ([]byte, error) {
	b, err := protojson.Marshal(m)
	if err != nil {
		return nil, err
	}
	return Raw{C: pm.c}.Encode(b)
}

func (pm ProtoMessage[T]) Decode(b []byte) (T, error) {
	m := pm.new()
	err := protojson.Unmarshal(b, m)
	return m, err
}

// protoReader keeps protojson's field order.
var protoReader = jsonext.New(jsonext.Options{OrderedObjects: true})

// ProtoEncoder returns a jsonext encoder for every proto.Message, writing
// the canonical protobuf JSON mapping. Register it with Options.Encoders.
func ProtoEncoder() jsonext.Encoder {
	return jsonext.For(func(m proto.Message, w *jsonext.Writer) error {
		b, err := protojson.Marshal(m)
		if err != nil {
			return err
		}
		v, err := protoReader.Decode(b)
		if err != nil {
			return err
		}
		return w.WriteValue(v)
	})
}
