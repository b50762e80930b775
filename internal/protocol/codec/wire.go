package codec

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// ErrWireType is returned when a field arrives with an unexpected wire type.
var ErrWireType = errors.New("unexpected wire type")

// fieldFunc consumes the value of one field and reports how many bytes it used.
// Returning 0 means the field is unknown and should be skipped.
type fieldFunc func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

// walkFields iterates over the top-level fields of an encoded message.
func walkFields(b []byte, fn fieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		m, err := fn(num, typ, b)
		if err != nil {
			return fmt.Errorf("field %d: %w", num, err)
		}
		if m == 0 {
			m = protowire.ConsumeFieldValue(num, typ, b)
		}
		if m < 0 {
			return protowire.ParseError(m)
		}
		b = b[m:]
	}
	return nil
}

// --- append helpers ---

func appendInt(b []byte, num protowire.Number, v int) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeZigZag(int64(v)))
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendPackedInts(b []byte, num protowire.Number, vs []int) []byte {
	var packed []byte
	for _, v := range vs {
		packed = protowire.AppendVarint(packed, protowire.EncodeZigZag(int64(v)))
	}
	return appendBytes(b, num, packed)
}

// --- consume helpers ---

func consumeInt(typ protowire.Type, b []byte) (int, int, error) {
	if typ != protowire.VarintType {
		return 0, 0, ErrWireType
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	return int(protowire.DecodeZigZag(v)), n, nil
}

func consumeString(typ protowire.Type, b []byte) (string, int, error) {
	if typ != protowire.BytesType {
		return "", 0, ErrWireType
	}
	s, n := protowire.ConsumeString(b)
	if n < 0 {
		return "", 0, protowire.ParseError(n)
	}
	return s, n, nil
}

func consumeBytes(typ protowire.Type, b []byte) ([]byte, int, error) {
	if typ != protowire.BytesType {
		return nil, 0, ErrWireType
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, protowire.ParseError(n)
	}
	return v, n, nil
}

// consumePackedInts accepts both packed and unpacked encodings of a repeated int field.
func consumePackedInts(typ protowire.Type, b []byte, out *[]int) (int, error) {
	if typ == protowire.VarintType {
		v, n, err := consumeInt(typ, b)
		if err != nil {
			return 0, err
		}
		*out = append(*out, v)
		return n, nil
	}

	data, n, err := consumeBytes(typ, b)
	if err != nil {
		return 0, err
	}
	for len(data) > 0 {
		v, m := protowire.ConsumeVarint(data)
		if m < 0 {
			return 0, protowire.ParseError(m)
		}
		*out = append(*out, int(protowire.DecodeZigZag(v)))
		data = data[m:]
	}
	return n, nil
}
