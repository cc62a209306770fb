package ofpact

import "github.com/fraant/ofpact/field"

func testRegistry() field.Registry {
	return field.NewDefaultRegistry(func(h uint32) (field.Id, error) {
		return field.Id(h), nil
	}, nil)
}

func testCodec() *Codec {
	return New(Options{Fields: testRegistry()})
}

func bytesOf(vs ...int) []byte {
	out := make([]byte, len(vs))
	for i, v := range vs {
		out[i] = byte(v)
	}
	return out
}
