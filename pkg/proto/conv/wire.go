package conv

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/adammck/netid/pkg/api"
)

// AppendField appends the id to dst as a protobuf fixed64 field. This is for
// hosts assembling extension blobs by hand rather than via generated code.
// Note that fixed64 is the raw integer value; the wire-level byte order is
// protobuf's concern, not the codec's big-endian bytes form.
func AppendField(dst []byte, num protowire.Number, id api.NetID) []byte {
	dst = protowire.AppendTag(dst, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(dst, id.Raw())
}

// ConsumeField parses one field appended by AppendField from the front of b,
// returning the field number, the id, and the number of bytes consumed.
func ConsumeField(b []byte) (protowire.Number, api.NetID, int, error) {
	num, typ, n := protowire.ConsumeTag(b)
	if n < 0 {
		return 0, api.ZeroNetID, 0, protowire.ParseError(n)
	}

	if typ != protowire.Fixed64Type {
		return 0, api.ZeroNetID, 0, fmt.Errorf("field %d: not fixed64: %v", num, typ)
	}

	v, m := protowire.ConsumeFixed64(b[n:])
	if m < 0 {
		return 0, api.ZeroNetID, 0, protowire.ParseError(m)
	}

	return num, api.NetID(v), n + m, nil
}
