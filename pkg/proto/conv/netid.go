package conv

import (
	"errors"
	"fmt"

	"github.com/adammck/netid/pkg/api"
)

// NetIDFromProto converts a uint64 proto field into a NetID. Zero means the
// field was absent (it's the proto3 default), which is an error; hosts which
// need to ship the zero id should use a bytes field and NetIDFromBytes.
func NetIDFromProto(p uint64) (api.NetID, error) {
	id := api.NetID(p)

	if id == api.ZeroNetID {
		return id, errors.New("missing: id")
	}

	return id, nil
}

func NetIDToProto(id api.NetID) uint64 {
	return uint64(id)
}

// NetIDFromBytes converts a bytes proto field holding the 8-byte big-endian
// wire form. Proto bytes fields are variable-length, so the length check the
// codec avoids by construction has to happen here.
func NetIDFromBytes(p []byte) (api.NetID, error) {
	if len(p) != 8 {
		return api.ZeroNetID, fmt.Errorf("invalid id length: %d", len(p))
	}

	var b [8]byte
	copy(b[:], p)

	return api.FromBytes(b), nil
}

func NetIDToBytes(id api.NetID) []byte {
	b := id.ToBytes()
	return b[:]
}
