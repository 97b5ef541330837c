package api

import "fmt"

// MarshalText renders the canonical colon-triple form. Via encoding/json this
// also makes NetIDs usable as JSON values and map keys.
func (id NetID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses with the same grammar as Parse.
func (id *NetID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*id = parsed
	return nil
}

// MarshalBinary returns the 8-byte big-endian wire form.
func (id NetID) MarshalBinary() ([]byte, error) {
	b := id.ToBytes()
	return b[:], nil
}

// UnmarshalBinary accepts exactly 8 bytes. This is the interface-mandated
// variable-length entry point; code holding a [8]byte should call FromBytes
// instead and skip the length check.
func (id *NetID) UnmarshalBinary(data []byte) error {
	if len(data) != 8 {
		return fmt.Errorf("%w: need 8 bytes, got %d", ErrParse, len(data))
	}

	var b [8]byte
	copy(b[:], data)
	*id = FromBytes(b)

	return nil
}
