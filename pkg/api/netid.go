package api

import (
	"encoding/binary"
	"fmt"
)

// NetID is a packed 64-bit identifier with the layout:
//
//	bits 63-56 (8):  kind    -- tag partitioning the namespace by entity class
//	bits 55-40 (16): node    -- the node/shard which issued the identifier
//	bits 39-0  (40): counter -- node-local sequence number
//
// Comparing raw values sorts by kind, then node, then counter, so NetIDs make
// good range-scan-friendly storage keys. This package only encodes and
// decodes them; issuing unique (node, counter) pairs is the caller's problem.
type NetID uint64

// ZeroNetID is the zero value, i.e. Make(0, 0, 0).
const ZeroNetID NetID = 0

const (
	kindShift   = 56
	nodeShift   = 40
	nodeMask    = 0xFFFF
	counterMask = 0xFF_FFFF_FFFF // low 40 bits
)

// Make packs the three fields into a NetID. The counter is masked to its low
// 40 bits; anything above that is silently dropped. That's deliberate, not an
// error. Callers who care must check counter < 1<<40 themselves.
func Make(kind uint8, node uint16, counter uint64) NetID {
	return NetID(uint64(kind)<<kindShift | uint64(node)<<nodeShift | counter&counterMask)
}

// Raw returns the underlying 64-bit value.
func (id NetID) Raw() uint64 {
	return uint64(id)
}

// Kind returns bits 63-56.
func (id NetID) Kind() uint8 {
	return uint8(id >> kindShift)
}

// Node returns bits 55-40.
func (id NetID) Node() uint16 {
	return uint16(id >> nodeShift & nodeMask)
}

// Counter returns bits 39-0. The result always fits in 40 bits.
func (id NetID) Counter() uint64 {
	return uint64(id) & counterMask
}

// ToBytes returns the raw value as 8 big-endian bytes. Byte 0 is the kind.
func (id NetID) ToBytes() [8]byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(id))
	return b
}

// FromBytes is the inverse of ToBytes. Every 8-byte input is a valid NetID;
// the fixed-size array means there's no length to validate.
func FromBytes(b [8]byte) NetID {
	return NetID(binary.BigEndian.Uint64(b[:]))
}

// Triple returns the decomposed (kind, node, counter) view.
func (id NetID) Triple() Triple {
	return Triple{
		Kind:    id.Kind(),
		Node:    id.Node(),
		Counter: id.Counter(),
	}
}

// String returns the canonical form: the three fields as decimal integers
// joined by colons, e.g. "7:42:999". Parse accepts this back.
func (id NetID) String() string {
	return id.Triple().String()
}

// GoString returns a diagnostic form carrying both the canonical triple and
// the raw value in hex, e.g. NetID(7:42:999 | 0x07002A00000003E7). This is
// for logs only; Parse does not accept it.
func (id NetID) GoString() string {
	return fmt.Sprintf("NetID(%s | 0x%016X)", id.String(), uint64(id))
}
