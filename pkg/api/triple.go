package api

import "fmt"

// Triple is a NetID decomposed into its three fields. It's just a plain
// struct for rendering and inspection; it doesn't remember which NetID it
// came from. Re-pack with Make.
type Triple struct {
	Kind    uint8
	Node    uint16
	Counter uint64
}

func (t Triple) String() string {
	return fmt.Sprintf("%d:%d:%d", t.Kind, t.Node, t.Counter)
}
