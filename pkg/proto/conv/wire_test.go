package conv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/adammck/netid/pkg/api"
)

func TestWireRoundTrip(t *testing.T) {
	a := api.Make(1, 2, 3)
	b := api.Make(255, 65535, 1<<40-1)

	var buf []byte
	buf = AppendField(buf, 4, a)
	buf = AppendField(buf, 9, b)

	num, got, n, err := ConsumeField(buf)
	require.NoError(t, err)
	assert.Equal(t, protowire.Number(4), num)
	assert.Equal(t, a, got)

	num, got, m, err := ConsumeField(buf[n:])
	require.NoError(t, err)
	assert.Equal(t, protowire.Number(9), num)
	assert.Equal(t, b, got)
	assert.Equal(t, len(buf), n+m)
}

func TestConsumeFieldWrongType(t *testing.T) {
	// A varint field is not an id.
	buf := protowire.AppendTag(nil, 4, protowire.VarintType)
	buf = protowire.AppendVarint(buf, 42)

	_, _, _, err := ConsumeField(buf)
	assert.Error(t, err)
}

func TestConsumeFieldTruncated(t *testing.T) {
	buf := AppendField(nil, 4, api.Make(1, 2, 3))

	_, _, _, err := ConsumeField(buf[:len(buf)-1])
	assert.Error(t, err)

	_, _, _, err = ConsumeField(nil)
	assert.Error(t, err)
}
