package api

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrParse is returned by Parse for any malformed input. There is one error
// kind on purpose: wrong field count, junk characters, out-of-range fields,
// and bad hex all fold into it. Match with errors.Is.
var ErrParse = errors.New("invalid netid")

// Parse accepts either of two forms:
//
//  1. "0x<hex>": the raw 64-bit value in hex, any case. No field validation;
//     every 64-bit value is a valid NetID.
//  2. "<kind>:<node>:<counter>": exactly three decimal fields. Kind must fit
//     in 8 bits and node in 16; the counter parses at full 64-bit width and
//     is then truncated to 40 bits by Make, same lossy policy as Make.
func Parse(s string) (NetID, error) {
	if strings.HasPrefix(s, "0x") {
		v, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return ZeroNetID, fmt.Errorf("%w: %q", ErrParse, s)
		}

		return NetID(v), nil
	}

	fields := strings.Split(s, ":")
	if len(fields) != 3 {
		return ZeroNetID, fmt.Errorf("%w: %q", ErrParse, s)
	}

	k, err := strconv.ParseUint(fields[0], 10, 8)
	if err != nil {
		return ZeroNetID, fmt.Errorf("%w: %q", ErrParse, s)
	}

	n, err := strconv.ParseUint(fields[1], 10, 16)
	if err != nil {
		return ZeroNetID, fmt.Errorf("%w: %q", ErrParse, s)
	}

	c, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return ZeroNetID, fmt.Errorf("%w: %q", ErrParse, s)
	}

	return Make(uint8(k), uint16(n), c), nil
}
