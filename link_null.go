package pktcodec

import "encoding/binary"

const nullMinLen = 16

// parseNull parses a BSD loopback (DLT_NULL) datalink header: a 4-byte
// address family in host byte order. The minimum-length precondition for
// this tag (16 bytes) is larger than the 4-byte header itself — loopback
// captures are conventionally padded to a word boundary — so only the
// first 4 bytes are consumed here and the remainder, padding included,
// flows on to the next layer.
func parseNull(b []byte) (NullHeader, []byte, error) {
	if len(b) < nullMinLen {
		return NullHeader{}, nil, ErrTruncated
	}

	h := NullHeader{Family: binary.NativeEndian.Uint32(b[0:4])}
	return h, b[4:], nil
}

// emitNull returns the canonical 4-byte wire form of h, in host byte order.
func emitNull(h NullHeader) []byte {
	out := make([]byte, 4)
	binary.NativeEndian.PutUint32(out, h.Family)
	return out
}

// Address families used by DLT_NULL. PF_INET is the same value on every
// supported platform; PF_INET6 is platform-specific and resolved in
// aftype_*.go.
const PF_INET uint32 = 2

// PfInet6 is the build-time-resolved value of PF_INET6 for the current
// platform (10 on Linux, 30 on Darwin).
var PfInet6 = pfInet6
