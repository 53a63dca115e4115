package pktcodec

const icmpv6MinLen = 4

// parseIcmpv6 parses the 4-byte ICMPv6 header (RFC 4443). The body is left
// in the payload byte stream — this codec does not interpret it.
func parseIcmpv6(b []byte) (Icmpv6Header, []byte, error) {
	if len(b) < icmpv6MinLen {
		return Icmpv6Header{}, nil, ErrTruncated
	}

	h := Icmpv6Header{
		Type: b[0],
		Code: b[1],
		Sum:  beUint16(b[2:4]),
	}

	return h, b[4:], nil
}

// emitIcmpv6 returns the canonical 4-byte wire form of h.
func emitIcmpv6(h Icmpv6Header) []byte {
	out := make([]byte, 4)
	out[0] = h.Type
	out[1] = h.Code
	putBeUint16(out[2:4], h.Sum)
	return out
}
