package pktcodec

const ipv6MinLen = 40

// parseIpv6 parses an IPv6 fixed header (RFC 8200). Extension-header
// chains are out of scope (spec Non-goals) — NextHeader is always treated
// as naming the transport/encapsulated protocol directly.
func parseIpv6(b []byte) (Ipv6Header, []byte, error) {
	if len(b) < ipv6MinLen {
		return Ipv6Header{}, nil, ErrTruncated
	}

	var h Ipv6Header

	word := beUint32(b[0:4])
	// top 4 bits are the version: neither stored nor checked (emitIpv6 always writes 6).
	h.Class = uint8(word >> 20)
	h.Flow = word & 0xFFFFF

	h.Len = beUint16(b[4:6])
	h.Next = b[6]
	h.Hop = b[7]
	copy(h.SAddr[:], b[8:24])
	copy(h.DAddr[:], b[24:40])

	return h, b[40:], nil
}

// emitIpv6 returns the canonical 40-byte wire form of h.
func emitIpv6(h Ipv6Header) []byte {
	out := make([]byte, 40)

	word := uint32(6)<<28 | uint32(h.Class)<<20 | (h.Flow & 0xFFFFF)
	putBeUint32(out[0:4], word)

	putBeUint16(out[4:6], h.Len)
	out[6] = h.Next
	out[7] = h.Hop
	copy(out[8:24], h.SAddr[:])
	copy(out[24:40], h.DAddr[:])

	return out
}
