package pktcodec

const udpMinLen = 8

// parseUdp parses a UDP datagram header (RFC 768).
func parseUdp(b []byte) (UdpHeader, []byte, error) {
	if len(b) < udpMinLen {
		return UdpHeader{}, nil, ErrTruncated
	}

	h := UdpHeader{
		SPort: beUint16(b[0:2]),
		DPort: beUint16(b[2:4]),
		ULen:  beUint16(b[4:6]),
		Sum:   beUint16(b[6:8]),
	}

	return h, b[8:], nil
}

// emitUdp returns the canonical 8-byte wire form of h.
func emitUdp(h UdpHeader) []byte {
	out := make([]byte, 8)
	putBeUint16(out[0:2], h.SPort)
	putBeUint16(out[2:4], h.DPort)
	putBeUint16(out[4:6], h.ULen)
	putBeUint16(out[6:8], h.Sum)
	return out
}
