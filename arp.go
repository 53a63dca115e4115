package pktcodec

const arpMinLen = 28

// parseArp parses the 28-byte IPv4-over-Ethernet ARP frame (RFC 826;
// hln=6, pln=4 — the only combination this codec supports).
func parseArp(b []byte) (ArpHeader, []byte, error) {
	if len(b) < arpMinLen {
		return ArpHeader{}, nil, ErrTruncated
	}

	var h ArpHeader
	h.Hrd = beUint16(b[0:2])
	h.Pro = beUint16(b[2:4])
	h.Hln = b[4]
	h.Pln = b[5]
	h.Op = beUint16(b[6:8])
	copy(h.Sha[:], b[8:14])
	copy(h.Sip[:], b[14:18])
	copy(h.Tha[:], b[18:24])
	copy(h.Tip[:], b[24:28])

	return h, b[28:], nil
}

// emitArp returns the canonical 28-byte wire form of h.
func emitArp(h ArpHeader) []byte {
	out := make([]byte, 28)
	putBeUint16(out[0:2], h.Hrd)
	putBeUint16(out[2:4], h.Pro)
	out[4] = h.Hln
	out[5] = h.Pln
	putBeUint16(out[6:8], h.Op)
	copy(out[8:14], h.Sha[:])
	copy(out[14:18], h.Sip[:])
	copy(out[18:24], h.Tha[:])
	copy(out[24:28], h.Tip[:])
	return out
}
