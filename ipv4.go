package pktcodec

const ipv4MinLen = 20

// parseIpv4 parses an IPv4 header (RFC 791), including any options as
// opaque bytes. The reserved bit preceding DF is neither stored nor
// checked: the DF/MF/Off masks below drop it.
func parseIpv4(b []byte) (Ipv4Header, []byte, error) {
	if len(b) < ipv4MinLen {
		return Ipv4Header{}, nil, ErrTruncated
	}

	var h Ipv4Header

	versionIHL := b[0]
	h.HL = versionIHL & 0x0F

	dscpEcn := b[1]
	h.TOS = dscpEcn

	h.Len = beUint16(b[2:4])
	h.ID = beUint16(b[4:6])

	flagsFrag := beUint16(b[6:8])
	h.DF = flagsFrag&0x4000 != 0
	h.MF = flagsFrag&0x2000 != 0
	h.Off = flagsFrag & 0x1FFF

	h.TTL = b[8]
	h.Proto = b[9]
	h.Sum = beUint16(b[10:12])
	copy(h.SAddr[:], b[12:16])
	copy(h.DAddr[:], b[16:20])

	rest := b[20:]

	if h.HL < 5 {
		return Ipv4Header{}, nil, ErrTruncated
	}
	optLen := int(h.HL-5) * 4
	if len(rest) < optLen {
		return Ipv4Header{}, nil, ErrTruncated
	}
	h.Opt = append([]byte{}, rest[:optLen]...)
	rest = rest[optLen:]

	return h, rest, nil
}

// ipv4HL computes the header-length word count for a given options slice:
// 5 plus however many 32-bit words are needed to hold it.
func ipv4HL(opt []byte) int {
	return 5 + (len(opt)+3)/4
}

// emitIpv4 returns the canonical wire form of h. HL is recomputed from
// len(Opt) so a caller only has to keep Opt consistent; the reserved bit
// before DF is always zero, per RFC 791 §3.1.
func emitIpv4(h Ipv4Header) []byte {
	hl := ipv4HL(h.Opt)
	out := make([]byte, 4*hl)

	out[0] = (4 << 4) | uint8(hl&0x0F)
	out[1] = h.TOS
	putBeUint16(out[2:4], h.Len)
	putBeUint16(out[4:6], h.ID)

	flagsFrag := h.Off & 0x1FFF
	if h.DF {
		flagsFrag |= 0x4000
	}
	if h.MF {
		flagsFrag |= 0x2000
	}
	putBeUint16(out[6:8], flagsFrag)

	out[8] = h.TTL
	out[9] = h.Proto
	putBeUint16(out[10:12], h.Sum)
	copy(out[12:16], h.SAddr[:])
	copy(out[16:20], h.DAddr[:])
	copy(out[20:], h.Opt)

	return out
}
