package pktcodec

const tcpMinLen = 20

// parseTcp parses a TCP segment header (RFC 9293), including options as
// opaque bytes.
func parseTcp(b []byte) (TcpHeader, []byte, error) {
	if len(b) < tcpMinLen {
		return TcpHeader{}, nil, ErrTruncated
	}

	var h TcpHeader
	h.SPort = beUint16(b[0:2])
	h.DPort = beUint16(b[2:4])
	h.SeqNo = beUint32(b[4:8])
	h.AckNo = beUint32(b[8:12])

	h.Off = b[12] >> 4

	flags := b[13]
	h.Flags = TcpFlags{
		CWR: flags&0x80 != 0,
		ECE: flags&0x40 != 0,
		URG: flags&0x20 != 0,
		ACK: flags&0x10 != 0,
		PSH: flags&0x08 != 0,
		RST: flags&0x04 != 0,
		SYN: flags&0x02 != 0,
		FIN: flags&0x01 != 0,
	}

	h.Win = beUint16(b[14:16])
	h.Sum = beUint16(b[16:18])
	h.Urp = beUint16(b[18:20])

	rest := b[20:]

	if h.Off < 5 {
		return TcpHeader{}, nil, ErrTruncated
	}
	optLen := int(h.Off-5) * 4
	if len(rest) < optLen {
		return TcpHeader{}, nil, ErrTruncated
	}
	h.Opt = append([]byte{}, rest[:optLen]...)
	rest = rest[optLen:]

	return h, rest, nil
}

// tcpOff computes the data-offset word count for a given options slice: 5
// plus however many 32-bit words are needed to hold it.
func tcpOff(opt []byte) int {
	return 5 + (len(opt)+3)/4
}

// emitTcp returns the canonical wire form of h. Off is recomputed from
// len(Opt); the reserved nybble between Off and the flags byte is always
// zero.
func emitTcp(h TcpHeader) []byte {
	off := tcpOff(h.Opt)
	out := make([]byte, 4*off)

	putBeUint16(out[0:2], h.SPort)
	putBeUint16(out[2:4], h.DPort)
	putBeUint32(out[4:8], h.SeqNo)
	putBeUint32(out[8:12], h.AckNo)

	out[12] = uint8(off&0x0F) << 4

	var flags uint8
	if h.Flags.CWR {
		flags |= 0x80
	}
	if h.Flags.ECE {
		flags |= 0x40
	}
	if h.Flags.URG {
		flags |= 0x20
	}
	if h.Flags.ACK {
		flags |= 0x10
	}
	if h.Flags.PSH {
		flags |= 0x08
	}
	if h.Flags.RST {
		flags |= 0x04
	}
	if h.Flags.SYN {
		flags |= 0x02
	}
	if h.Flags.FIN {
		flags |= 0x01
	}
	out[13] = flags

	putBeUint16(out[14:16], h.Win)
	putBeUint16(out[16:18], h.Sum)
	putBeUint16(out[18:20], h.Urp)
	copy(out[20:], h.Opt)

	return out
}
