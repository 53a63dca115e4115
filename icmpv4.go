package pktcodec

const icmpv4MinLen = 8

// classifyIcmpv4 maps a message type to the fixed-body shape RFC 792
// defines for it.
func classifyIcmpv4(typ uint8) Icmpv4Type {
	switch typ {
	case Icmpv4TypeDestUnreach, Icmpv4TypeTimeExceeded, Icmpv4TypeSourceQuench:
		return Icmpv4Unreachable
	case Icmpv4TypeParamProblem:
		return Icmpv4ParamProblem
	case Icmpv4TypeRedirect:
		return Icmpv4Redirect
	case Icmpv4TypeEcho, Icmpv4TypeEchoReply:
		return Icmpv4Echo
	case Icmpv4TypeTimestamp, Icmpv4TypeTimestampReply:
		return Icmpv4Timestamp
	case Icmpv4TypeInfoRequest, Icmpv4TypeInfoReply:
		return Icmpv4Info
	default:
		return Icmpv4Opaque
	}
}

// parseIcmpv4 parses an ICMPv4 message (RFC 792), branching the fixed-body
// layout on the message type via classifyIcmpv4. For Timestamp and Info
// messages the tail is always empty (they carry no payload beyond their
// fixed body).
func parseIcmpv4(b []byte) (Icmpv4Header, []byte, error) {
	if len(b) < icmpv4MinLen {
		return Icmpv4Header{}, nil, ErrTruncated
	}

	h := Icmpv4Header{
		Type: b[0],
		Code: b[1],
		Sum:  beUint16(b[2:4]),
	}
	h.BodyKind = classifyIcmpv4(h.Type)

	body := b[4:8]
	rest := b[8:]

	switch h.BodyKind {
	case Icmpv4Unreachable, Icmpv4Opaque:
		h.Unused = beUint32(body)

	case Icmpv4ParamProblem:
		h.Pointer = body[0]
		// remaining 24 bits of the word are unused, not stored.

	case Icmpv4Redirect:
		copy(h.Gateway[:], body)

	case Icmpv4Echo:
		h.ID = beUint16(body[0:2])
		h.Seq = beUint16(body[2:4])

	case Icmpv4Timestamp:
		h.ID = beUint16(body[0:2])
		h.Seq = beUint16(body[2:4])
		if len(rest) < 12 {
			return Icmpv4Header{}, nil, ErrTruncated
		}
		h.OriginateTimestamp = beUint32(rest[0:4])
		h.ReceiveTimestamp = beUint32(rest[4:8])
		h.TransmitTimestamp = beUint32(rest[8:12])
		rest = rest[12:]
		// Terminal: no payload beyond the fixed body.
		rest = nil

	case Icmpv4Info:
		h.ID = beUint16(body[0:2])
		h.Seq = beUint16(body[2:4])
		// Terminal: no payload beyond the fixed body.
		rest = nil
	}

	return h, rest, nil
}

// emitIcmpv4 returns the canonical wire form of h.
func emitIcmpv4(h Icmpv4Header) []byte {
	var size int
	switch h.BodyKind {
	case Icmpv4Timestamp:
		size = 20
	default:
		size = 8
	}
	out := make([]byte, size)

	out[0] = h.Type
	out[1] = h.Code
	putBeUint16(out[2:4], h.Sum)

	body := out[4:8]
	switch h.BodyKind {
	case Icmpv4Unreachable, Icmpv4Opaque:
		putBeUint32(body, h.Unused)

	case Icmpv4ParamProblem:
		body[0] = h.Pointer

	case Icmpv4Redirect:
		copy(body, h.Gateway[:])

	case Icmpv4Echo, Icmpv4Info:
		putBeUint16(body[0:2], h.ID)
		putBeUint16(body[2:4], h.Seq)

	case Icmpv4Timestamp:
		putBeUint16(body[0:2], h.ID)
		putBeUint16(body[2:4], h.Seq)
		putBeUint32(out[8:12], h.OriginateTimestamp)
		putBeUint32(out[12:16], h.ReceiveTimestamp)
		putBeUint32(out[16:20], h.TransmitTimestamp)
	}

	return out
}
