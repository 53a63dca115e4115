package pktcodec

const mplsEntryLen = 4

// parseMplsTag parses an MPLS label stack (RFC 3032): repeated 4-byte
// entries until the one whose bottom-of-stack bit is set, followed by the
// 2-byte inner EtherType. mode is supplied by the caller (the dispatcher),
// since the unicast/multicast distinction lives in the enclosing
// ether-type, not in the label-stack wire form (Design Notes §9 / SPEC_FULL §4.7).
func parseMplsTag(b []byte, mode MplsMode) (MplsTag, []byte, error) {
	if len(b) < mplsEntryLen {
		return MplsTag{}, nil, ErrTruncated
	}

	tag := MplsTag{Mode: mode}

	rest := b
	for {
		if len(rest) < mplsEntryLen {
			return MplsTag{}, nil, ErrTruncated
		}

		word := beUint32(rest[0:4])
		entry := MplsEntry{
			Label: word >> 12,
			QoS:   uint8((word >> 11) & 0x1),
			Pri:   uint8((word >> 10) & 0x1),
			ECN:   uint8((word >> 9) & 0x1),
			TTL:   uint8(word),
		}
		bottomOfStack := (word>>8)&0x1 != 0

		tag.Stack = append(tag.Stack, entry)
		rest = rest[4:]

		if bottomOfStack {
			break
		}
	}

	if len(rest) < 2 {
		return MplsTag{}, nil, ErrTruncated
	}
	tag.EtherType = beUint16(rest[0:2])
	rest = rest[2:]

	return tag, rest, nil
}

// emitMplsTag returns the canonical wire form of h. The bottom-of-stack
// bit is set only on the final entry, regardless of what the input stack
// carried.
func emitMplsTag(h MplsTag) []byte {
	out := make([]byte, 0, len(h.Stack)*4+2)

	for i, entry := range h.Stack {
		word := (entry.Label & 0xFFFFF) << 12
		word |= uint32(entry.QoS&0x1) << 11
		word |= uint32(entry.Pri&0x1) << 10
		word |= uint32(entry.ECN&0x1) << 9
		if i == len(h.Stack)-1 {
			word |= 1 << 8
		}
		word |= uint32(entry.TTL)

		buf := make([]byte, 4)
		putBeUint32(buf, word)
		out = append(out, buf...)
	}

	etBuf := make([]byte, 2)
	putBeUint16(etBuf, h.EtherType)
	out = append(out, etBuf...)

	return out
}
