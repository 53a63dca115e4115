package pktcodec

const linuxCookedMinLen = 16

// parseLinuxCooked parses a Linux "cooked" capture header (DLT_LINUX_SLL).
// All fields are big-endian; Pro carries an EtherType and is compared as a
// raw uint16 like the EtherHeader.Type field.
func parseLinuxCooked(b []byte) (LinuxCookedHeader, []byte, error) {
	if len(b) < linuxCookedMinLen {
		return LinuxCookedHeader{}, nil, ErrTruncated
	}

	var h LinuxCookedHeader
	h.PacketType = beUint16(b[0:2])
	h.Hrd = beUint16(b[2:4])
	h.LLLen = beUint16(b[4:6])
	copy(h.LLBytes[:], b[6:14])
	h.Pro = beUint16(b[14:16])

	return h, b[16:], nil
}

// emitLinuxCooked returns the canonical 16-byte wire form of h.
func emitLinuxCooked(h LinuxCookedHeader) []byte {
	out := make([]byte, 16)
	putBeUint16(out[0:2], h.PacketType)
	putBeUint16(out[2:4], h.Hrd)
	putBeUint16(out[4:6], h.LLLen)
	copy(out[6:14], h.LLBytes[:])
	putBeUint16(out[14:16], h.Pro)
	return out
}
