package pktcodec

const sctpMinLen = 12
const sctpChunkHeaderLen = 4
const sctpDataChunkFixedLen = 12 // tsn, sid, ssn, ppi — after the 4-byte chunk header

// parseSctp parses an SCTP segment's common header (RFC 9260) and its
// ordered chunks.
func parseSctp(b []byte) (SctpHeader, []byte, error) {
	if len(b) < sctpMinLen {
		return SctpHeader{}, nil, ErrTruncated
	}

	h := SctpHeader{
		SPort: beUint16(b[0:2]),
		DPort: beUint16(b[2:4]),
		VTag:  beUint32(b[4:8]),
		Sum:   beUint32(b[8:12]),
	}

	chunks, err := parseSctpChunks(b[12:])
	if err != nil {
		return SctpHeader{}, nil, err
	}
	h.Chunks = chunks

	// SCTP is terminal in the dispatcher: everything after the common
	// header belongs to this layer, so there is no "rest" to hand onward.
	return h, nil, nil
}

// parseSctpChunks parses data as a sequence of SCTP chunks, skipping the
// RFC 9260 §3.2 alignment pad between chunks: chunk-on-wire length is the
// wire Length field (header included) rounded up to a multiple of 4.
func parseSctpChunks(data []byte) ([]SctpChunk, error) {
	var chunks []SctpChunk

	for len(data) > 0 {
		if len(data) < sctpChunkHeaderLen {
			return nil, ErrTruncated
		}

		typ := data[0]
		flags := data[1]
		length := beUint16(data[2:4])

		if length < sctpChunkHeaderLen {
			return nil, ErrTruncated
		}

		onWire := int(length)
		if rem := onWire % 4; rem != 0 {
			onWire += 4 - rem
		}
		if len(data) < onWire {
			return nil, ErrTruncated
		}

		payloadLen := int(length) - sctpChunkHeaderLen
		body := data[sctpChunkHeaderLen : sctpChunkHeaderLen+payloadLen]

		chunk := SctpChunk{Type: typ, Flags: flags, Len: uint16(payloadLen)}

		if typ == SctpChunkTypeData {
			if len(body) < sctpDataChunkFixedLen {
				return nil, ErrTruncated
			}
			chunk.PayloadKind = SctpChunkDataKind
			chunk.DataPayload = SctpDataPayload{
				TSN:  beUint32(body[0:4]),
				SID:  beUint16(body[4:6]),
				SSN:  beUint16(body[6:8]),
				PPI:  beUint32(body[8:12]),
				Data: append([]byte{}, body[12:]...),
			}
		} else {
			chunk.PayloadKind = SctpChunkOpaque
			chunk.OpaquePayload = append([]byte{}, body...)
		}

		chunks = append(chunks, chunk)
		data = data[onWire:]
	}

	return chunks, nil
}

// emitSctp returns the canonical wire form of h, including chunk
// alignment padding.
func emitSctp(h SctpHeader) []byte {
	out := make([]byte, 12)
	putBeUint16(out[0:2], h.SPort)
	putBeUint16(out[2:4], h.DPort)
	putBeUint32(out[4:8], h.VTag)
	putBeUint32(out[8:12], h.Sum)

	for _, chunk := range h.Chunks {
		out = append(out, emitSctpChunk(chunk)...)
	}

	return out
}

func emitSctpChunk(c SctpChunk) []byte {
	var body []byte
	if c.PayloadKind == SctpChunkDataKind {
		body = make([]byte, sctpDataChunkFixedLen)
		putBeUint32(body[0:4], c.DataPayload.TSN)
		putBeUint16(body[4:6], c.DataPayload.SID)
		putBeUint16(body[6:8], c.DataPayload.SSN)
		putBeUint32(body[8:12], c.DataPayload.PPI)
		body = append(body, c.DataPayload.Data...)
	} else {
		body = c.OpaquePayload
	}

	length := sctpChunkHeaderLen + len(body)
	header := make([]byte, sctpChunkHeaderLen)
	header[0] = c.Type
	header[1] = c.Flags
	putBeUint16(header[2:4], uint16(length))

	out := append(header, body...)

	if rem := len(out) % 4; rem != 0 {
		out = append(out, make([]byte, 4-rem)...)
	}

	return out
}
