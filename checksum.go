package pktcodec

import "encoding/binary"

// Checksum computes the raw Internet checksum (RFC 1071) over b: a
// one's-complement sum of 16-bit big-endian words, zero-padding the final
// byte if len(b) is odd, with end-around carry folded into the low 16
// bits, then complemented.
func Checksum(b []byte) uint16 {
	var sum uint32

	n := len(b)
	i := 0
	for ; i+1 < n; i += 2 {
		sum += uint32(binary.BigEndian.Uint16(b[i : i+2]))
	}
	if i < n {
		// Odd trailing byte: treat it as the high byte of a zero-padded word.
		sum += uint32(b[i]) << 8
	}

	for sum > 0xFFFF {
		sum = (sum & 0xFFFF) + (sum >> 16)
	}

	return ^uint16(sum)
}

// MakeSum returns the value to store in a checksum field such that a
// receiver's Checksum over the same bytes (with that field filled in)
// equals 0. Checksum already applies the final one's-complement, so the
// field value is just Checksum(b) computed with the field itself zeroed:
// summing data with its own complement folds to 0xFFFF, and complementing
// that yields 0.
func MakeSum(b []byte) uint16 {
	return Checksum(b)
}

// ValidSum reports whether a checksum field, as recomputed by Checksum,
// indicates a valid packet.
func ValidSum(s uint16) bool {
	return s == 0
}

// ChecksumIPv4Header serializes h with its Sum field zeroed and returns
// the checksum over those bytes.
func ChecksumIPv4Header(h Ipv4Header) uint16 {
	zeroed := h
	zeroed.Sum = 0
	return Checksum(emitIpv4(zeroed))
}

// padEven appends a single zero byte if b has odd length, so the total
// checksummed buffer is an even number of bytes — the one rule that covers
// both the TCP and UDP pseudo-header padding cases.
func padEven(b []byte) []byte {
	if len(b)%2 == 0 {
		return b
	}
	return append(append([]byte{}, b...), 0)
}

// ChecksumTCP computes the TCP checksum over the IPv4 or IPv6 pseudo-
// header (exactly one of ipv4/ipv6 must be non-nil), the TCP header with
// Sum zeroed, and payload.
func ChecksumTCP(ipv4 *Ipv4Header, ipv6 *Ipv6Header, tcp TcpHeader, payload []byte) uint16 {
	zeroed := tcp
	zeroed.Sum = 0
	segment := append(emitTcp(zeroed), payload...)
	length := uint32(len(segment))

	var buf []byte
	switch {
	case ipv4 != nil:
		buf = append(buf, ipv4.SAddr[:]...)
		buf = append(buf, ipv4.DAddr[:]...)
		buf = append(buf, 0x00, IPProtoTCP)
		buf = appendUint16(buf, uint16(length))
	case ipv6 != nil:
		buf = append(buf, ipv6.SAddr[:]...)
		buf = append(buf, ipv6.DAddr[:]...)
		buf = appendUint32(buf, length)
		buf = append(buf, 0x00, 0x00, 0x00, IPProtoTCP)
	default:
		return 0
	}

	buf = append(buf, segment...)
	return Checksum(padEven(buf))
}

// ChecksumUDP computes the UDP checksum over the IPv4 or IPv6 pseudo-
// header (exactly one of ipv4/ipv6 must be non-nil), the UDP header with
// Sum zeroed, and payload. The pseudo-header length field is the UDP
// header's own ULen field, not the IP total length.
func ChecksumUDP(ipv4 *Ipv4Header, ipv6 *Ipv6Header, udp UdpHeader, payload []byte) uint16 {
	zeroed := udp
	zeroed.Sum = 0
	segment := append(emitUdp(zeroed), payload...)

	var buf []byte
	switch {
	case ipv4 != nil:
		buf = append(buf, ipv4.SAddr[:]...)
		buf = append(buf, ipv4.DAddr[:]...)
		buf = append(buf, 0x00, IPProtoUDP)
		buf = appendUint16(buf, udp.ULen)
	case ipv6 != nil:
		buf = append(buf, ipv6.SAddr[:]...)
		buf = append(buf, ipv6.DAddr[:]...)
		buf = appendUint32(buf, uint32(udp.ULen))
		buf = append(buf, 0x00, 0x00, 0x00, IPProtoUDP)
	default:
		return 0
	}

	buf = append(buf, segment...)
	return Checksum(padEven(buf))
}

// ChecksumICMPv6 computes the ICMPv6 checksum over the IPv6 pseudo-header,
// the ICMPv6 header with Sum zeroed, and payload (RFC 4443 §2.3 / RFC 8200
// §8.1).
func ChecksumICMPv6(ipv6 Ipv6Header, icmp Icmpv6Header, payload []byte) uint16 {
	zeroed := icmp
	zeroed.Sum = 0
	segment := append(emitIcmpv6(zeroed), payload...)
	length := uint32(len(segment))

	var buf []byte
	buf = append(buf, ipv6.SAddr[:]...)
	buf = append(buf, ipv6.DAddr[:]...)
	buf = appendUint32(buf, length)
	buf = append(buf, 0x00, 0x00, 0x00, IPProtoICMPv6)
	buf = append(buf, segment...)

	return Checksum(padEven(buf))
}

func appendUint16(b []byte, v uint16) []byte {
	return append(b, byte(v>>8), byte(v))
}

func appendUint32(b []byte, v uint32) []byte {
	return append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
