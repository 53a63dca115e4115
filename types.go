/*
Package pktcodec is a pure-Go implementation of a network packet codec.
Written from the ground up for plugging directly into other components,
the API is focused on simplicity and clarity: a raw octet buffer captured
from a link goes in, a stack of structured per-layer headers comes out, and
the same stack can be serialized back into a byte-exact buffer.

It covers the common TCP/IP family layered above several datalink framings
used by packet-capture tooling: Ethernet, 802.1Q, MPLS, BSD loopback, and
Linux "cooked" capture.
*/
package pktcodec

// HeaderKind identifies which concrete header type a Header value holds.
type HeaderKind int

const (
	KindNull HeaderKind = iota
	KindLinuxCooked
	KindEther
	KindDot1Q
	KindMpls
	KindArp
	KindIpv4
	KindIpv6
	KindGre
	KindTcp
	KindUdp
	KindSctp
	KindIcmpv4
	KindIcmpv6
)

func (k HeaderKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindLinuxCooked:
		return "linux_cooked"
	case KindEther:
		return "ether"
	case KindDot1Q:
		return "ieee802_1q_tag"
	case KindMpls:
		return "mpls_tag"
	case KindArp:
		return "arp"
	case KindIpv4:
		return "ipv4"
	case KindIpv6:
		return "ipv6"
	case KindGre:
		return "gre"
	case KindTcp:
		return "tcp"
	case KindUdp:
		return "udp"
	case KindSctp:
		return "sctp"
	case KindIcmpv4:
		return "icmp"
	case KindIcmpv6:
		return "icmpv6"
	default:
		return "unknown"
	}
}

// Header is the tagged-variant interface implemented by every parsed
// header type. Headers are pure values: buffers consumed by a codec are
// borrowed read-only, buffers produced are freshly owned, and there are no
// references between headers in a Packet — order is carried by the slice
// position alone.
type Header interface {
	Kind() HeaderKind
}

// TailKind identifies how a Packet's trailing, non-header bytes should be
// interpreted.
type TailKind int

const (
	// TailPayload means the trailing bytes are the innermost protocol's
	// raw payload (e.g. the bytes after a TCP/UDP/SCTP/ICMP header).
	TailPayload TailKind = iota
	// TailUnsupported means the dispatcher reached a protocol or
	// ether-type it does not recognize; Data is the undecoded remainder.
	TailUnsupported
	// TailTruncated means a header's minimum-length precondition failed
	// or a length field implied more bytes than were available; Data is
	// whatever remained of the input.
	TailTruncated
)

func (k TailKind) String() string {
	switch k {
	case TailPayload:
		return "payload"
	case TailUnsupported:
		return "unsupported"
	case TailTruncated:
		return "truncated"
	default:
		return "unknown"
	}
}

// Tail is the terminal element of a Packet: either raw payload bytes or one
// of the two in-band error sentinels (Unsupported, Truncated) described in
// the error-handling design. The dispatcher never raises a fatal error for
// malformed input — every byte sequence decapsulates to a Packet terminated
// by one of these three Tail kinds.
type Tail struct {
	Kind TailKind
	Data []byte
}

// Packet is an ordered, outer-to-inner sequence of headers terminated by a
// Tail. Layers[0] is the datalink header that was on the wire first.
type Packet struct {
	Layers []Header
	Tail   Tail
}

//-------------------------------------------------------------------------
// Link layer
//-------------------------------------------------------------------------

// NullHeader is the BSD loopback (DLT_NULL) datalink header: a single
// 4-byte address family in host byte order.
type NullHeader struct {
	Family uint32
}

func (NullHeader) Kind() HeaderKind { return KindNull }

// LinuxCookedHeader is the Linux "cooked" capture (DLT_LINUX_SLL) datalink
// header.
type LinuxCookedHeader struct {
	PacketType uint16
	Hrd        uint16
	LLLen      uint16
	LLBytes    [8]byte
	Pro        uint16
}

func (LinuxCookedHeader) Kind() HeaderKind { return KindLinuxCooked }

// EtherHeader is an Ethernet II / IEEE 802.3 frame header.
type EtherHeader struct {
	DHost [6]byte
	SHost [6]byte
	Type  uint16
}

func (EtherHeader) Kind() HeaderKind { return KindEther }

// Dot1QHeader is an IEEE 802.1Q VLAN tag.
type Dot1QHeader struct {
	PCP       uint8 // 3 bits
	CFI       uint8 // 1 bit
	VID       uint16 // 12 bits
	EtherType uint16
}

func (Dot1QHeader) Kind() HeaderKind { return KindDot1Q }

// MplsMode distinguishes the ether-type that introduced an MPLS label
// stack; the mode is never wire-encoded at the label-stack layer itself
// (see Design Notes), it is carried in from the enclosing ether-type.
type MplsMode int

const (
	MplsUnicast MplsMode = iota
	MplsMulticast
)

// MplsEntry is a single 4-byte MPLS label-stack entry. The bottom-of-stack
// bit is not stored here: it is reconstructed on emit from the entry's
// position (set only on the last entry).
type MplsEntry struct {
	Label uint32 // 20 bits
	QoS   uint8  // 1 bit (historically "experimental")
	Pri   uint8  // 1 bit
	ECN   uint8  // 1 bit
	TTL   uint8
}

// MplsTag is an MPLS label stack, plus the inner ether-type carried after
// the bottom-of-stack entry.
type MplsTag struct {
	Mode      MplsMode
	Stack     []MplsEntry
	EtherType uint16
}

func (MplsTag) Kind() HeaderKind { return KindMpls }

// ArpHeader is an IPv4-over-Ethernet ARP frame (RFC 826; hln=6, pln=4).
type ArpHeader struct {
	Hrd uint16
	Pro uint16
	Hln uint8
	Pln uint8
	Op  uint16
	Sha [6]byte
	Sip [4]byte
	Tha [6]byte
	Tip [4]byte
}

func (ArpHeader) Kind() HeaderKind { return KindArp }

//-------------------------------------------------------------------------
// Internet layer
//-------------------------------------------------------------------------

// Ipv4Header is an IPv4 header (RFC 791), including any options as opaque
// bytes. Invariant: len(Opt) == (HL-5)*4.
type Ipv4Header struct {
	HL      uint8 // header length in 32-bit words, >= 5
	TOS     uint8
	Len     uint16
	ID      uint16
	DF      bool
	MF      bool
	Off     uint16 // 13-bit fragment offset
	TTL     uint8
	Proto   uint8
	Sum     uint16
	SAddr   [4]byte
	DAddr   [4]byte
	Opt     []byte
}

func (Ipv4Header) Kind() HeaderKind { return KindIpv4 }

// Ipv6Header is an IPv6 fixed header (RFC 8200). Extension-header chains
// are out of scope (spec Non-goals).
type Ipv6Header struct {
	Class uint8
	Flow  uint32 // 20 bits
	Len   uint16
	Next  uint8
	Hop   uint8
	SAddr [16]byte
	DAddr [16]byte
}

func (Ipv6Header) Kind() HeaderKind { return KindIpv6 }

// GreHeader is a GRE header (RFC 2784) with the optional checksum/reserved1
// fields of RFC 2890, present iff C == true.
type GreHeader struct {
	C      bool // checksum/reserved1 present
	Res0   uint16 // 12 bits
	Ver    uint8  // 3 bits
	Type   uint16
	Chksum uint16
	Res1   uint16
}

func (GreHeader) Kind() HeaderKind { return KindGre }

//-------------------------------------------------------------------------
// Transport layer
//-------------------------------------------------------------------------

// TcpFlags are the eight one-bit TCP control flags (RFC 9293).
type TcpFlags struct {
	CWR bool
	ECE bool
	URG bool
	ACK bool
	PSH bool
	RST bool
	SYN bool
	FIN bool
}

// TcpHeader is a TCP segment header (RFC 9293), including options as
// opaque bytes. Invariant: len(Opt) == (Off-5)*4.
type TcpHeader struct {
	SPort  uint16
	DPort  uint16
	SeqNo  uint32
	AckNo  uint32
	Off    uint8 // data offset in 32-bit words, >= 5
	Flags  TcpFlags
	Win    uint16
	Sum    uint16
	Urp    uint16
	Opt    []byte
}

func (TcpHeader) Kind() HeaderKind { return KindTcp }

// UdpHeader is a UDP datagram header (RFC 768).
type UdpHeader struct {
	SPort uint16
	DPort uint16
	ULen  uint16
	Sum   uint16
}

func (UdpHeader) Kind() HeaderKind { return KindUdp }

// SctpChunkKind distinguishes a DATA chunk (whose payload is structured)
// from everything else (opaque payload), per the data model's two-shape
// SctpChunkPayload.
type SctpChunkKind int

const (
	SctpChunkOpaque SctpChunkKind = iota
	SctpChunkDataKind
)

// SctpDataPayload is the structured payload of an SCTP DATA chunk (type 0).
type SctpDataPayload struct {
	TSN  uint32
	SID  uint16
	SSN  uint16
	PPI  uint32
	Data []byte
}

// SctpChunk is a single chunk within an SCTP segment. Len is the payload
// length without the 4-byte chunk header, matching the wire Length field
// minus 4. Exactly one of DataPayload/OpaquePayload is meaningful,
// selected by PayloadKind.
type SctpChunk struct {
	Type         uint8
	Flags        uint8
	Len          uint16
	PayloadKind  SctpChunkKind
	DataPayload  SctpDataPayload
	OpaquePayload []byte
}

// SctpHeader is an SCTP segment's common header (RFC 9260) plus its
// ordered chunks.
type SctpHeader struct {
	SPort  uint16
	DPort  uint16
	VTag   uint32
	Sum    uint32
	Chunks []SctpChunk
}

func (SctpHeader) Kind() HeaderKind { return KindSctp }

//-------------------------------------------------------------------------
// ICMP
//-------------------------------------------------------------------------

// Icmpv4Type enumerates the ICMPv4 type-dispatched body shapes this codec
// understands.
type Icmpv4Type int

const (
	Icmpv4Unreachable     Icmpv4Type = iota // types 3, 4, 11: 32-bit unused
	Icmpv4ParamProblem                      // type 12: pointer + 24-bit unused
	Icmpv4Redirect                          // type 5: gateway address
	Icmpv4Echo                              // types 8, 0: id + seq
	Icmpv4Timestamp                         // types 13, 14: id, seq, 3 timestamps
	Icmpv4Info                              // types 15, 16: id + seq
	Icmpv4Opaque                            // any other type: 32-bit opaque
)

// Icmpv4Header is an ICMPv4 message (RFC 792) with a body shaped by Type
// and the message Type/Code.
type Icmpv4Header struct {
	Type uint8
	Code uint8
	Sum  uint16

	BodyKind Icmpv4Type

	Unused  uint32 // Unreachable / Opaque
	Pointer uint8  // ParamProblem
	Gateway [4]byte // Redirect
	ID      uint16 // Echo / Timestamp / Info
	Seq     uint16 // Echo / Timestamp / Info
	OriginateTimestamp uint32 // Timestamp
	ReceiveTimestamp   uint32 // Timestamp
	TransmitTimestamp  uint32 // Timestamp
}

func (Icmpv4Header) Kind() HeaderKind { return KindIcmpv4 }

// Icmpv6Header is the 4-byte ICMPv6 header (RFC 4443); the body is left in
// the payload byte stream.
type Icmpv6Header struct {
	Type uint8
	Code uint8
	Sum  uint16
}

func (Icmpv6Header) Kind() HeaderKind { return KindIcmpv6 }
