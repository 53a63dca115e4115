package pktcodec

// DLT is a pcap-assigned datalink-type code identifying the outer framing
// of a captured frame. See http://www.tcpdump.org/linktypes.html.
type DLT uint32

const (
	DltNull                  DLT = 0
	DltEn10mb                DLT = 1
	DltEn3mb                 DLT = 2
	DltAx25                  DLT = 3
	DltPronet                DLT = 4
	DltChaos                 DLT = 5
	DltIeee802                DLT = 6
	DltArcnet                DLT = 7
	DltSlip                  DLT = 8
	DltPpp                   DLT = 9
	DltFddi                  DLT = 10
	DltAtmRfc1483            DLT = 11
	DltRaw                   DLT = 12
	DltSlipBsdos             DLT = 15
	DltPppBsdos              DLT = 16
	DltPfsync                DLT = 18
	DltAtmClip               DLT = 19
	DltPppSerial             DLT = 50
	DltCHdlc                 DLT = 104
	DltIeee80211             DLT = 105
	DltLoop                  DLT = 108
	DltLinuxSll              DLT = 113
	DltPflog                 DLT = 117
	DltIeee80211Radio        DLT = 127
	DltAppleIPOverIeee1394   DLT = 138
	DltIeee80211RadioAvs     DLT = 163
)

// DltChdlc is an alias for DltCHdlc (both spellings appear in the wild for
// the same code, 104).
const DltChdlc = DltCHdlc

var dltNames = map[DLT]string{
	DltNull:                "null",
	DltEn10mb:              "en10mb",
	DltEn3mb:               "en3mb",
	DltAx25:                "ax25",
	DltPronet:              "pronet",
	DltChaos:               "chaos",
	DltIeee802:             "ieee802",
	DltArcnet:              "arcnet",
	DltSlip:                "slip",
	DltPpp:                 "ppp",
	DltFddi:                "fddi",
	DltAtmRfc1483:          "atm_rfc1483",
	DltRaw:                 "raw",
	DltSlipBsdos:           "slip_bsdos",
	DltPppBsdos:            "ppp_bsdos",
	DltPfsync:              "pfsync",
	DltAtmClip:             "atm_clip",
	DltPppSerial:           "ppp_serial",
	DltCHdlc:               "c_hdlc",
	DltIeee80211:           "ieee802_11",
	DltLoop:                "loop",
	DltLinuxSll:            "linux_sll",
	DltPflog:               "pflog",
	DltIeee80211Radio:      "ieee802_11_radio",
	DltAppleIPOverIeee1394: "apple_ip_over_ieee1394",
	DltIeee80211RadioAvs:   "ieee802_11_radio_avs",
}

// dltAliases are additional accepted spellings for DltByName that are not
// returned by DltName. ieee802_22_radio_avs is a documented upstream typo
// for ieee802_11_radio_avs; it is accepted on input only.
var dltAliases = map[string]DLT{
	"chdlc":                 DltCHdlc,
	"ieee802_22_radio_avs":  DltIeee80211RadioAvs,
}

// DltByCode converts a numeric DLT code to a DLT, reporting whether it is
// one of the codes this package has a name for.
func DltByCode(code uint32) (DLT, bool) {
	d := DLT(code)
	_, ok := dltNames[d]
	return d, ok
}

// DltByName looks up the numeric DLT code for a symbolic name, including
// the documented ieee802_22_radio_avs alias.
func DltByName(name string) (DLT, bool) {
	for d, n := range dltNames {
		if n == name {
			return d, true
		}
	}
	if d, ok := dltAliases[name]; ok {
		return d, true
	}
	return 0, false
}

// DltName returns the canonical symbolic name for a DLT, never an alias.
func DltName(d DLT) (string, bool) {
	n, ok := dltNames[d]
	return n, ok
}

// EtherTypeKind is the symbolic protocol a 16-bit EtherType field selects.
type EtherTypeKind int

const (
	EtherUnsupported EtherTypeKind = iota
	EtherIPv4
	EtherIPv6
	EtherArp
	EtherDot1Q
	EtherMplsUnicast
	EtherMplsMulticast
)

const (
	EtherTypeIPv4       uint16 = 0x0800
	EtherTypeArp        uint16 = 0x0806
	EtherTypeDot1Q      uint16 = 0x8100
	EtherTypeMplsUnicast   uint16 = 0x8847
	EtherTypeMplsMulticast uint16 = 0x8848
	EtherTypeIPv6       uint16 = 0x86DD
)

// EtherTypeName maps a raw EtherType field to the symbolic kind the
// dispatcher uses to choose the next parser.
func EtherTypeName(t uint16) EtherTypeKind {
	switch t {
	case EtherTypeIPv4:
		return EtherIPv4
	case EtherTypeIPv6:
		return EtherIPv6
	case EtherTypeArp:
		return EtherArp
	case EtherTypeDot1Q:
		return EtherDot1Q
	case EtherTypeMplsUnicast:
		return EtherMplsUnicast
	case EtherTypeMplsMulticast:
		return EtherMplsMulticast
	default:
		return EtherUnsupported
	}
}

// etherTypeCode is the reverse of EtherTypeName, used by Encapsulate to
// rewrite an enclosing frame's type field from the kind of the layer it
// now encloses. EtherUnsupported has no code: the caller must preserve the
// existing field value instead (see Design Notes §4.5).
func etherTypeCode(k EtherTypeKind) (uint16, bool) {
	switch k {
	case EtherIPv4:
		return EtherTypeIPv4, true
	case EtherIPv6:
		return EtherTypeIPv6, true
	case EtherArp:
		return EtherTypeArp, true
	case EtherDot1Q:
		return EtherTypeDot1Q, true
	case EtherMplsUnicast:
		return EtherTypeMplsUnicast, true
	case EtherMplsMulticast:
		return EtherTypeMplsMulticast, true
	default:
		return 0, false
	}
}

// ProtoKind is the symbolic protocol an IPv4/IPv6 protocol byte selects.
type ProtoKind int

const (
	ProtoUnsupported ProtoKind = iota
	ProtoIcmp
	ProtoTcp
	ProtoUdp
	ProtoGre
	ProtoIcmpv6
	ProtoSctp
	ProtoRaw
)

const (
	IPProtoIP     uint8 = 0
	IPProtoICMP   uint8 = 1
	IPProtoTCP    uint8 = 6
	IPProtoUDP    uint8 = 17
	IPProtoIPv6   uint8 = 41
	IPProtoGRE    uint8 = 47
	IPProtoICMPv6 uint8 = 58
	IPProtoSCTP   uint8 = 132
	IPProtoRaw    uint8 = 255
)

// ProtoName maps a raw IP-protocol byte to the symbolic kind the
// dispatcher uses to choose the next parser.
func ProtoName(p uint8) ProtoKind {
	switch p {
	case IPProtoICMP:
		return ProtoIcmp
	case IPProtoTCP:
		return ProtoTcp
	case IPProtoUDP:
		return ProtoUdp
	case IPProtoGRE:
		return ProtoGre
	case IPProtoICMPv6:
		return ProtoIcmpv6
	case IPProtoSCTP:
		return ProtoSctp
	case IPProtoRaw:
		return ProtoRaw
	default:
		return ProtoUnsupported
	}
}

// protoCode is the reverse of ProtoName, used by Encapsulate to rewrite an
// enclosing IP header's protocol/next-header field.
func protoCode(k ProtoKind) (uint8, bool) {
	switch k {
	case ProtoIcmp:
		return IPProtoICMP, true
	case ProtoTcp:
		return IPProtoTCP, true
	case ProtoUdp:
		return IPProtoUDP, true
	case ProtoGre:
		return IPProtoGRE, true
	case ProtoIcmpv6:
		return IPProtoICMPv6, true
	case ProtoSctp:
		return IPProtoSCTP, true
	case ProtoRaw:
		return IPProtoRaw, true
	default:
		return 0, false
	}
}

// SCTP chunk types (RFC 9260 §3.2); only DATA is structurally special-
// cased by this codec, everything else is carried as opaque payload.
const (
	SctpChunkTypeData             uint8 = 0
	SctpChunkTypeInit             uint8 = 1
	SctpChunkTypeInitAck          uint8 = 2
	SctpChunkTypeSack             uint8 = 3
	SctpChunkTypeHeartbeat        uint8 = 4
	SctpChunkTypeHeartbeatAck     uint8 = 5
	SctpChunkTypeAbort            uint8 = 6
	SctpChunkTypeShutdown         uint8 = 7
	SctpChunkTypeShutdownAck      uint8 = 8
	SctpChunkTypeError            uint8 = 9
	SctpChunkTypeCookieEcho       uint8 = 10
	SctpChunkTypeCookieAck        uint8 = 11
	SctpChunkTypeShutdownComplete uint8 = 14
)

// ICMPv4 message types (RFC 792), cross-referenced against the pack's
// linux icmp.h mirrors for symbolic naming.
const (
	Icmpv4TypeEchoReply      uint8 = 0
	Icmpv4TypeDestUnreach    uint8 = 3
	Icmpv4TypeSourceQuench   uint8 = 4
	Icmpv4TypeRedirect       uint8 = 5
	Icmpv4TypeEcho           uint8 = 8
	Icmpv4TypeTimeExceeded   uint8 = 11
	Icmpv4TypeParamProblem   uint8 = 12
	Icmpv4TypeTimestamp      uint8 = 13
	Icmpv4TypeTimestampReply uint8 = 14
	Icmpv4TypeInfoRequest    uint8 = 15
	Icmpv4TypeInfoReply      uint8 = 16
)

// ICMPv6 message types (RFC 4443), header only.
const (
	Icmpv6TypeDestUnreach  uint8 = 1
	Icmpv6TypePacketTooBig uint8 = 2
	Icmpv6TypeTimeExceeded uint8 = 3
	Icmpv6TypeParamProblem uint8 = 4
	Icmpv6TypeEchoRequest  uint8 = 128
	Icmpv6TypeEchoReply    uint8 = 129
)
