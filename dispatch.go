package pktcodec

// layerTag drives the dispatcher's state machine: it names the parser to
// run next, independent of which wire field (DLT, EtherType, IP protocol)
// selected it.
type layerTag int

const (
	tagNull layerTag = iota
	tagLinuxCooked
	tagEther
	tagDot1Q
	tagMplsUnicast
	tagMplsMulticast
	tagArp
	tagIpv4
	tagIpv6
	tagGre
	tagTcp
	tagUdp
	tagSctp
	tagIcmpv4
	tagIcmpv6
	tagRawPayload
	tagUnsupported
)

// dltToTag maps the datalink type a capture was taken with to the tag that
// starts the state machine. Unknown DLTs have no entry; the caller treats
// that as an immediate Unsupported tail.
func dltToTag(dlt DLT) (layerTag, bool) {
	switch dlt {
	case DltNull, DltLoop:
		return tagNull, true
	case DltLinuxSll:
		return tagLinuxCooked, true
	case DltEn10mb:
		return tagEther, true
	default:
		return tagUnsupported, false
	}
}

// Decapsulate parses b as an Ethernet II frame (DLT_EN10MB), walking
// successive layers until it reaches a terminal tag, an unrecognized tag, or
// a truncated header, recording one of the in-band Tail outcomes rather
// than returning an error.
func Decapsulate(b []byte) Packet {
	return decapsulateFrom(tagEther, b)
}

// DecapsulateDLT parses b as a frame captured with the given datalink type.
// An unrecognized dlt produces a zero-layer Packet with an Unsupported tail,
// matching the behavior of reaching an unrecognized tag mid-stream.
func DecapsulateDLT(dlt DLT, b []byte) Packet {
	tag, ok := dltToTag(dlt)
	if !ok {
		return Packet{Tail: Tail{Kind: TailUnsupported, Data: b}}
	}
	return decapsulateFrom(tag, b)
}

// decapsulateFrom runs the layer state machine starting at tag over b,
// accumulating parsed headers until a terminal condition is reached.
func decapsulateFrom(tag layerTag, b []byte) Packet {
	var p Packet

	for {
		switch tag {
		case tagNull:
			h, rest, err := parseNull(b)
			if err != nil {
				p.Tail = Tail{Kind: TailTruncated, Data: b}
				return p
			}
			p.Layers = append(p.Layers, h)
			b = rest
			switch h.Family {
			case PF_INET:
				tag = tagIpv4
			case PfInet6:
				tag = tagIpv6
			default:
				tag = tagUnsupported
			}

		case tagLinuxCooked:
			h, rest, err := parseLinuxCooked(b)
			if err != nil {
				p.Tail = Tail{Kind: TailTruncated, Data: b}
				return p
			}
			p.Layers = append(p.Layers, h)
			b = rest
			tag = etherTypeTag(EtherTypeName(h.Pro))

		case tagEther:
			h, rest, err := parseEther(b)
			if err != nil {
				p.Tail = Tail{Kind: TailTruncated, Data: b}
				return p
			}
			p.Layers = append(p.Layers, h)
			b = rest
			tag = etherTypeTag(EtherTypeName(h.Type))

		case tagDot1Q:
			h, rest, err := parseDot1Q(b)
			if err != nil {
				p.Tail = Tail{Kind: TailTruncated, Data: b}
				return p
			}
			p.Layers = append(p.Layers, h)
			b = rest
			tag = etherTypeTag(EtherTypeName(h.EtherType))

		case tagMplsUnicast, tagMplsMulticast:
			mode := MplsUnicast
			if tag == tagMplsMulticast {
				mode = MplsMulticast
			}
			h, rest, err := parseMplsTag(b, mode)
			if err != nil {
				p.Tail = Tail{Kind: TailTruncated, Data: b}
				return p
			}
			p.Layers = append(p.Layers, h)
			b = rest
			tag = etherTypeTag(EtherTypeName(h.EtherType))

		case tagArp:
			h, rest, err := parseArp(b)
			if err != nil {
				p.Tail = Tail{Kind: TailTruncated, Data: b}
				return p
			}
			p.Layers = append(p.Layers, h)
			p.Tail = Tail{Kind: TailPayload, Data: rest}
			return p

		case tagIpv4:
			h, rest, err := parseIpv4(b)
			if err != nil {
				p.Tail = Tail{Kind: TailTruncated, Data: b}
				return p
			}
			p.Layers = append(p.Layers, h)
			b = rest
			tag = protoTag(ProtoName(h.Proto))

		case tagIpv6:
			h, rest, err := parseIpv6(b)
			if err != nil {
				p.Tail = Tail{Kind: TailTruncated, Data: b}
				return p
			}
			p.Layers = append(p.Layers, h)
			b = rest
			tag = protoTag(ProtoName(h.Next))

		case tagGre:
			h, rest, err := parseGre(b)
			if err != nil {
				p.Tail = Tail{Kind: TailTruncated, Data: b}
				return p
			}
			p.Layers = append(p.Layers, h)
			b = rest
			tag = etherTypeTag(EtherTypeName(h.Type))

		case tagTcp:
			h, rest, err := parseTcp(b)
			if err != nil {
				p.Tail = Tail{Kind: TailTruncated, Data: b}
				return p
			}
			p.Layers = append(p.Layers, h)
			p.Tail = Tail{Kind: TailPayload, Data: rest}
			return p

		case tagUdp:
			h, rest, err := parseUdp(b)
			if err != nil {
				p.Tail = Tail{Kind: TailTruncated, Data: b}
				return p
			}
			p.Layers = append(p.Layers, h)
			p.Tail = Tail{Kind: TailPayload, Data: rest}
			return p

		case tagSctp:
			h, rest, err := parseSctp(b)
			if err != nil {
				p.Tail = Tail{Kind: TailTruncated, Data: b}
				return p
			}
			p.Layers = append(p.Layers, h)
			p.Tail = Tail{Kind: TailPayload, Data: rest}
			return p

		case tagIcmpv4:
			h, rest, err := parseIcmpv4(b)
			if err != nil {
				p.Tail = Tail{Kind: TailTruncated, Data: b}
				return p
			}
			p.Layers = append(p.Layers, h)
			p.Tail = Tail{Kind: TailPayload, Data: rest}
			return p

		case tagIcmpv6:
			h, rest, err := parseIcmpv6(b)
			if err != nil {
				p.Tail = Tail{Kind: TailTruncated, Data: b}
				return p
			}
			p.Layers = append(p.Layers, h)
			p.Tail = Tail{Kind: TailPayload, Data: rest}
			return p

		case tagRawPayload:
			p.Tail = Tail{Kind: TailPayload, Data: b}
			return p

		default: // tagUnsupported, or anything the tables couldn't resolve
			p.Tail = Tail{Kind: TailUnsupported, Data: b}
			return p
		}
	}
}

// etherTypeTag maps an EtherType kind to the tag that continues the state
// machine. ProtoRaw-equivalent "no further parse" kinds fall to unsupported.
func etherTypeTag(k EtherTypeKind) layerTag {
	switch k {
	case EtherIPv4:
		return tagIpv4
	case EtherIPv6:
		return tagIpv6
	case EtherArp:
		return tagArp
	case EtherDot1Q:
		return tagDot1Q
	case EtherMplsUnicast:
		return tagMplsUnicast
	case EtherMplsMulticast:
		return tagMplsMulticast
	default:
		return tagUnsupported
	}
}

// protoTag maps an IP-protocol kind to the tag that continues the state
// machine. ProtoRaw ("no further structured header, treat the remainder as
// payload") terminates with a Payload tail rather than an Unsupported one;
// every other unrecognized protocol number falls to Unsupported.
func protoTag(k ProtoKind) layerTag {
	switch k {
	case ProtoTcp:
		return tagTcp
	case ProtoUdp:
		return tagUdp
	case ProtoGre:
		return tagGre
	case ProtoSctp:
		return tagSctp
	case ProtoIcmp:
		return tagIcmpv4
	case ProtoIcmpv6:
		return tagIcmpv6
	case ProtoRaw:
		return tagRawPayload
	default:
		return tagUnsupported
	}
}

// etherCodeFor returns the EtherType/Pro field value that should be stored
// in a frame enclosing inner, for Encapsulate's field-rewrite pass. ok is
// false when inner is nil or has no EtherType mapping (e.g. a transport
// header, GRE, or a link-layer header other than 802.1Q/MPLS), in which case
// the caller preserves whatever value was already in the field.
func etherCodeFor(inner Header) (uint16, bool) {
	if inner == nil {
		return 0, false
	}

	kind := EtherUnsupported
	switch t := inner.(type) {
	case Ipv4Header:
		kind = EtherIPv4
	case Ipv6Header:
		kind = EtherIPv6
	case ArpHeader:
		kind = EtherArp
	case Dot1QHeader:
		kind = EtherDot1Q
	case MplsTag:
		if t.Mode == MplsMulticast {
			kind = EtherMplsMulticast
		} else {
			kind = EtherMplsUnicast
		}
	}
	return etherTypeCode(kind)
}

// protoCodeFor returns the IP-protocol/next-header field value for a
// header enclosing inner. ok is false when inner is nil or has no
// IP-protocol mapping (anything other than TCP, UDP, GRE, SCTP, ICMPv4 or
// ICMPv6).
func protoCodeFor(inner Header) (uint8, bool) {
	if inner == nil {
		return 0, false
	}

	kind := ProtoUnsupported
	switch inner.(type) {
	case TcpHeader:
		kind = ProtoTcp
	case UdpHeader:
		kind = ProtoUdp
	case GreHeader:
		kind = ProtoGre
	case SctpHeader:
		kind = ProtoSctp
	case Icmpv4Header:
		kind = ProtoIcmp
	case Icmpv6Header:
		kind = ProtoIcmpv6
	}
	return protoCode(kind)
}

// Encapsulate serializes a Packet back into its wire-exact byte form: the
// dual of Decapsulate/DecapsulateDLT. Each layer's own length/protocol/
// checksum fields are recomputed from its neighbors so a caller can freely
// edit Layers or Tail.Data between a Decapsulate and a re-Encapsulate.
func Encapsulate(p Packet) ([]byte, error) {
	buf := append([]byte{}, p.Tail.Data...)

	for i := len(p.Layers) - 1; i >= 0; i-- {
		var inner Header
		if i+1 < len(p.Layers) {
			inner = p.Layers[i+1]
		}

		var outerIP4 *Ipv4Header
		var outerIP6 *Ipv6Header
		if i > 0 {
			switch outer := p.Layers[i-1].(type) {
			case Ipv4Header:
				outerIP4 = &outer
			case Ipv6Header:
				outerIP6 = &outer
			}
		}

		var err error
		buf, err = encapsulateLayer(p.Layers[i], inner, outerIP4, outerIP6, buf)
		if err != nil {
			return nil, err
		}
	}

	return buf, nil
}

// encapsulateLayer prepends the wire form of h to buf, rewriting whichever
// of h's fields depend on its neighbors: the ether-type/protocol field from
// inner, the TCP/UDP/ICMPv6 checksum from outerIP4/outerIP6 (exactly one of
// which is non-nil when h sits inside an IP header, both nil otherwise), and
// the IP/UDP length and IPv4/ICMPv4 checksum fields from buf.
func encapsulateLayer(h Header, inner Header, outerIP4 *Ipv4Header, outerIP6 *Ipv6Header, buf []byte) ([]byte, error) {
	switch v := h.(type) {
	case NullHeader:
		if code, ok := etherCodeFor(inner); ok {
			switch code {
			case EtherTypeIPv4:
				v.Family = PF_INET
			case EtherTypeIPv6:
				v.Family = PfInet6
			}
		}
		return append(emitNull(v), buf...), nil

	case LinuxCookedHeader:
		if code, ok := etherCodeFor(inner); ok {
			v.Pro = code
		}
		return append(emitLinuxCooked(v), buf...), nil

	case EtherHeader:
		if code, ok := etherCodeFor(inner); ok {
			v.Type = code
		}
		return append(emitEther(v), buf...), nil

	case Dot1QHeader:
		if code, ok := etherCodeFor(inner); ok {
			v.EtherType = code
		}
		return append(emitDot1Q(v), buf...), nil

	case MplsTag:
		if code, ok := etherCodeFor(inner); ok {
			v.EtherType = code
		}
		return append(emitMplsTag(v), buf...), nil

	case ArpHeader:
		return append(emitArp(v), buf...), nil

	case Ipv4Header:
		if code, ok := protoCodeFor(inner); ok {
			v.Proto = code
		}
		v.Len = uint16(4*ipv4HL(v.Opt) + len(buf))
		v.Sum = 0
		v.Sum = ChecksumIPv4Header(v)
		return append(emitIpv4(v), buf...), nil

	case Ipv6Header:
		if code, ok := protoCodeFor(inner); ok {
			v.Next = code
		}
		v.Len = uint16(len(buf))
		return append(emitIpv6(v), buf...), nil

	case GreHeader:
		if code, ok := etherCodeFor(inner); ok {
			v.Type = code
		}
		return append(emitGre(v), buf...), nil

	case TcpHeader:
		v.Sum = ChecksumTCP(outerIP4, outerIP6, v, buf)
		return append(emitTcp(v), buf...), nil

	case UdpHeader:
		v.ULen = uint16(udpMinLen + len(buf))
		v.Sum = ChecksumUDP(outerIP4, outerIP6, v, buf)
		return append(emitUdp(v), buf...), nil

	case SctpHeader:
		return append(emitSctp(v), buf...), nil

	case Icmpv4Header:
		v.Sum = 0
		unsummed := append(emitIcmpv4(v), buf...)
		v.Sum = Checksum(unsummed)
		return append(emitIcmpv4(v), buf...), nil

	case Icmpv6Header:
		if outerIP6 != nil {
			v.Sum = ChecksumICMPv6(*outerIP6, v, buf)
		}
		return append(emitIcmpv6(v), buf...), nil

	default:
		return nil, ErrUnknownKind
	}
}
