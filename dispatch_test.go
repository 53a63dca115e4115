package pktcodec

import "testing"

func buildEthIpv4Icmp(t *testing.T, payload []byte) []byte {
	t.Helper()

	icmp := Icmpv4Header{Type: Icmpv4TypeEcho, BodyKind: Icmpv4Echo, ID: 1, Seq: 1}
	icmp.Sum = Checksum(append(emitIcmpv4(icmp), payload...))
	icmpWire := append(emitIcmpv4(icmp), payload...)

	ip := Ipv4Header{TTL: 64, Proto: IPProtoICMP, SAddr: [4]byte{10, 0, 0, 1}, DAddr: [4]byte{10, 0, 0, 2}}
	ip.Len = uint16(4*ipv4HL(nil) + len(icmpWire))
	ip.Sum = ChecksumIPv4Header(ip)
	ipWire := append(emitIpv4(ip), icmpWire...)

	eth := EtherHeader{Type: EtherTypeIPv4}
	return append(emitEther(eth), ipWire...)
}

func TestDecapsulateEthernetIpv4Icmp(t *testing.T) {
	payload := []byte("ping")
	frame := buildEthIpv4Icmp(t, payload)

	p := Decapsulate(frame)
	if len(p.Layers) != 3 {
		t.Fatalf("len(Layers) = %d, want 3 (ether, ipv4, icmp)", len(p.Layers))
	}
	if _, ok := p.Layers[0].(EtherHeader); !ok {
		t.Errorf("Layers[0] = %T, want EtherHeader", p.Layers[0])
	}
	if _, ok := p.Layers[1].(Ipv4Header); !ok {
		t.Errorf("Layers[1] = %T, want Ipv4Header", p.Layers[1])
	}
	icmp, ok := p.Layers[2].(Icmpv4Header)
	if !ok {
		t.Fatalf("Layers[2] = %T, want Icmpv4Header", p.Layers[2])
	}
	if icmp.BodyKind != Icmpv4Echo {
		t.Errorf("BodyKind = %v, want Icmpv4Echo", icmp.BodyKind)
	}
	if p.Tail.Kind != TailPayload || string(p.Tail.Data) != string(payload) {
		t.Errorf("Tail = %+v, want payload %q", p.Tail, payload)
	}
}

func TestDecapsulateTcpSynOverIpv4(t *testing.T) {
	tcp := TcpHeader{SPort: 443, DPort: 1234, Flags: TcpFlags{SYN: true}, Win: 1000, Opt: []byte{0x02, 0x04, 0x05, 0xB4}}
	ip := Ipv4Header{TTL: 64, Proto: IPProtoTCP, SAddr: [4]byte{1, 1, 1, 1}, DAddr: [4]byte{2, 2, 2, 2}}
	tcp.Sum = ChecksumTCP(&ip, nil, tcp, nil)
	ipv4Payload := emitTcp(tcp)
	ip.Len = uint16(4*ipv4HL(nil) + len(ipv4Payload))
	ip.Sum = ChecksumIPv4Header(ip)
	frame := append(emitEther(EtherHeader{Type: EtherTypeIPv4}), append(emitIpv4(ip), ipv4Payload...)...)

	p := Decapsulate(frame)
	if len(p.Layers) != 3 {
		t.Fatalf("len(Layers) = %d, want 3", len(p.Layers))
	}
	got, ok := p.Layers[2].(TcpHeader)
	if !ok {
		t.Fatalf("Layers[2] = %T, want TcpHeader", p.Layers[2])
	}
	if !got.Flags.SYN || got.Flags.ACK {
		t.Errorf("Flags = %+v", got.Flags)
	}
	if p.Tail.Kind != TailPayload || len(p.Tail.Data) != 0 {
		t.Errorf("Tail = %+v, want empty payload", p.Tail)
	}
}

func TestDecapsulateUdpOverIpv6(t *testing.T) {
	udp := UdpHeader{SPort: 1000, DPort: 2000}
	ip := Ipv6Header{Next: IPProtoUDP, Hop: 64}
	payload := []byte("hello")
	udp.ULen = uint16(udpMinLen + len(payload))
	udp.Sum = ChecksumUDP(nil, &ip, udp, payload)
	ip.Len = uint16(udpMinLen + len(payload))
	frame := append(emitIpv6(ip), append(emitUdp(udp), payload...)...)

	p := DecapsulateDLT(DltRaw, frame)
	// DltRaw has no dltToTag entry, so this should be Unsupported at layer 0.
	if p.Tail.Kind != TailUnsupported {
		t.Fatalf("Tail.Kind = %v, want TailUnsupported for unmapped DLT", p.Tail.Kind)
	}

	// Confirm the same bytes decode correctly when routed through Ethernet
	// with an IPv6 ether-type instead.
	eth := append(emitEther(EtherHeader{Type: EtherTypeIPv6}), frame...)
	p2 := Decapsulate(eth)
	if len(p2.Layers) != 3 {
		t.Fatalf("len(Layers) = %d, want 3", len(p2.Layers))
	}
	got, ok := p2.Layers[2].(UdpHeader)
	if !ok {
		t.Fatalf("Layers[2] = %T, want UdpHeader", p2.Layers[2])
	}
	if got.SPort != 1000 || got.DPort != 2000 {
		t.Errorf("got %+v", got)
	}
	if string(p2.Tail.Data) != string(payload) {
		t.Errorf("Tail.Data = %q, want %q", p2.Tail.Data, payload)
	}
}

func TestDecapsulateArpRequest(t *testing.T) {
	arp := ArpHeader{Hrd: 1, Pro: EtherTypeIPv4, Hln: 6, Pln: 4, Op: 1,
		Sip: [4]byte{10, 0, 0, 1}, Tip: [4]byte{10, 0, 0, 2}}
	frame := append(emitEther(EtherHeader{Type: EtherTypeArp}), emitArp(arp)...)

	p := Decapsulate(frame)
	if len(p.Layers) != 2 {
		t.Fatalf("len(Layers) = %d, want 2", len(p.Layers))
	}
	got, ok := p.Layers[1].(ArpHeader)
	if !ok {
		t.Fatalf("Layers[1] = %T, want ArpHeader", p.Layers[1])
	}
	if got.Op != 1 {
		t.Errorf("Op = %d, want 1", got.Op)
	}
}

func TestDecapsulateMplsUnicastOverEthernetCarryingUdp(t *testing.T) {
	udp := UdpHeader{SPort: 1, DPort: 2, ULen: udpMinLen}
	mpls := MplsTag{Mode: MplsUnicast, Stack: []MplsEntry{{Label: 42, TTL: 64}}, EtherType: EtherTypeIPv4}

	ip := Ipv4Header{TTL: 64, Proto: IPProtoUDP}
	ip.Len = uint16(4*ipv4HL(nil) + udpMinLen)
	ip.Sum = ChecksumIPv4Header(ip)

	inner := append(emitIpv4(ip), emitUdp(udp)...)
	frame := append(emitEther(EtherHeader{Type: EtherTypeMplsUnicast}), append(emitMplsTag(mpls), inner...)...)

	p := Decapsulate(frame)
	if len(p.Layers) != 4 {
		t.Fatalf("len(Layers) = %d, want 4 (ether, mpls, ipv4, udp)", len(p.Layers))
	}
	if _, ok := p.Layers[1].(MplsTag); !ok {
		t.Fatalf("Layers[1] = %T, want MplsTag", p.Layers[1])
	}
}

func TestDecapsulateTruncatedMidStream(t *testing.T) {
	frame := emitEther(EtherHeader{Type: EtherTypeIPv4})
	frame = append(frame, 0x45, 0x00) // start of an IPv4 header, then nothing

	p := Decapsulate(frame)
	if len(p.Layers) != 1 {
		t.Fatalf("len(Layers) = %d, want 1 (ether only)", len(p.Layers))
	}
	if p.Tail.Kind != TailTruncated {
		t.Errorf("Tail.Kind = %v, want TailTruncated", p.Tail.Kind)
	}
}

func TestDecapsulateUnsupportedEtherType(t *testing.T) {
	frame := append(emitEther(EtherHeader{Type: 0x1234}), 1, 2, 3)
	p := Decapsulate(frame)
	if len(p.Layers) != 1 {
		t.Fatalf("len(Layers) = %d, want 1", len(p.Layers))
	}
	if p.Tail.Kind != TailUnsupported {
		t.Errorf("Tail.Kind = %v, want TailUnsupported", p.Tail.Kind)
	}
	if string(p.Tail.Data) != "\x01\x02\x03" {
		t.Errorf("Tail.Data = %v", p.Tail.Data)
	}
}
