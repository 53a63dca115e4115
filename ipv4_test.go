package pktcodec

import "testing"

func TestParseIpv4(t *testing.T) {
	b := []byte{
		0x45, 0x00, 0x00, 0x14, // version/ihl, tos, total length
		0x12, 0x34, 0x40, 0x00, // id, flags/frag (DF set)
		0x40, 0x06, 0x00, 0x00, // ttl, proto=TCP, checksum
		10, 0, 0, 1, // src
		10, 0, 0, 2, // dst
	}

	h, rest, err := parseIpv4(b)
	if err != nil {
		t.Fatalf("parseIpv4: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("rest = %d bytes, want 0", len(rest))
	}
	if h.HL != 5 {
		t.Errorf("HL = %d, want 5", h.HL)
	}
	if !h.DF || h.MF {
		t.Errorf("DF/MF = %v/%v, want true/false", h.DF, h.MF)
	}
	if h.Proto != IPProtoTCP {
		t.Errorf("Proto = %d, want %d", h.Proto, IPProtoTCP)
	}
	if h.SAddr != ([4]byte{10, 0, 0, 1}) {
		t.Errorf("SAddr = %v", h.SAddr)
	}
}

func TestIpv4WithOptions(t *testing.T) {
	h := Ipv4Header{
		TOS:   0,
		ID:    7,
		TTL:   64,
		Proto: IPProtoUDP,
		SAddr: [4]byte{192, 168, 0, 1},
		DAddr: [4]byte{192, 168, 0, 2},
		Opt:   []byte{1, 2, 3, 4},
	}

	wire := emitIpv4(h)
	if len(wire) != 24 {
		t.Fatalf("len(wire) = %d, want 24", len(wire))
	}

	got, rest, err := parseIpv4(wire)
	if err != nil {
		t.Fatalf("parseIpv4: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("rest = %d bytes, want 0", len(rest))
	}
	if got.HL != 6 {
		t.Errorf("HL = %d, want 6", got.HL)
	}
	if string(got.Opt) != string(h.Opt) {
		t.Errorf("Opt = %v, want %v", got.Opt, h.Opt)
	}
}

func TestParseIpv4Truncated(t *testing.T) {
	_, _, err := parseIpv4(make([]byte, 19))
	if err != ErrTruncated {
		t.Fatalf("err = %v, want ErrTruncated", err)
	}
}

func TestParseIpv4OptionsTruncated(t *testing.T) {
	b := make([]byte, 20)
	b[0] = 0x46 // HL=6, so 4 bytes of options are required but none follow
	_, _, err := parseIpv4(b)
	if err != ErrTruncated {
		t.Fatalf("err = %v, want ErrTruncated", err)
	}
}
