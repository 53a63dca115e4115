package pktcodec

import "testing"

func TestIcmpv4EchoRoundTrip(t *testing.T) {
	h := Icmpv4Header{Type: Icmpv4TypeEcho, Code: 0, BodyKind: Icmpv4Echo, ID: 42, Seq: 1}
	wire := emitIcmpv4(h)
	if len(wire) != 8 {
		t.Fatalf("len(wire) = %d, want 8", len(wire))
	}

	got, rest, err := parseIcmpv4(wire)
	if err != nil {
		t.Fatalf("parseIcmpv4: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("rest = %d bytes, want 0", len(rest))
	}
	if got != h {
		t.Errorf("got %+v, want %+v", got, h)
	}
}

func TestIcmpv4TimestampRoundTrip(t *testing.T) {
	h := Icmpv4Header{
		Type: Icmpv4TypeTimestamp, BodyKind: Icmpv4Timestamp,
		ID: 1, Seq: 2,
		OriginateTimestamp: 100, ReceiveTimestamp: 200, TransmitTimestamp: 300,
	}
	wire := emitIcmpv4(h)
	if len(wire) != 20 {
		t.Fatalf("len(wire) = %d, want 20", len(wire))
	}

	got, rest, err := parseIcmpv4(wire)
	if err != nil {
		t.Fatalf("parseIcmpv4: %v", err)
	}
	if rest != nil {
		t.Fatalf("rest = %v, want nil (timestamp has no trailing payload)", rest)
	}
	if got != h {
		t.Errorf("got %+v, want %+v", got, h)
	}
}

func TestIcmpv4DestUnreachableWithPayload(t *testing.T) {
	b := []byte{
		Icmpv4TypeDestUnreach, 1, 0x00, 0x00, // type, code, checksum
		0x00, 0x00, 0x00, 0x00, // unused
		0xAA, 0xBB, // offending payload fragment
	}
	h, rest, err := parseIcmpv4(b)
	if err != nil {
		t.Fatalf("parseIcmpv4: %v", err)
	}
	if h.BodyKind != Icmpv4Unreachable {
		t.Errorf("BodyKind = %v, want Icmpv4Unreachable", h.BodyKind)
	}
	if string(rest) != "\xAA\xBB" {
		t.Errorf("rest = %v", rest)
	}
}

func TestParseIcmpv4Truncated(t *testing.T) {
	_, _, err := parseIcmpv4(make([]byte, 7))
	if err != ErrTruncated {
		t.Fatalf("err = %v, want ErrTruncated", err)
	}
}
