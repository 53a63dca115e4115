package pktcodec

import "testing"

func TestUdpRoundTrip(t *testing.T) {
	h := UdpHeader{SPort: 5353, DPort: 5353, ULen: 16, Sum: 0xBEEF}

	wire := emitUdp(h)
	got, rest, err := parseUdp(wire)
	if err != nil {
		t.Fatalf("parseUdp: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("rest = %d bytes, want 0", len(rest))
	}
	if got != h {
		t.Errorf("got %+v, want %+v", got, h)
	}
}

func TestParseUdpTruncated(t *testing.T) {
	_, _, err := parseUdp(make([]byte, 7))
	if err != ErrTruncated {
		t.Fatalf("err = %v, want ErrTruncated", err)
	}
}
