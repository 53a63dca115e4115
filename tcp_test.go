package pktcodec

import "testing"

func TestTcpRoundTripWithOptions(t *testing.T) {
	h := TcpHeader{
		SPort: 443,
		DPort: 51234,
		SeqNo: 1000,
		AckNo: 2000,
		Flags: TcpFlags{SYN: true, ACK: true},
		Win:   65535,
		Opt:   []byte{0x02, 0x04, 0x05, 0xB4}, // MSS=1460
	}

	wire := emitTcp(h)
	if len(wire) != 24 {
		t.Fatalf("len(wire) = %d, want 24", len(wire))
	}

	got, rest, err := parseTcp(wire)
	if err != nil {
		t.Fatalf("parseTcp: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("rest = %d bytes, want 0", len(rest))
	}
	if got.Off != 6 {
		t.Errorf("Off = %d, want 6", got.Off)
	}
	if !got.Flags.SYN || !got.Flags.ACK || got.Flags.FIN {
		t.Errorf("Flags = %+v", got.Flags)
	}
	if string(got.Opt) != string(h.Opt) {
		t.Errorf("Opt = %v, want %v", got.Opt, h.Opt)
	}
}

func TestTcpFlagsAllSet(t *testing.T) {
	h := TcpHeader{Flags: TcpFlags{CWR: true, ECE: true, URG: true, ACK: true, PSH: true, RST: true, SYN: true, FIN: true}}
	wire := emitTcp(h)
	if wire[13] != 0xFF {
		t.Errorf("flags byte = %#x, want 0xff", wire[13])
	}
	got, _, err := parseTcp(wire)
	if err != nil {
		t.Fatalf("parseTcp: %v", err)
	}
	if got.Flags != h.Flags {
		t.Errorf("got %+v, want %+v", got.Flags, h.Flags)
	}
}

func TestParseTcpTruncated(t *testing.T) {
	_, _, err := parseTcp(make([]byte, 19))
	if err != ErrTruncated {
		t.Fatalf("err = %v, want ErrTruncated", err)
	}
}
