package pktcodec

import "errors"

// ErrTruncated is returned internally by a header's parse function when
// the input is shorter than the header's minimum length, or a length
// field implies more bytes than are available. The dispatcher converts it
// into a Truncated Tail rather than propagating it as a Go error: callers
// of the public Decapsulate/DecapsulateDLT API never see it.
var ErrTruncated = errors.New("pktcodec: truncated header")

// ErrUnknownKind is returned by Encapsulate when a Packet's Layers slice
// contains a Header whose concrete type is not one of the ones this package
// defines. This is a programmer error: round-tripping a valid Decapsulate
// result never triggers it.
var ErrUnknownKind = errors.New("pktcodec: unknown header kind in packet stack")
