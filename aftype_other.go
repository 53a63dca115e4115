//go:build !linux && !darwin

package pktcodec

// pfInet6 falls back to the common Linux-family value (10) on every
// platform other than Linux and Darwin.
const pfInet6 = uint32(10)
