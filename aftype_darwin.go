//go:build darwin

package pktcodec

import "golang.org/x/sys/unix"

// pfInet6 resolves PF_INET6 for this platform from golang.org/x/sys/unix
// rather than hand-maintaining per-GOOS numeric constants.
const pfInet6 = uint32(unix.AF_INET6)
