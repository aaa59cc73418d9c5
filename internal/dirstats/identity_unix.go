//go:build unix

package dirstats

import (
	"os"
	"syscall"
)

// identity extracts the (device, inode) pair POSIX systems use to
// recognize the same file reached through two different hard links.
func identity(info os.FileInfo) (fileKey, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return fileKey{}, false
	}
	return fileKey{dev: uint64(st.Dev), ino: st.Ino}, true
}
