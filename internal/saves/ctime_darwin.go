package saves

import (
	"io/fs"
	"syscall"
	"time"
)

func created(_ string, info fs.FileInfo) time.Time {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime()
	}
	return time.Unix(st.Birthtimespec.Unix())
}
