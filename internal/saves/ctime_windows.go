package saves

import (
	"io/fs"
	"syscall"
	"time"
)

func created(_ string, info fs.FileInfo) time.Time {
	data, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return info.ModTime()
	}
	return time.Unix(0, data.CreationTime.Nanoseconds())
}
