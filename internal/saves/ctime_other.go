//go:build !linux && !darwin && !windows

package saves

import (
	"io/fs"
	"time"
)

func created(_ string, info fs.FileInfo) time.Time {
	return info.ModTime()
}
