package transfer

import "io/fs"

// SetCopyFile replaces the file copy used by CopyTree.
func (e *Engine) SetCopyFile(fn func(src, dst string, mode fs.FileMode) error) {
	e.copyFile = fn
}

// SetRemoveAll replaces the tree removal used by DeleteTrees and RemoveTree.
func (e *Engine) SetRemoveAll(fn func(path string) error) {
	e.removeAll = fn
}

// CopyFile exposes the default file copy.
var CopyFile = copyFile
