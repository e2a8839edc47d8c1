package transfer

import (
	"errors"
	"fmt"
)

// ErrTransferIO is matched by every filesystem failure reported by this
// package.
var ErrTransferIO = errors.New("transfer failed")

// TransferError records the operation and path where a copy or removal
// stopped.
type TransferError struct {
	Op   string // "stat", "walk", "mkdir", "copy", "symlink" or "remove"
	Path string
	Err  error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *TransferError) Unwrap() []error {
	return []error{ErrTransferIO, e.Err}
}

// DeleteError reports the tree at which DeleteTrees stopped. Trees before
// Index were removed, trees after it were not touched.
type DeleteError struct {
	Index int // position in the list passed to DeleteTrees, 0-based
	Path  string
	Err   error
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("delete %s: %v", e.Path, e.Err)
}

func (e *DeleteError) Unwrap() []error {
	return []error{ErrTransferIO, e.Err}
}
