package transfer

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/kiria-f/noita-saves/internal/dirstat"
	"github.com/kiria-f/noita-saves/internal/log"
	"github.com/kiria-f/noita-saves/internal/ui/progress"
)

// DefaultFrameRate is the maximum number of bar redraws per second.
const DefaultFrameRate = 30

// Engine performs tree copies and deletions. The zero value is not usable;
// create one with New.
type Engine struct {
	minInterval time.Duration

	// Filesystem hooks, replaced in tests to inject failures.
	copyFile  func(src, dst string, mode fs.FileMode) error
	removeAll func(path string) error
}

// Option configures an Engine.
type Option func(*Engine)

// WithFrameRate caps progress redraws to fps per second. Zero disables the cap.
func WithFrameRate(fps int) Option {
	return func(e *Engine) {
		e.minInterval = progress.IntervalForFramerate(fps)
	}
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		minInterval: progress.IntervalForFramerate(DefaultFrameRate),
		copyFile:    copyFile,
		removeAll:   os.RemoveAll,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CopyOptions controls sidecar handling and the bar title of CopyTree.
type CopyOptions struct {
	// ReadSourceCache trusts the source's stat sidecar instead of scanning.
	ReadSourceCache bool
	// WriteDestCache stores the source stat as the destination's sidecar
	// once the copy succeeded.
	WriteDestCache bool
	Title          string
}

// CopyTree copies the tree at src to dst, which must not exist yet.
// The source's stat sidecar is never copied. Returns the source stat used
// to size the progress bar.
func (e *Engine) CopyTree(ctx context.Context, src, dst string, opts CopyOptions) (dirstat.Stat, error) {
	l := log.FromContext(ctx)

	st, err := dirstat.Get(ctx, src, opts.ReadSourceCache)
	if err != nil {
		return dirstat.Stat{}, &TransferError{Op: "stat", Path: src, Err: err}
	}

	// A linked save is copied as the tree it points to.
	root, err := dirstat.Root(src)
	if err != nil {
		return st, &TransferError{Op: "walk", Path: src, Err: err}
	}

	target := int(st.Count + dirstat.CountDirs(root))
	l.Debug("copy", "src", src, "root", root, "dst", dst, "files", st.Count, "target", target)

	bar := progress.NewBar(ctx, target, opts.Title, progress.WithMinInterval(e.minInterval))
	done := 0

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return &TransferError{Op: "walk", Path: path, Err: walkErr}
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return &TransferError{Op: "walk", Path: path, Err: err}
		}
		out := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			if err := os.Mkdir(out, 0o755); err != nil {
				return &TransferError{Op: "mkdir", Path: out, Err: err}
			}
		case d.Type()&fs.ModeSymlink != 0:
			// Not part of the file count, so it does not advance the bar.
			return copySymlink(path, out)
		case dirstat.IsSidecar(d.Name()):
			return nil
		case d.Type().IsRegular():
			info, err := d.Info()
			if err != nil {
				return &TransferError{Op: "copy", Path: path, Err: err}
			}
			if err := e.copyFile(path, out, info.Mode().Perm()); err != nil {
				return &TransferError{Op: "copy", Path: path, Err: err}
			}
		default:
			l.Debug("skip special file", "path", path)
			return nil
		}

		done++
		bar.Update(done)
		return nil
	})
	if err != nil {
		return st, err
	}
	bar.Finish()

	if opts.WriteDestCache {
		if err := dirstat.WriteCache(dst, st); err != nil {
			l.Debug("write sidecar failed", "path", dst, "err", err)
		}
	}
	return st, nil
}

// DeleteTrees removes each tree in paths, one progress unit per tree. It
// stops at the first failure and returns a *DeleteError. An empty list
// does nothing and draws no bar.
func (e *Engine) DeleteTrees(ctx context.Context, paths []string, title string) error {
	if len(paths) == 0 {
		return nil
	}

	bar := progress.NewBar(ctx, len(paths), title, progress.WithMinInterval(e.minInterval))
	for i, p := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.removeAll(p); err != nil {
			return &DeleteError{Index: i, Path: p, Err: err}
		}
		bar.Update(i + 1)
	}
	bar.Finish()
	return nil
}

// RemoveTree removes one tree without drawing progress.
func (e *Engine) RemoveTree(path string) error {
	if err := e.removeAll(path); err != nil {
		return &TransferError{Op: "remove", Path: path, Err: err}
	}
	return nil
}

func copyFile(src, dst string, mode fs.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	// OpenFile applies the umask.
	return os.Chmod(dst, mode)
}

func copySymlink(src, dst string) error {
	link, err := os.Readlink(src)
	if err != nil {
		return &TransferError{Op: "symlink", Path: src, Err: err}
	}
	if err := os.Symlink(link, dst); err != nil {
		return &TransferError{Op: "symlink", Path: dst, Err: err}
	}
	return nil
}
