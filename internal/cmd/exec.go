package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kiria-f/noita-saves/internal/log"
)

// ErrNoCommand is returned when the command line is empty.
var ErrNoCommand = errors.New("no command configured")

// RunContext runs name with args in dir (empty means the current directory)
// and waits for it. The error carries stderr if the program wrote any.
// A cancelled context is returned as is.
func RunContext(ctx context.Context, dir, name string, args ...string) error {
	log.FromContext(ctx).Debug("exec", "cmd", name, "args", strings.Join(args, " "), "dir", dir)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	var stderr bytes.Buffer
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errMsg := strings.TrimSpace(stderr.String()); errMsg != "" {
			return fmt.Errorf("%s", errMsg)
		}
		return err
	}
	return nil
}

// Start launches argv[0] with the remaining arguments and returns once the
// process is running. The process is not tied to ctx and keeps running
// after this program exits.
func Start(ctx context.Context, argv []string) error {
	if len(argv) == 0 || argv[0] == "" {
		return ErrNoCommand
	}
	log.FromContext(ctx).Debug("start", "cmd", strings.Join(argv, " "))

	c := exec.Command(argv[0], argv[1:]...)
	if err := c.Start(); err != nil {
		return fmt.Errorf("start %s: %w", argv[0], err)
	}
	return c.Process.Release()
}
