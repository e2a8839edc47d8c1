package cmd

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"testing"

	"github.com/kiria-f/noita-saves/internal/log"
)

func logCtx() (context.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.WithLogger(context.Background(), log.New(&buf, true)), &buf
}

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRunContext_Success(t *testing.T) {
	t.Parallel()
	requireShell(t)

	ctx, logs := logCtx()
	if err := RunContext(ctx, "", "sh", "-c", "exit 0"); err != nil {
		t.Errorf("RunContext(exit 0) = %v, want nil", err)
	}
	if !strings.Contains(logs.String(), "exec cmd=sh") {
		t.Errorf("debug log = %q, want exec line", logs.String())
	}
}

func TestRunContext_Failure(t *testing.T) {
	t.Parallel()
	requireShell(t)

	ctx, _ := logCtx()
	if err := RunContext(ctx, "", "sh", "-c", "exit 1"); err == nil {
		t.Error("RunContext(exit 1) = nil, want error")
	}
}

func TestRunContext_StderrMessage(t *testing.T) {
	t.Parallel()
	requireShell(t)

	ctx, _ := logCtx()
	err := RunContext(ctx, "", "sh", "-c", "echo 'steam not running' >&2; exit 1")
	if err == nil {
		t.Fatal("RunContext = nil, want error")
	}
	if err.Error() != "steam not running" {
		t.Errorf("RunContext error = %q, want %q", err.Error(), "steam not running")
	}
}

func TestRunContext_ContextCancelled(t *testing.T) {
	t.Parallel()
	requireShell(t)

	ctx, _ := logCtx()
	ctx, cancel := context.WithCancel(ctx)
	cancel()
	err := RunContext(ctx, "", "sh", "-c", "sleep 10")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("RunContext error = %v, want context.Canceled", err)
	}
}

func TestStart(t *testing.T) {
	t.Parallel()
	requireShell(t)

	ctx, _ := logCtx()
	if err := Start(ctx, []string{"sh", "-c", "exit 0"}); err != nil {
		t.Errorf("Start() = %v, want nil", err)
	}
}

func TestStart_Errors(t *testing.T) {
	t.Parallel()

	ctx, _ := logCtx()
	if err := Start(ctx, nil); !errors.Is(err, ErrNoCommand) {
		t.Errorf("Start(nil) = %v, want ErrNoCommand", err)
	}
	if err := Start(ctx, []string{"definitely-not-a-real-binary-noita"}); err == nil {
		t.Error("Start(missing binary) = nil, want error")
	}
}
