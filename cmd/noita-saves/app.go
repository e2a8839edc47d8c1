package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kiria-f/noita-saves/internal/cmd"
	"github.com/kiria-f/noita-saves/internal/config"
	"github.com/kiria-f/noita-saves/internal/log"
	"github.com/kiria-f/noita-saves/internal/saves"
	"github.com/kiria-f/noita-saves/internal/term"
	"github.com/kiria-f/noita-saves/internal/transfer"
)

var errNoCurrent = errors.New("no current save")

// app bundles what every command needs: the effective config, the save
// store, the transfer engine and the terminal.
type app struct {
	cfg    *config.Config
	store  *saves.Store
	engine *transfer.Engine
	term   *term.Terminal
}

func newApp(cfg *config.Config, t *term.Terminal) *app {
	return &app{
		cfg:    cfg,
		store:  saves.NewStore(cfg.SavesDir, cfg.CurrentSave),
		engine: transfer.New(transfer.WithFrameRate(cfg.Progress.Framerate)),
		term:   t,
	}
}

type appKey struct{}

func withApp(ctx context.Context, a *app) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

func appFromContext(ctx context.Context) *app {
	if a, ok := ctx.Value(appKey{}).(*app); ok {
		return a
	}
	c := cfg
	if c == nil {
		d := config.Default()
		c = &d
	}
	return newApp(c, term.FromContext(ctx))
}

// listing is one snapshot of the store as shown to the user.
type listing struct {
	saves   []saves.Save
	current *saves.Save
	err     error
}

func (l listing) hasCurrent() bool { return l.current != nil }

func (a *app) list(ctx context.Context) listing {
	list, err := a.store.List(ctx)
	current, _ := a.store.Current(ctx)
	return listing{saves: list, current: current, err: err}
}

// save copies the current save into the store under name and records its
// stat in the new save's sidecar.
func (a *app) save(ctx context.Context, name string) (saves.Save, error) {
	current, ok := a.store.Current(ctx)
	if !ok {
		return saves.Save{}, fmt.Errorf("%w at %s", errNoCurrent, a.store.CurrentPath)
	}
	if err := a.store.Ensure(); err != nil {
		return saves.Save{}, err
	}
	dst, err := a.store.NewSavePath(name)
	if err != nil {
		return saves.Save{}, err
	}

	st, err := a.engine.CopyTree(ctx, current.Path, dst, transfer.CopyOptions{
		WriteDestCache: true,
		Title:          "Saving",
	})
	if err != nil {
		return saves.Save{}, err
	}
	return saves.Save{Path: dst, Name: name, Created: time.Now(), Stat: st}, nil
}

// load replaces the current save with a copy of s.
func (a *app) load(ctx context.Context, s saves.Save) error {
	if _, err := os.Stat(a.store.CurrentPath); err == nil {
		log.FromContext(ctx).Debug("removing current save", "path", a.store.CurrentPath)
		if err := a.engine.RemoveTree(a.store.CurrentPath); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(a.store.CurrentPath), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(a.store.CurrentPath), err)
	}

	_, err := a.engine.CopyTree(ctx, s.Path, a.store.CurrentPath, transfer.CopyOptions{
		ReadSourceCache: true,
		Title:           "Loading save",
	})
	return err
}

func (a *app) delete(ctx context.Context, list []saves.Save) error {
	paths := make([]string, len(list))
	for i, s := range list {
		paths[i] = s.Path
	}
	return a.engine.DeleteTrees(ctx, paths, "Deleting")
}

func (a *app) rescan(ctx context.Context, list []saves.Save) ([]saves.Save, error) {
	return saves.Rescan(ctx, list)
}

func (a *app) play(ctx context.Context) error {
	return cmd.Start(ctx, a.cfg.Game.Command)
}

// losesProgress reports whether loading would discard a current save that
// matches none of the stored saves.
func losesProgress(l listing) bool {
	return l.current != nil && saves.FindCurrent(l.saves, l.current) == 0
}
