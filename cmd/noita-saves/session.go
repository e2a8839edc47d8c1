package main

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/kiria-f/noita-saves/internal/format"
	"github.com/kiria-f/noita-saves/internal/history"
	"github.com/kiria-f/noita-saves/internal/log"
	"github.com/kiria-f/noita-saves/internal/ui/styles"
)

const quitMessage = "Thx for using NoitaSaves! Have a nice day!"

const repoURL = "https://github.com/kiria-f/noita-saves"

func welcomeText() string {
	return strings.Join([]string{
		styles.SuccessStyle.Bold(true).Render("Welcome to NoitaSaves!"),
		"",
		styles.Bold.Render("To make a save, you should first quit the game"),
		styles.Bold.Render("You also need to close Noita before loading a save"),
		"Turn off Steam sync in the game settings (if it's enabled)",
		"  Otherwise, do not load a save during Steam sync, it may corrupt the current game state",
		"  If the selected save has not loaded, just load it one more time",
		"  (It may happen due to steam sync)",
		"Type " + styles.AccentStyle.Render("help") + " to see every command",
		"(Check GitHub repo for more info: " + styles.InfoStyle.Render(repoURL) + ")",
	}, "\n")
}

// lineEditor is the liner state plus its history file.
type lineEditor struct {
	*liner.State
	historyPath string
}

func newLineEditor(ctx context.Context) *lineEditor {
	e := &lineEditor{State: liner.NewLiner()}
	e.SetCtrlCAborts(true)

	path, err := history.Path()
	if err != nil {
		log.FromContext(ctx).Debug("no history", "err", err)
		return e
	}
	e.historyPath = path
	if err := history.Load(path, e.State); err != nil {
		log.FromContext(ctx).Debug("history not loaded", "path", path, "err", err)
	}
	return e
}

// Close saves the history and restores the terminal mode.
func (e *lineEditor) Close(ctx context.Context) {
	if e.historyPath != "" {
		if err := history.Save(e.historyPath, e.State); err != nil {
			log.FromContext(ctx).Debug("history not saved", "path", e.historyPath, "err", err)
		}
	}
	e.State.Close()
}

// runSession shows the listing and runs commands until the user quits or
// closes the input. Command errors are printed and the session continues.
func runSession(ctx context.Context, a *app, lr lineReader) error {
	t := a.term
	t.Blank()
	t.Highlight(styles.Success, welcomeText())

	ask := lineAsker{lr: lr, t: t}
	for {
		l := showListing(ctx, a)
		actions := availableActions(l)

		t.Blank()
		t.Write(actionLine(actions))
		t.Flush()
		input, err := lr.Prompt(styles.Arrow + " ")
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			t.Blank()
			t.WriteBlank(quitMessage)
			return nil
		}
		if err != nil {
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		lr.AppendHistory(input)

		quit, err := runLine(ctx, a, input, l, actions, ask)
		switch {
		case errors.Is(err, errCancelled):
			t.WriteBlank(styles.MutedStyle.Render("Cancelled"))
		case err != nil:
			t.Error(err.Error())
		}
		if quit {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func runLine(ctx context.Context, a *app, input string, l listing, actions []commandKind, ask asker) (bool, error) {
	c, err := parseCommand(input, actions)
	if err != nil {
		return false, err
	}
	req, err := resolveRequest(c, l, ask)
	if err != nil {
		return false, err
	}
	log.FromContext(ctx).Debug("dispatch", "cmd", c.kind, "arg", c.arg)
	return dispatch(ctx, a, req, l, ask)
}

// showListing prints the numbered saves. "Loading..." stays on screen only
// until the listing replaces it.
func showListing(ctx context.Context, a *app) listing {
	t := a.term
	t.Blank()
	t.Write("Saves:")
	t.Write(styles.MutedStyle.Render("Loading...")).ScheduleErase()

	l := a.list(ctx)
	switch {
	case l.err != nil:
		t.Error("Cannot load saves\n" + l.err.Error())
	case len(l.saves) == 0:
		t.Write(styles.MutedStyle.Render("< Nothing >"))
	default:
		for i, s := range l.saves {
			t.Write(format.IndexedLine(i+1, len(l.saves), s, l.current))
		}
	}
	return l
}
