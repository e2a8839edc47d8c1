package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/kiria-f/noita-saves/internal/format"
	"github.com/kiria-f/noita-saves/internal/saves"
	"github.com/kiria-f/noita-saves/internal/term"
	"github.com/kiria-f/noita-saves/internal/ui/prompt"
	"github.com/kiria-f/noita-saves/internal/ui/styles"
)

// lineReader is the part of the line editor the session uses.
// *liner.State implements it.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// lineAsker asks follow-up questions on the session's line editor.
type lineAsker struct {
	lr lineReader
	t  *term.Terminal
}

func (a lineAsker) Ask(p string, validate func(string) error) (string, error) {
	a.t.Flush()
	s, err := a.lr.Prompt(p + " " + styles.Arrow + " ")
	if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
		return "", errCancelled
	}
	if err != nil {
		return "", err
	}
	s = strings.TrimSpace(s)
	if validate != nil && s != "" {
		if err := validate(s); err != nil {
			return "", err
		}
	}
	return s, nil
}

// Pick asks for an index or a name; the listing is already on screen.
func (a lineAsker) Pick(p string, _ []saves.Save, _ *saves.Save) (string, error) {
	return a.Ask(p+" "+styles.MutedStyle.Render("(empty for the last one)"), nil)
}

func (a lineAsker) Confirm(p string) (bool, error) {
	s, err := a.Ask(p+" "+styles.MutedStyle.Render("[y/N]"), nil)
	if err != nil {
		return false, err
	}
	return isYes(s), nil
}

func isYes(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "y" || s == "yes"
}

// ttyAsker asks with full-screen prompts. Used by subcommands on a terminal.
type ttyAsker struct{}

func (ttyAsker) Ask(p string, validate func(string) error) (string, error) {
	res, err := prompt.TextInput(p+":", "", validate)
	if err != nil {
		return "", err
	}
	if res.Cancelled {
		return "", errCancelled
	}
	return res.Value, nil
}

func (ttyAsker) Pick(p string, list []saves.Save, current *saves.Save) (string, error) {
	options := make([]string, len(list))
	for i, s := range list {
		options[i] = format.SaveLine(s, current)
	}
	res, err := prompt.Select(p, options)
	if err != nil {
		return "", err
	}
	if res.Cancelled {
		return "", errCancelled
	}
	return strconv.Itoa(res.Index + 1), nil
}

func (ttyAsker) Confirm(p string) (bool, error) {
	res, err := prompt.Confirm(p)
	if err != nil {
		return false, err
	}
	if res.Cancelled {
		return false, errCancelled
	}
	return res.Confirmed, nil
}

// scriptAsker is used when stdin is not a terminal: nothing can be asked.
type scriptAsker struct{}

func (scriptAsker) Ask(p string, _ func(string) error) (string, error) {
	return "", fmt.Errorf("%w: %s", errMissingArgument, strings.ToLower(p))
}

// Pick selects the last save, the same as an empty answer would.
func (scriptAsker) Pick(string, []saves.Save, *saves.Save) (string, error) {
	return "", nil
}

func (scriptAsker) Confirm(p string) (bool, error) {
	return false, fmt.Errorf("%s: not a terminal, use --force", p)
}
