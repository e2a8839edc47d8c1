package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kiria-f/noita-saves/internal/saves"
	"github.com/kiria-f/noita-saves/internal/ui/styles"
)

// commandKind is one of the commands the interactive session understands.
type commandKind int

const (
	cmdSave commandKind = iota
	cmdLoad
	cmdDelete
	cmdRescan
	cmdPlay
	cmdPath
	cmdHelp
	cmdQuit
)

var commandNames = [...]string{
	cmdSave:   "save",
	cmdLoad:   "load",
	cmdDelete: "delete",
	cmdRescan: "rescan",
	cmdPlay:   "play",
	cmdPath:   "path",
	cmdHelp:   "help",
	cmdQuit:   "quit",
}

// Commands reachable by their first letter. path has none so "p" stays play.
var commandShortcuts = map[string]commandKind{
	"s": cmdSave,
	"l": cmdLoad,
	"d": cmdDelete,
	"r": cmdRescan,
	"p": cmdPlay,
	"h": cmdHelp,
	"q": cmdQuit,
}

func (k commandKind) String() string { return commandNames[k] }

var (
	errUnknownCommand  = errors.New("no such command")
	errUnavailable     = errors.New("command not available")
	errMissingArgument = errors.New("missing argument")
	errCancelled       = errors.New("cancelled")
)

// command is a parsed input line: the command and its raw argument.
type command struct {
	kind commandKind
	arg  string
}

// parseCommand splits input into a command word and an argument. The word
// matches a full command name or its shortcut, case-insensitively. Commands
// not in available are refused; help and path are always accepted.
func parseCommand(input string, available []commandKind) (command, error) {
	word, arg, _ := strings.Cut(strings.TrimSpace(input), " ")
	word = strings.ToLower(word)
	arg = strings.TrimSpace(arg)

	kind, ok := lookupCommand(word)
	if !ok {
		return command{}, fmt.Errorf("%w: %q", errUnknownCommand, word)
	}
	if kind != cmdHelp && kind != cmdPath && !containsKind(available, kind) {
		return command{}, fmt.Errorf("%w: %s", errUnavailable, kind)
	}
	return command{kind: kind, arg: arg}, nil
}

func lookupCommand(word string) (commandKind, bool) {
	if k, ok := commandShortcuts[word]; ok {
		return k, true
	}
	for k, name := range commandNames {
		if name == word {
			return commandKind(k), true
		}
	}
	return 0, false
}

func containsKind(kinds []commandKind, k commandKind) bool {
	for _, c := range kinds {
		if c == k {
			return true
		}
	}
	return false
}

// availableActions returns the commands offered for a listing. A failed
// listing leaves only play and quit; save needs a current save.
func availableActions(l listing) []commandKind {
	if l.err != nil {
		return []commandKind{cmdPlay, cmdQuit}
	}
	actions := []commandKind{cmdLoad, cmdDelete, cmdRescan, cmdPlay, cmdQuit}
	if l.hasCurrent() {
		actions = append([]commandKind{cmdSave}, actions...)
	}
	return actions
}

// actionLine renders actions as "[S]ave | [L]oad | ...".
func actionLine(actions []commandKind) string {
	parts := make([]string, len(actions))
	for i, a := range actions {
		name := a.String()
		parts[i] = styles.Bracket(strings.ToUpper(name[:1])) + name[1:]
	}
	return strings.Join(parts, " | ")
}

const helpText = `save [name]        copy the current save into the store
load [index|name]  replace the current save (empty loads the last one)
delete <range>     delete saves: 3, 2..4, ..2, 5.., or a name
rescan [range]     recompute sizes of the given saves (default all)
play               start the game
path [index|name]  print a save's directory (default the current save)
quit               leave`

// asker collects arguments the user left out.
type asker interface {
	Ask(prompt string, validate func(string) error) (string, error)
	// Pick returns a token addressing one save of list.
	Pick(prompt string, list []saves.Save, current *saves.Save) (string, error)
	Confirm(prompt string) (bool, error)
}

// Requests are commands whose arguments have been resolved against a
// listing. Execution only ever sees these.
type (
	saveRequest   struct{ name string }
	loadRequest   struct{ save saves.Save }
	deleteRequest struct{ saves []saves.Save }
	rescanRequest struct{ saves []saves.Save }
	pathRequest   struct{ path string }
	playRequest   struct{}
	helpRequest   struct{}
	quitRequest   struct{}
)

type request interface{ isRequest() }

func (saveRequest) isRequest()   {}
func (loadRequest) isRequest()   {}
func (deleteRequest) isRequest() {}
func (rescanRequest) isRequest() {}
func (pathRequest) isRequest()   {}
func (playRequest) isRequest()   {}
func (helpRequest) isRequest()   {}
func (quitRequest) isRequest()   {}

// resolveRequest turns c into a request, asking for missing arguments.
func resolveRequest(c command, l listing, ask asker) (request, error) {
	switch c.kind {
	case cmdSave:
		if !l.hasCurrent() {
			return nil, errNoCurrent
		}
		name, err := askName(c.arg, ask)
		if err != nil {
			return nil, err
		}
		return saveRequest{name: name}, nil

	case cmdLoad:
		s, err := pickSave(c.arg, l, ask)
		if err != nil {
			return nil, err
		}
		return loadRequest{save: s}, nil

	case cmdDelete:
		token := c.arg
		if token == "" {
			var err error
			if token, err = ask.Ask("Saves to delete", nil); err != nil {
				return nil, err
			}
		}
		if strings.TrimSpace(token) == "" {
			return nil, fmt.Errorf("%w: index, range or name of the saves to delete", errMissingArgument)
		}
		list, err := saves.ResolveRange(l.saves, token)
		if err != nil {
			return nil, err
		}
		return deleteRequest{saves: list}, nil

	case cmdRescan:
		if c.arg == "" {
			return rescanRequest{saves: l.saves}, nil
		}
		list, err := saves.ResolveRange(l.saves, c.arg)
		if err != nil {
			return nil, err
		}
		return rescanRequest{saves: list}, nil

	case cmdPath:
		if c.arg == "" {
			if !l.hasCurrent() {
				return nil, errNoCurrent
			}
			return pathRequest{path: l.current.Path}, nil
		}
		s, err := saves.Resolve(l.saves, c.arg)
		if err != nil {
			return nil, err
		}
		return pathRequest{path: s.Path}, nil

	case cmdPlay:
		return playRequest{}, nil
	case cmdHelp:
		return helpRequest{}, nil
	case cmdQuit:
		return quitRequest{}, nil
	}
	return nil, fmt.Errorf("%w: %d", errUnknownCommand, c.kind)
}

// askName returns name, or asks for one when empty, and validates it.
func askName(name string, ask asker) (string, error) {
	if name == "" {
		var err error
		if name, err = ask.Ask("Save name", saves.ValidateName); err != nil {
			return "", err
		}
	}
	if err := saves.ValidateName(name); err != nil {
		return "", err
	}
	return name, nil
}

// pickSave resolves token, or lets the user pick a save when it is empty.
// An empty pick selects the last save.
func pickSave(token string, l listing, ask asker) (saves.Save, error) {
	if token == "" {
		if len(l.saves) == 0 {
			return saves.Save{}, fmt.Errorf("%w: the store is empty", saves.ErrOutOfRange)
		}
		var err error
		if token, err = ask.Pick("Save index", l.saves, l.current); err != nil {
			return saves.Save{}, err
		}
	}
	return saves.Resolve(l.saves, token)
}
