package main

import (
	"context"
	"fmt"

	"github.com/kiria-f/noita-saves/internal/format"
	"github.com/kiria-f/noita-saves/internal/saves"
)

// dispatch runs req in the interactive session and reports whether the
// session should end.
func dispatch(ctx context.Context, a *app, req request, l listing, ask asker) (bool, error) {
	switch r := req.(type) {
	case saveRequest:
		_, err := a.save(ctx, r.name)
		return false, err

	case loadRequest:
		if err := confirmLoad(a, l, ask); err != nil {
			return false, err
		}
		return false, a.load(ctx, r.save)

	case deleteRequest:
		ok, err := ask.Confirm(fmt.Sprintf("Delete %s?", describeSaves(r.saves)))
		if err != nil {
			return false, err
		}
		if !ok {
			return false, errCancelled
		}
		return false, a.delete(ctx, r.saves)

	case rescanRequest:
		updated, err := a.rescan(ctx, r.saves)
		a.term.WriteBlank(fmt.Sprintf("Rescanned %s", format.Plural(uint64(len(updated)), "save")))
		return false, err

	case pathRequest:
		a.term.WriteBlank(r.path)
		return false, nil

	case playRequest:
		if err := a.play(ctx); err != nil {
			return false, err
		}
		a.term.WriteBlank("Starting Noita...")
		return false, nil

	case helpRequest:
		a.term.WriteBlank(helpText)
		return false, nil

	case quitRequest:
		a.term.WriteBlank(quitMessage)
		return true, nil
	}
	return false, fmt.Errorf("unhandled request %T", req)
}

// confirmLoad warns before a load would discard progress that matches no
// stored save.
func confirmLoad(a *app, l listing, ask asker) error {
	if !losesProgress(l) {
		return nil
	}
	a.term.Warn("The current progress matches no save and will be lost.\nSave it first to keep it.")
	ok, err := ask.Confirm("Load anyway?")
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}
	return nil
}

func describeSaves(list []saves.Save) string {
	if len(list) == 1 {
		return fmt.Sprintf("%q", list[0].Name)
	}
	return format.Plural(uint64(len(list)), "save")
}
