package main

import (
	"context"
	"fmt"
	"os"
)

// loadListing lists the store for a subcommand. Unlike the session, a
// failed listing is an error.
func loadListing(ctx context.Context, a *app) (listing, error) {
	if err := a.cfg.RequirePaths(); err != nil {
		return listing{}, err
	}
	l := a.list(ctx)
	if l.err != nil {
		return l, fmt.Errorf("cannot load saves: %w", l.err)
	}
	return l, nil
}

// newAsker returns the prompts a subcommand may use for missing arguments.
func newAsker() asker {
	if isTTY(os.Stdin) && isTTY(os.Stderr) {
		return ttyAsker{}
	}
	return scriptAsker{}
}

// confirmed asks unless force is set, and turns a "no" into errCancelled.
func confirmed(ask asker, force bool, prompt string) error {
	if force {
		return nil
	}
	ok, err := ask.Confirm(prompt)
	if err != nil {
		return err
	}
	if !ok {
		return errCancelled
	}
	return nil
}
