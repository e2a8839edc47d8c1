package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kiria-f/noita-saves/internal/saves"
)

// completeSaveArg completes the first argument with save indices and names.
func completeSaveArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	// Completion skips PersistentPreRunE.
	if err := setup(cmd); err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	l, err := loadListing(cmd.Context(), appFromContext(cmd.Context()))
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return saveCompletions(l.saves), cobra.ShellCompDirectiveNoFileComp
}

// saveCompletions offers every save by index with its name as description,
// followed by the names themselves.
func saveCompletions(list []saves.Save) []string {
	out := make([]string, 0, 2*len(list))
	for i, s := range list {
		out = append(out, strconv.Itoa(i+1)+"\t"+s.Name)
	}
	for _, s := range list {
		out = append(out, s.Name)
	}
	return out
}
