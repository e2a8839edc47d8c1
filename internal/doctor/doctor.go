package doctor

import (
	"context"
	"fmt"

	"github.com/kiria-f/noita-saves/internal/output"
	"github.com/kiria-f/noita-saves/internal/saves"
)

// Run checks the store, prints a summary and, with fix, repairs what it can.
// Output goes to the context's printer.
func Run(ctx context.Context, store *saves.Store, fix bool) error {
	out := output.FromContext(ctx)

	out.Println("Checking save store...")
	report := Check(ctx, store)
	printSummary(out, report)

	if len(report.Issues) == 0 {
		out.Println("\n✓ No issues found")
		return nil
	}

	out.Printf("\nFound %d issues:\n", len(report.Issues))
	printIssuesByCategory(out, report.Issues)

	if !fix {
		if fixable(report.Issues) > 0 {
			out.Println("\nRun 'noita-saves doctor --fix' to repair.")
		}
		return nil
	}

	out.Println("\nFixing...")
	fixed, failed := fixAllIssues(out, report.Issues)
	out.Printf("\nFixed %d issues", fixed)
	if failed > 0 {
		out.Printf(", %d failed", failed)
	}
	out.Println()
	if failed > 0 {
		return fmt.Errorf("%d fixes failed", failed)
	}
	return nil
}

func fixable(issues []Issue) int {
	n := 0
	for _, issue := range issues {
		if issue.FixAction != FixNone {
			n++
		}
	}
	return n
}

// printSummary prints a categorized summary.
func printSummary(out *output.Printer, r Report) {
	out.Println()
	out.Printf("  ✓ %d of %d saves have valid sidecars\n", r.SavesOK, r.SavesSeen)

	counts := make(map[IssueCategory]int)
	for _, issue := range r.Issues {
		counts[issue.Category]++
	}
	if n := counts[CategoryPaths]; n > 0 {
		out.Printf("  ⚠ %d path issues\n", n)
	}
	if n := counts[CategorySidecar]; n > 0 {
		out.Printf("  ⚠ %d sidecar issues\n", n)
	}
	if n := counts[CategoryStore]; n > 0 {
		out.Printf("  ⚠ %d store issues\n", n)
	}
}

// printIssuesByCategory groups and prints issues.
func printIssuesByCategory(out *output.Printer, issues []Issue) {
	byCategory := make(map[IssueCategory][]Issue)
	for _, issue := range issues {
		byCategory[issue.Category] = append(byCategory[issue.Category], issue)
	}

	categoryNames := map[IssueCategory]string{
		CategoryPaths:   "Path issues",
		CategorySidecar: "Sidecar issues",
		CategoryStore:   "Store issues",
	}

	for _, cat := range []IssueCategory{CategoryPaths, CategorySidecar, CategoryStore} {
		catIssues := byCategory[cat]
		if len(catIssues) == 0 {
			continue
		}

		out.Printf("\n%s:\n", categoryNames[cat])
		for _, issue := range catIssues {
			out.Printf("  • %s: %s\n", issue.Key, issue.Description)
		}
	}
}
