package agent

import (
	"context"
	"fmt"
	"io"

	"github.com/dshills/prreview/internal/review"
)

// DryRunSummary is the review text produced in dry-run mode.
const DryRunSummary = "This is a dry run review."

// dryRunChanges stands in for the GitHub client without touching the network.
type dryRunChanges struct {
	out io.Writer
}

func (d dryRunChanges) Fetch(_ context.Context, _ int) (review.Snapshot, error) {
	return review.Snapshot{
		Title:       "Example PR Title",
		Description: "Example PR description",
		Files:       []string{"file1.py", "file2.py"},
		Diff:        "Example diff content",
	}, nil
}

func (d dryRunChanges) Publish(_ context.Context, number int, summary string) error {
	_, err := fmt.Fprintf(d.out, "Dry run: would update PR #%d description with:\n%s\n", number, summary)
	return err
}

type dryRunGenerator struct{}

func (dryRunGenerator) Generate(context.Context, review.Snapshot) (string, error) {
	return DryRunSummary, nil
}
