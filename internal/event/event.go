// Package event extracts the pull request number from a GitHub Actions
// event payload (the JSON file named by GITHUB_EVENT_PATH).
package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNoPullRequest is returned when a payload does not reference a pull
// request.
var ErrNoPullRequest = errors.New("no pull request number found in event payload")

type payload struct {
	Number      int `json:"number"`
	PullRequest *struct {
		Number int `json:"number"`
	} `json:"pull_request"`
	Issue *struct {
		Number      int              `json:"number"`
		PullRequest *json.RawMessage `json:"pull_request"`
	} `json:"issue"`
}

// PRNumber reads an event payload and returns the pull request number.
// pull_request.number is preferred; comments on a pull request carry it as
// issue.number, and some events only set a top-level number.
func PRNumber(r io.Reader) (int, error) {
	var p payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return 0, fmt.Errorf("parsing event payload: %w", err)
	}
	switch {
	case p.PullRequest != nil && p.PullRequest.Number > 0:
		return p.PullRequest.Number, nil
	case p.Issue != nil && p.Issue.PullRequest != nil && p.Issue.Number > 0:
		return p.Issue.Number, nil
	case p.Number > 0 && p.Issue == nil:
		return p.Number, nil
	}
	return 0, ErrNoPullRequest
}

// PRNumberFromFile is PRNumber on the file at path.
func PRNumberFromFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening event payload: %w", err)
	}
	defer f.Close()
	return PRNumber(f)
}
