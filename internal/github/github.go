package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v68/github"

	"github.com/dshills/prreview/internal/review"
)

const (
	defaultAPIURL = "https://api.github.com"
	perPageLimit  = 100
)

// Client provides access to pull requests of one repository.
type Client struct {
	gh     *gh.Client
	owner  string
	repo   string
	logger *slog.Logger
}

// NewClient creates a client for owner/repo authenticated with token. An
// empty apiURL selects api.github.com.
func NewClient(token, apiURL, owner, repo string) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("GitHub token is empty")
	}
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	base, err := url.Parse(strings.TrimRight(apiURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("parsing GitHub API URL %q: %w", apiURL, err)
	}

	c := gh.NewClient(&http.Client{Timeout: 60 * time.Second}).WithAuthToken(token)
	c.BaseURL = base

	return &Client{
		gh:     c,
		owner:  owner,
		repo:   repo,
		logger: slog.Default(),
	}, nil
}

// SetLogger replaces the client's logger.
func (c *Client) SetLogger(l *slog.Logger) {
	if l != nil {
		c.logger = l
	}
}

// Repository returns the qualified "owner/name" the client operates on.
func (c *Client) Repository() string {
	return c.owner + "/" + c.repo
}

// Fetch reads pull request number and its modified files. The diff joins
// every file's patch, each prefixed by its filename, in the platform's order.
func (c *Client) Fetch(ctx context.Context, number int) (review.Snapshot, error) {
	c.logger.Info("fetching pull request", "repo", c.Repository(), "pr", number)

	pr, err := c.get(ctx, number)
	if err != nil {
		return review.Snapshot{}, c.classify(number, err, func(err error) error {
			return &FetchError{Number: number, Err: err}
		})
	}

	files, err := c.listFiles(ctx, number)
	if err != nil {
		return review.Snapshot{}, c.classify(number, err, func(err error) error {
			return &FetchError{Number: number, Err: fmt.Errorf("listing files: %w", err)}
		})
	}

	snap := review.Snapshot{
		Title:       pr.GetTitle(),
		Description: pr.GetBody(),
		Files:       make([]string, 0, len(files)),
	}
	var diff strings.Builder
	for _, f := range files {
		snap.Files = append(snap.Files, f.GetFilename())
		fmt.Fprintf(&diff, "\nFile: %s\n%s\n", f.GetFilename(), f.GetPatch())
	}
	snap.Diff = diff.String()

	c.logger.Debug("fetched pull request", "pr", number, "files", len(snap.Files), "diff_bytes", len(snap.Diff))
	return snap, nil
}

// Publish re-reads pull request number and overwrites its description with
// the current description plus a review section for summary. Edits made to
// the description between the read and the write are lost.
func (c *Client) Publish(ctx context.Context, number int, summary string) error {
	wrap := func(err error) error { return &PublishError{Number: number, Err: err} }

	pr, err := c.get(ctx, number)
	if err != nil {
		return c.classify(number, err, wrap)
	}

	body := review.AppendSection(pr.GetBody(), summary)
	_, _, err = c.gh.PullRequests.Edit(ctx, c.owner, c.repo, number, &gh.PullRequest{Body: gh.Ptr(body)})
	if err != nil {
		return c.classify(number, err, wrap)
	}

	c.logger.Info("updated pull request description", "repo", c.Repository(), "pr", number)
	return nil
}

// PullSummary is one entry of ListOpen.
type PullSummary struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// ListOpen returns the repository's open pull requests, newest first.
func (c *Client) ListOpen(ctx context.Context) ([]PullSummary, error) {
	opts := &gh.PullRequestListOptions{
		State:       "open",
		ListOptions: gh.ListOptions{PerPage: perPageLimit},
	}
	var out []PullSummary
	for {
		prs, resp, err := c.gh.PullRequests.List(ctx, c.owner, c.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("listing open PRs in %s: %w", c.Repository(), err)
		}
		for _, pr := range prs {
			out = append(out, PullSummary{
				Number: pr.GetNumber(),
				Title:  pr.GetTitle(),
				Author: pr.GetUser().GetLogin(),
			})
		}
		if resp.NextPage == 0 {
			return out, nil
		}
		opts.Page = resp.NextPage
	}
}

func (c *Client) get(ctx context.Context, number int) (*gh.PullRequest, error) {
	pr, _, err := c.gh.PullRequests.Get(ctx, c.owner, c.repo, number)
	return pr, err
}

func (c *Client) listFiles(ctx context.Context, number int) ([]*gh.CommitFile, error) {
	opts := &gh.ListOptions{PerPage: perPageLimit}
	var all []*gh.CommitFile
	for {
		files, resp, err := c.gh.PullRequests.ListFiles(ctx, c.owner, c.repo, number, opts)
		if err != nil {
			return nil, err
		}
		all = append(all, files...)
		if resp.NextPage == 0 {
			return all, nil
		}
		opts.Page = resp.NextPage
	}
}

// classify maps a 404 to NotFoundError and everything else through wrap.
func (c *Client) classify(number int, err error, wrap func(error) error) error {
	if isNotFound(err) {
		return &NotFoundError{Repo: c.Repository(), Number: number}
	}
	return wrap(err)
}

func isNotFound(err error) bool {
	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		return respErr.Response.StatusCode == http.StatusNotFound
	}
	return false
}
