package github

import "fmt"

// NotFoundError reports that a number does not resolve to a pull request.
type NotFoundError struct {
	Repo   string
	Number int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("PR #%d not found in %s", e.Number, e.Repo)
}

// FetchError wraps a fault raised while reading a pull request.
type FetchError struct {
	Number int
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching PR #%d: %v", e.Number, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// PublishError wraps a fault raised while updating a pull request.
type PublishError struct {
	Number int
	Err    error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("updating PR #%d description: %v", e.Number, e.Err)
}

func (e *PublishError) Unwrap() error { return e.Err }
