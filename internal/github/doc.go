// Package github is the change-request client: it reads a pull request's
// title, description and per-file patches, and writes the description back
// with a review section appended.
//
// It wraps google/go-github against a single repository. Lookups that resolve
// to no pull request return [*NotFoundError]; other faults are wrapped in
// [*FetchError] or [*PublishError] depending on the step.
package github
