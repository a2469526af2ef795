// Package output formats review results for display or machine consumption.
//
// Two formats are supported:
//   - text: the review markdown, rendered with glamour when writing to a
//     terminal and left raw otherwise (default)
//   - json: the full result, including the pull request snapshot
//
// Use [GetWriter] to obtain a [Writer] for a given format string, or
// [WriteResult] to pick the destination as well.
package output
