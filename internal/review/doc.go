// Package review holds the data that flows through a pull request review and
// the provider-agnostic Review Generator.
//
// A [Snapshot] is the state of a pull request at fetch time. [Generator]
// turns a snapshot into a system and a user message, sends them to a
// [providers.Reviewer], and returns the first completion's text as the
// review summary. [AppendSection] formats that summary into the delimited
// section appended to the pull request description.
package review
