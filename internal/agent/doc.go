// Package agent sequences a pull request review: fetch the pull request,
// generate a review, publish it into the description.
//
// A [Session] is built once per invocation from a [config.Config]. The dry-run
// or live implementations of the change-request and generator capabilities
// are chosen at construction; [Session.Run] walks the same state sequence in
// both modes.
package agent
