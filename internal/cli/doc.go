// Package cli wires together the Cobra command tree for the prreview binary.
//
// It defines the root command and its subcommands (review, list, providers,
// config, version), loads the .env file, resolves configuration once, picks
// the pull request to review and maps outcomes to exit codes.
package cli
