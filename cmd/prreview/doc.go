// Prreview reviews GitHub pull requests with an LLM provider and appends the
// review to the pull request description.
//
// Usage:
//
//	prreview review 42                 # review PR #42 of $REPO_OWNER/$REPO_NAME
//	prreview review                    # PR from $GITHUB_EVENT_PATH, or pick interactively
//	prreview review --dry-run          # placeholder data, no network calls
//	prreview list                      # open pull requests
//	prreview providers                 # supported providers and their settings
//	prreview config init               # write a default config file
//
// Configuration comes from the config file, the environment (a .env file is
// loaded first) and flags, in increasing priority.
package main
