// Package config resolves prreview configuration once at process start.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (GITHUB_TOKEN, REPO_OWNER, REPO_NAME,
//     LLM_PROVIDER, <PROVIDER>_API_KEY, <PROVIDER>_MODEL, ...)
//  3. Config file ($XDG_CONFIG_HOME/prreview/config.toml)
//  4. Built-in defaults
//
// Credentials are only ever read from the environment. Use [Load] to obtain
// a merged [Config]; [Config.RequirePlatform] and [Config.RequireProviderKey]
// report the first missing required variable as an [*Error].
package config
