// Package redact scrubs secrets from patch text before it is sent to an LLM
// provider.
//
// Detection uses regex heuristics covering common secret shapes: API keys,
// JWTs, private key headers, AWS access key IDs and secret access keys, bearer
// tokens, and provider-specific tokens (OpenAI, DeepSeek, GitHub, Slack). Each
// match is replaced with [REDACTED].
package redact
