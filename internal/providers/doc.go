// Package providers implements the Reviewer interface for each supported LLM
// provider.
//
// Supported providers: OpenAI (GPT) and DeepSeek. Both expose an
// OpenAI-compatible chat-completions endpoint, so a single client serves
// them and only the endpoint and credential differ.
//
// Calls are made once; there is no retry or rate-limit handling. HTTP clients
// are held in a struct field so that tests can redirect calls to local
// httptest servers without making live API requests.
//
// Use [New] to obtain a Reviewer by provider name and model string, and
// [Lookup] to read a provider's defaults.
package providers
