package redact

import (
	"regexp"
	"sort"
)

// Placeholder replaces every detected secret.
const Placeholder = "[REDACTED]"

type rule struct {
	name string
	re   *regexp.Regexp
}

// Rules run in order; provider tokens precede the generic assignment rules
// so that a key inside an assignment is attributed to its provider.
var rules = []rule{
	{"private-key", regexp.MustCompile(`-----BEGIN\s+(RSA\s+|EC\s+|OPENSSH\s+)?PRIVATE KEY-----`)},
	{"github-token", regexp.MustCompile(`gh[pousr]_[A-Za-z0-9_]{36,}`)},
	{"github-pat", regexp.MustCompile(`github_pat_[A-Za-z0-9_]{22,}`)},
	{"slack-token", regexp.MustCompile(`xox[bporas]-[A-Za-z0-9-]{10,}`)},
	{"openai-key", regexp.MustCompile(`sk-(proj-)?[A-Za-z0-9_-]{20,}`)},
	{"aws-access-key-id", regexp.MustCompile(`AKIA[0-9A-Z]{16}`)},
	{"aws-secret-key", regexp.MustCompile(`(?i)aws[_-]?secret[_-]?access[_-]?key\s*[:=]\s*["']?[A-Za-z0-9/+=]{40}["']?`)},
	{"jwt", regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`)},
	{"bearer", regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9._-]{20,}`)},
	{"api-key", regexp.MustCompile(`(?i)(api[_-]?key|apikey|api[_-]?secret)\s*[:=]\s*["']?[A-Za-z0-9/+=_-]{20,}["']?`)},
	{"assignment", regexp.MustCompile(`(?i)(secret|token|password|passwd|credential)\s*[:=]\s*["'][^"']{8,}["']`)},
	{"hex-secret", regexp.MustCompile(`(?i)(key|secret|token)\s*[:=]\s*["']?[0-9a-f]{32,}["']?`)},
}

// Result is scrubbed text plus the number of replacements per rule.
type Result struct {
	Text string
	Hits map[string]int
}

// Total returns the number of replacements made.
func (r Result) Total() int {
	n := 0
	for _, c := range r.Hits {
		n += c
	}
	return n
}

// Kinds returns the names of the rules that matched, sorted.
func (r Result) Kinds() []string {
	kinds := make([]string, 0, len(r.Hits))
	for k := range r.Hits {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Scrub replaces detected secrets in text with [Placeholder].
func Scrub(text string) Result {
	res := Result{Text: text, Hits: map[string]int{}}
	for _, r := range rules {
		res.Text = r.re.ReplaceAllStringFunc(res.Text, func(string) string {
			res.Hits[r.name]++
			return Placeholder
		})
	}
	return res
}

// Secrets is Scrub without the accounting.
func Secrets(text string) string {
	return Scrub(text).Text
}
