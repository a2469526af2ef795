package review

import (
	"fmt"
	"path/filepath"
	"strings"
)

const systemPrompt = `You are a helpful code reviewer. Review the pull request changes and provide constructive feedback. Focus on code quality, potential bugs, and suggestions for improvement. Format your response in markdown.`

// SystemPrompt returns the system prompt for the LLM.
func SystemPrompt() string {
	return systemPrompt
}

// BuildUserPrompt constructs the user prompt from a pull request snapshot.
// diff replaces snap.Diff so callers can pass scrubbed patch text.
func BuildUserPrompt(snap Snapshot, diff string) string {
	var b strings.Builder

	b.WriteString("Please review this pull request:\n\n")
	fmt.Fprintf(&b, "Title: %s\n", snap.Title)
	fmt.Fprintf(&b, "Description: %s\n\n", snap.Description)
	fmt.Fprintf(&b, "Files changed:\n%s\n\n", strings.Join(snap.Files, ", "))

	// Language hints from file extensions
	if langs := detectLanguages(snap.Files); len(langs) > 0 {
		fmt.Fprintf(&b, "Languages: %s\n\n", strings.Join(langs, ", "))
	}

	b.WriteString("Changes:\n```diff\n")
	b.WriteString(diff)
	b.WriteString("\n```")

	return b.String()
}

var langByExt = map[string]string{
	".go":    "Go",
	".py":    "Python",
	".js":    "JavaScript",
	".ts":    "TypeScript",
	".tsx":   "TypeScript/React",
	".jsx":   "JavaScript/React",
	".rs":    "Rust",
	".java":  "Java",
	".rb":    "Ruby",
	".cpp":   "C++",
	".c":     "C",
	".h":     "C/C++",
	".cs":    "C#",
	".php":   "PHP",
	".swift": "Swift",
	".kt":    "Kotlin",
	".sql":   "SQL",
	".sh":    "Shell",
	".yaml":  "YAML",
	".yml":   "YAML",
	".tf":    "Terraform",
}

// detectLanguages returns languages in order of first appearance.
func detectLanguages(files []string) []string {
	seen := make(map[string]bool)
	var langs []string
	for _, f := range files {
		lang, ok := langByExt[strings.ToLower(filepath.Ext(f))]
		if !ok || seen[lang] {
			continue
		}
		seen[lang] = true
		langs = append(langs, lang)
	}
	return langs
}
