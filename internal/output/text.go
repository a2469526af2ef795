package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/dshills/prreview/internal/review"
)

const defaultWrapWidth = 100

// TextWriter outputs the review for a human reader.
type TextWriter struct {
	// Render turns the markdown summary into styled terminal text.
	Render bool
	// Style is a glamour standard style name; empty picks one from the
	// terminal background.
	Style string
	// Width is the word-wrap column for rendered output.
	Width int
}

func (t *TextWriter) Write(w io.Writer, res *review.Result) error {
	ew := &errWriter{w: w}

	ew.printf("Review Results: %s\n", res.Snapshot.Title)
	ew.printf("Files: %d changed\n", len(res.Snapshot.Files))
	ew.println(strings.Repeat("─", 60))

	summary := res.Summary
	if t.Render {
		summary = t.render(summary)
	}
	ew.println(strings.TrimRight(summary, "\n"))
	return ew.err
}

// render falls back to the raw markdown if glamour fails.
func (t *TextWriter) render(markdown string) string {
	width := t.Width
	if width <= 0 {
		width = defaultWrapWidth
	}
	style := glamour.WithAutoStyle()
	if t.Style != "" {
		style = glamour.WithStandardStyle(t.Style)
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
