package output

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/dshills/prreview/internal/review"
)

// Writer writes a result in a specific format.
type Writer interface {
	Write(w io.Writer, res *review.Result) error
}

// GetWriter returns a writer for the specified format. render selects
// terminal rendering for the text format.
func GetWriter(format string, render bool) (Writer, error) {
	switch format {
	case "", "text":
		return &TextWriter{Render: render}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteResult writes the result to outPath, or to w when outPath is empty.
// Markdown is rendered only when w is a terminal.
func WriteResult(w io.Writer, res *review.Result, format, outPath string) error {
	render := false
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		render = IsTerminal(w)
	}

	writer, err := GetWriter(format, render)
	if err != nil {
		return err
	}
	return writer.Write(w, res)
}

// IsTerminal reports whether v is a file attached to a terminal.
func IsTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
