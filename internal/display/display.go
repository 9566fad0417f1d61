// Package display provides terminal output helpers: the startup banner,
// error messages, and optional markdown rendering.
package display

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/KianTset/pyos/internal/constants"
)

var (
	rendererOnce sync.Once
	renderer     *glamour.TermRenderer
	rendererErr  error
)

// Markdown renders a markdown document for the terminal. The renderer is
// created lazily on first use and reused afterwards.
func Markdown(md string) (string, error) {
	rendererOnce.Do(func() {
		renderer, rendererErr = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
	})
	if rendererErr != nil {
		return "", fmt.Errorf("initializing markdown renderer: %w", rendererErr)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

// Banner writes the startup banner shown when an interactive session
// begins.
func Banner(w io.Writer) {
	fmt.Fprintf(w, "%s [Version %s]\n", constants.AppName, constants.Version)
	fmt.Fprintln(w, "(c) Simulated Corporation. All rights reserved.")
	fmt.Fprintln(w)
}

// ShowError prints an error message to stderr.
func ShowError(msg string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
}
