// Package cmd implements the CLI entry points for the PyOS shell.
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/elk-language/go-prompt"
	istrings "github.com/elk-language/go-prompt/strings"
	"github.com/mattn/go-isatty"

	"github.com/KianTset/pyos/internal/constants"
	"github.com/KianTset/pyos/internal/display"
	"github.com/KianTset/pyos/internal/logging"
	"github.com/KianTset/pyos/internal/shell"
)

// replSession wraps a shell session for the go-prompt REPL front end.
type replSession struct {
	session  *shell.Session
	exitFlag bool
}

// verbSuggestions are the completion entries for the first word of a line.
var verbSuggestions = []prompt.Suggest{
	{Text: "help", Description: "Shows this help message"},
	{Text: "ls", Description: "Lists contents of a directory"},
	{Text: "cd", Description: "Changes the current directory"},
	{Text: "mkdir", Description: "Creates a new directory"},
	{Text: "cat", Description: "Displays the content of a file"},
	{Text: "echo", Description: "Writes text to a file"},
	{Text: "rm", Description: "Removes a file or an empty directory"},
	{Text: "pwd", Description: "Prints the current working directory path"},
	{Text: "date", Description: "Displays the current date and time"},
	{Text: "exit", Description: "Exits the PyOS session"},
}

// completer provides auto-completion: verbs for the first word, and
// context-aware child names of the current directory for cd, cat and rm
// arguments.
func (r *replSession) completer(d prompt.Document) ([]prompt.Suggest, istrings.RuneNumber, istrings.RuneNumber) {
	text := d.TextBeforeCursor()
	endIndex := d.CurrentRuneIndex()
	w := d.GetWordBeforeCursor()
	startIndex := endIndex - istrings.RuneCountInString(w)

	// First word: suggest verbs.
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.ContainsAny(text, " \t") {
		return prompt.FilterHasPrefix(verbSuggestions, w, true), startIndex, endIndex
	}

	var suggestions []prompt.Suggest
	switch fields[0] {
	case "cd":
		for _, e := range r.session.Entries() {
			if e.IsDir {
				suggestions = append(suggestions, prompt.Suggest{Text: e.Name, Description: "directory"})
			}
		}
	case "cat":
		for _, e := range r.session.Entries() {
			if !e.IsDir {
				suggestions = append(suggestions, prompt.Suggest{Text: e.Name, Description: "file"})
			}
		}
	case "rm":
		for _, e := range r.session.Entries() {
			desc := "file"
			if e.IsDir {
				desc = "directory"
			}
			suggestions = append(suggestions, prompt.Suggest{Text: e.Name, Description: desc})
		}
	}

	return prompt.FilterHasPrefix(suggestions, w, true), startIndex, endIndex
}

// executor handles one input line in the REPL.
func (r *replSession) executor(input string) {
	if r.exitFlag {
		return
	}
	if r.session.Execute(input) {
		r.exitFlag = true
	}
}

// runInteractive starts an interactive session. A real terminal gets the
// go-prompt REPL with completion; piped input gets a plain line scanner
// with the same prompt and semantics.
func (app *App) runInteractive(logger *logging.Logger) {
	session := shell.NewSession(shell.Options{
		User:   app.user,
		Out:    os.Stdout,
		Logger: logger,
		Render: app.render,
	})
	defer session.Close()

	display.Banner(os.Stdout)

	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		runPrompt(session)
		return
	}
	runScanner(session, os.Stdin, os.Stdout)
}

// runPrompt drives the session through the go-prompt REPL until exit or
// an interrupt.
func runPrompt(session *shell.Session) {
	r := &replSession{session: session}

	p := prompt.New(
		r.executor,
		prompt.WithCompleter(r.completer),
		prompt.WithPrefixCallback(session.Prompt),
		prompt.WithTitle(constants.AppName),
		prompt.WithMaxSuggestion(10),
		prompt.WithExitChecker(func(in string, breakline bool) bool {
			return r.exitFlag
		}),
		prompt.WithKeyBind(prompt.KeyBind{
			Key: prompt.ControlC,
			Fn: func(p *prompt.Prompt) bool {
				fmt.Println("\nExiting.")
				r.exitFlag = true
				return false
			},
		}),
		prompt.WithKeyBind(prompt.KeyBind{
			Key: prompt.ControlD,
			Fn: func(p *prompt.Prompt) bool {
				if p.Buffer().Text() == "" {
					fmt.Println("\nExiting.")
					r.exitFlag = true
				}
				return false
			},
		}),
	)

	p.Run()
}

// runScanner drives the session line by line from a reader. This is the
// front end for piped input and for integration tests; end of input
// terminates the session like an interrupt would.
func runScanner(session *shell.Session, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, session.Prompt())
		if !scanner.Scan() {
			fmt.Fprintln(out, "\nExiting.")
			return
		}
		if session.Execute(scanner.Text()) {
			return
		}
	}
}
