// Package cmd implements the CLI commands for the PyOS shell.
//
// # Architecture
//
//   - root.go: App struct, cobra command setup, flags, and one-shot mode
//   - interactive.go: interactive session front ends (go-prompt REPL for
//     terminals, line scanner for piped input) and command completion
//
// # Key Components
//
// ## App
//
// The App struct holds the flag-driven configuration (user, verbosity,
// markdown rendering). It is created in Execute() and dispatches into
// one-shot or interactive mode.
//
// ## replSession
//
// Wraps a shell.Session for the REPL: executes each line, tracks the
// terminated state for the exit checker, and provides context-aware
// completion (verbs, then child names of the current directory).
//
// # Usage
//
//	// Main entry point
//	func main() {
//	    cmd.Execute()
//	}
package cmd
