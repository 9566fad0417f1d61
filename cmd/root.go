package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KianTset/pyos/internal/constants"
	"github.com/KianTset/pyos/internal/logging"
	"github.com/KianTset/pyos/internal/shell"
)

// App holds the application state
type App struct {
	user    string
	verbose bool
	render  bool
}

// NewApp creates a new App instance with default configuration
func NewApp() *App {
	return &App{
		user: constants.DefaultUser,
	}
}

// Execute runs the root command
func Execute() {
	app := NewApp()

	rootCmd := &cobra.Command{
		Use:   "pyos [command line]",
		Short: "A simulated terminal operating system",
		Long: `PyOS is a simulated terminal operating system: an interactive shell
over a purely in-memory virtual filesystem. The filesystem is seeded
fresh on every start and nothing is ever written to disk.

Examples:
  pyos                          # Interactive session
  pyos -u alice                 # Interactive session for user alice
  pyos "mkdir docs; ls"         # Run commands and exit
  pyos -r                       # Render 'help' output as markdown`,
		Args: cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			app.run(cmd, args)
		},
	}

	rootCmd.Flags().StringVarP(&app.user, "user", "u", constants.DefaultUser, "Session user (drives the home directory and the prompt)")
	rootCmd.Flags().BoolVarP(&app.verbose, "verbose", "v", false, "Trace command dispatch to stderr")
	rootCmd.Flags().BoolVarP(&app.render, "render", "r", false, "Render help output as markdown")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func (app *App) run(cmd *cobra.Command, args []string) {
	logger := logging.Discard()
	if app.verbose {
		logger = logging.New(logging.Options{
			Level:  logging.LevelDebug,
			Output: os.Stderr,
		})
	}

	// One-shot mode: execute the given command line(s) and exit.
	if len(args) > 0 {
		app.runOneShot(strings.Join(args, " "), logger)
		return
	}

	app.runInteractive(logger)
}

// runOneShot runs semicolon-separated commands against a freshly seeded
// tree, without a prompt or banner, then exits.
func (app *App) runOneShot(line string, logger *logging.Logger) {
	session := shell.NewSession(shell.Options{
		User:   app.user,
		Out:    os.Stdout,
		Logger: logger,
		Render: app.render,
	})
	defer session.Close()

	for _, command := range strings.Split(line, ";") {
		if session.Execute(command) {
			return
		}
	}
}
