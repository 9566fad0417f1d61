// Package shell implements the PyOS session: the current-path state, the
// path resolver, and the command dispatcher over the virtual filesystem.
//
// A Session is owned by exactly one front end (REPL or line scanner) and
// processes one command line at a time. Handlers write their output and
// their failure messages to the session writer; nothing past the dispatch
// boundary ever sees an error.
package shell

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/KianTset/pyos/internal/constants"
	"github.com/KianTset/pyos/internal/logging"
	"github.com/KianTset/pyos/internal/vfs"
)

// Session holds the state of one shell session: the filesystem tree, the
// current working path, and the user identity fixed at start.
type Session struct {
	user     string
	hostname string
	id       string
	path     []string
	tree     *vfs.Tree
	out      io.Writer
	log      *logging.Logger
	render   bool
}

// Options configures a new session. Zero values fall back to the default
// user, stdout, and a discarding logger.
type Options struct {
	User   string
	Out    io.Writer
	Logger *logging.Logger
	// Render switches help output to markdown rendering.
	Render bool
}

// NewSession seeds a fresh filesystem tree for the user and starts the
// session in the user's home directory.
func NewSession(opts Options) *Session {
	user := opts.User
	if user == "" {
		user = constants.DefaultUser
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	s := &Session{
		user:     user,
		hostname: constants.Hostname,
		id:       uuid.New().String(),
		path:     []string{"home", user},
		tree:     vfs.New(user, constants.WelcomeContent, constants.OSReleaseContent),
		out:      out,
		log:      log,
		render:   opts.Render,
	}

	s.log.Info("session start", logging.Fields{
		"session": s.id,
		"user":    s.user,
	})
	return s
}

// User returns the session's user identity.
func (s *Session) User() string {
	return s.user
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// PathString returns the current working directory as an absolute path,
// "/" at the root.
func (s *Session) PathString() string {
	if len(s.path) == 0 {
		return "/"
	}
	return "/" + strings.Join(s.path, "/")
}

// Prompt renders the command prompt, e.g. "alice@pyos-main:/home/alice$ ".
func (s *Session) Prompt() string {
	return fmt.Sprintf("%s@%s:%s$ ", s.user, s.hostname, s.PathString())
}

// currentDir resolves the current working directory. The resolver only
// moves into directories it has validated, so this cannot fail on a
// well-formed session; a nil return means the tree was corrupted.
func (s *Session) currentDir() *vfs.Dir {
	dir, err := s.tree.Resolve(s.path)
	if err != nil {
		panic(fmt.Sprintf("current path %q no longer resolves: %v", s.PathString(), err))
	}
	return dir
}

// Entries lists the current directory, sorted by name. Used by the REPL
// completer for argument suggestions.
func (s *Session) Entries() []vfs.Entry {
	return s.currentDir().List()
}

// Execute dispatches one input line. It returns true when the session
// has terminated (exit command). Blank lines are ignored. A panic inside
// a handler is reported and the session keeps running.
func (s *Session) Execute(line string) (exit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	verb, args := fields[0], fields[1:]

	defer func() {
		if r := recover(); r != nil {
			s.log.Error("handler fault", fmt.Errorf("%v", r), logging.Fields{
				"session": s.id,
				"verb":    verb,
			})
			fmt.Fprintf(s.out, "An error occurred executing '%s': %v\n", verb, r)
		}
	}()

	s.log.Debug("dispatch", logging.Fields{
		"session": s.id,
		"verb":    verb,
		"args":    len(args),
	})

	switch verb {
	case "help":
		s.cmdHelp()
	case "ls":
		s.cmdLs()
	case "cd":
		s.cmdCd(args)
	case "mkdir":
		s.cmdMkdir(args)
	case "cat":
		s.cmdCat(args)
	case "echo":
		s.cmdEcho(args)
	case "rm":
		s.cmdRm(args)
	case "pwd":
		s.cmdPwd()
	case "date":
		s.cmdDate()
	case "exit":
		s.cmdExit()
		return true
	default:
		fmt.Fprintf(s.out, "%s: command not found\n", verb)
	}
	return false
}

// Close logs the end of the session. The tree is simply dropped; nothing
// is persisted.
func (s *Session) Close() {
	s.log.Info("session end", logging.Fields{"session": s.id})
}
