package shell

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KianTset/pyos/internal/constants"
	"github.com/KianTset/pyos/internal/display"
	"github.com/KianTset/pyos/internal/vfs"
)

const helpText = `PyOS Command List:
  help          - Shows this help message.
  ls [path]     - Lists contents of a directory.
  cd <path>     - Changes the current directory. Use '..' for parent, '/' for root.
  mkdir <name>  - Creates a new directory.
  cat <file>    - Displays the content of a file.
  echo <text> > <file> - Writes text to a file, creating it if necessary.
  rm <name>     - Removes a file or an empty directory.
  pwd           - Prints the current working directory path.
  date          - Displays the current date and time.
  exit          - Exits the PyOS session.`

const helpMarkdown = `# PyOS Command List

| Command | Description |
|---|---|
| ` + "`help`" + ` | Shows this help message. |
| ` + "`ls [path]`" + ` | Lists contents of a directory. |
| ` + "`cd <path>`" + ` | Changes the current directory. Use ` + "`..`" + ` for parent, ` + "`/`" + ` for root. |
| ` + "`mkdir <name>`" + ` | Creates a new directory. |
| ` + "`cat <file>`" + ` | Displays the content of a file. |
| ` + "`echo <text> > <file>`" + ` | Writes text to a file, creating it if necessary. |
| ` + "`rm <name>`" + ` | Removes a file or an empty directory. |
| ` + "`pwd`" + ` | Prints the current working directory path. |
| ` + "`date`" + ` | Displays the current date and time. |
| ` + "`exit`" + ` | Exits the PyOS session. |`

// cmdHelp prints the command list, rendered as markdown when the session
// was started in render mode.
func (s *Session) cmdHelp() {
	if s.render {
		if rendered, err := display.Markdown(helpMarkdown); err == nil {
			fmt.Fprint(s.out, rendered)
			return
		}
		// Renderer failure falls back to the plain listing.
	}
	fmt.Fprintln(s.out, helpText)
}

// cmdLs lists the current directory: sorted names, directories suffixed
// with a slash, two-space separated on one line. A path argument is
// accepted but ignored; the listing always targets the current directory.
func (s *Session) cmdLs() {
	entries := s.currentDir().List()
	if len(entries) == 0 {
		return
	}
	for _, e := range entries {
		name := e.Name
		if e.IsDir {
			name += "/"
		}
		fmt.Fprintf(s.out, "%s  ", name)
	}
	fmt.Fprintln(s.out)
}

// cmdCd updates the current path per the resolver. On failure the path
// is left unchanged.
func (s *Session) cmdCd(args []string) {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	path, err := s.resolveChange(arg)
	if err != nil {
		fmt.Fprintf(s.out, "cd: no such directory: %s\n", arg)
		return
	}
	s.path = path
}

// cmdMkdir creates an empty directory in the current directory.
func (s *Session) cmdMkdir(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "mkdir: missing operand")
		return
	}
	name := args[0]
	if err := s.currentDir().Create(name, vfs.NewDir()); err != nil {
		fmt.Fprintf(s.out, "mkdir: cannot create directory '%s': File exists\n", name)
	}
}

// cmdCat prints the content of a file in the current directory.
func (s *Session) cmdCat(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "cat: missing operand")
		return
	}
	name := args[0]
	n, ok := s.currentDir().Child(name)
	if !ok {
		fmt.Fprintf(s.out, "cat: %s: No such file or it is a directory\n", name)
		return
	}
	f, ok := n.(*vfs.File)
	if !ok {
		fmt.Fprintf(s.out, "cat: %s: No such file or it is a directory\n", name)
		return
	}
	fmt.Fprintln(s.out, f.Content)
}

// cmdEcho writes text to a file in the current directory, creating or
// overwriting it. The token stream must contain a literal ">" followed
// by a filename; everything before the ">" is joined with single spaces.
func (s *Session) cmdEcho(args []string) {
	redirect := -1
	for i, a := range args {
		if a == ">" {
			redirect = i
			break
		}
	}
	if redirect < 0 || redirect+1 >= len(args) {
		fmt.Fprintln(s.out, "Usage: echo <text> > <filename>")
		return
	}
	name := args[redirect+1]
	content := strings.Join(args[:redirect], " ")
	s.currentDir().Put(name, vfs.NewFile(content))
}

// cmdRm removes a file or an empty directory from the current directory.
func (s *Session) cmdRm(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "rm: missing operand")
		return
	}
	name := args[0]
	switch err := s.currentDir().Remove(name); {
	case err == nil:
	case errors.Is(err, vfs.ErrNotEmpty):
		fmt.Fprintf(s.out, "rm: failed to remove '%s': Directory not empty\n", name)
	default:
		fmt.Fprintf(s.out, "rm: cannot remove '%s': No such file or directory\n", name)
	}
}

// cmdPwd prints the absolute current working directory path.
func (s *Session) cmdPwd() {
	fmt.Fprintln(s.out, s.PathString())
}

// cmdDate prints the current local date and time.
func (s *Session) cmdDate() {
	fmt.Fprintln(s.out, time.Now().Format(constants.DateFormat))
}

// cmdExit prints the shutdown notice. The caller stops the loop.
func (s *Session) cmdExit() {
	fmt.Fprintf(s.out, "Shutting down %s...\n", constants.AppName)
}
