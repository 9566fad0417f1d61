package shell

import "github.com/KianTset/pyos/internal/vfs"

// homePath returns the session's fixed home directory path.
func (s *Session) homePath() []string {
	return []string{"home", s.user}
}

// resolveChange translates a cd argument into the new current path.
//
//   - no argument: the fixed home path, regardless of location
//   - "/": the root
//   - "..": one segment up; at the root this is a no-op, never an error
//   - anything else: an immediate child of the current directory
//
// Multi-segment arguments like "a/b" are not traversed: they are looked
// up verbatim as a child name and therefore never match. That limitation
// is shared with mkdir, cat, echo and rm, and is kept on purpose.
//
// The returned slice is always freshly allocated; vfs.ErrNotFound is
// returned when the target is missing or is a file, and the caller must
// leave the current path untouched in that case.
func (s *Session) resolveChange(arg string) ([]string, error) {
	switch arg {
	case "":
		return s.homePath(), nil
	case "/":
		return []string{}, nil
	case "..":
		if len(s.path) == 0 {
			return []string{}, nil
		}
		return append([]string{}, s.path[:len(s.path)-1]...), nil
	}

	child, ok := s.currentDir().Child(arg)
	if !ok {
		return nil, vfs.ErrNotFound
	}
	if _, isDir := child.(*vfs.Dir); !isDir {
		return nil, vfs.ErrNotFound
	}
	return append(append([]string{}, s.path...), arg), nil
}
