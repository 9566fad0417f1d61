package vfs

import "errors"

// Sentinel errors returned by tree operations. Callers distinguish them
// with errors.Is.
var (
	// ErrNotFound reports a missing path segment or child name, or a
	// segment that is a file where a directory was required.
	ErrNotFound = errors.New("no such file or directory")
	// ErrExists reports a create conflict with an existing sibling.
	ErrExists = errors.New("file exists")
	// ErrNotEmpty reports removal of a directory that still has children.
	ErrNotEmpty = errors.New("directory not empty")
)

// Tree is the filesystem of one session. The root is always a directory.
type Tree struct {
	root *Dir
}

// New builds a session tree seeded with the fixed initial layout:
//
//	/home/<user>/welcome.txt
//	/etc/os-release
func New(user, welcome, osRelease string) *Tree {
	userDir := NewDir()
	userDir.Put("welcome.txt", NewFile(welcome))

	homeDir := NewDir()
	homeDir.Put(user, userDir)

	etcDir := NewDir()
	etcDir.Put("os-release", NewFile(osRelease))

	root := NewDir()
	root.Put("home", homeDir)
	root.Put("etc", etcDir)

	return &Tree{root: root}
}

// Root returns the root directory.
func (t *Tree) Root() *Dir {
	return t.root
}

// Resolve walks from the root along path and returns the directory it
// names. The empty path names the root. It fails with ErrNotFound when
// any segment is missing or is a file.
func (t *Tree) Resolve(path []string) (*Dir, error) {
	dir := t.root
	for _, seg := range path {
		child, ok := dir.Child(seg)
		if !ok {
			return nil, ErrNotFound
		}
		next, ok := child.(*Dir)
		if !ok {
			return nil, ErrNotFound
		}
		dir = next
	}
	return dir, nil
}
