// Package vfs implements the in-memory virtual filesystem backing a PyOS
// session.
//
// The filesystem is a strict tree of nodes. A node is either a directory
// (a name-keyed map of children) or a file (a text content string). Nodes
// hold no parent pointers; a node's parent is only reachable by walking
// from the root, so the structure cannot form cycles.
//
// The tree is created once per session with a fixed seed layout and is
// never persisted.
package vfs

import "sort"

// Node is a single entry in the filesystem tree. Exactly two
// implementations exist: *Dir and *File.
type Node interface {
	// node restricts implementations to this package, keeping the sum
	// type closed so type switches stay exhaustive.
	node()
}

// Dir is a directory node holding uniquely named children.
type Dir struct {
	children map[string]Node
}

// File is a file node holding text content, possibly empty.
type File struct {
	Content string
}

func (*Dir) node()  {}
func (*File) node() {}

// NewDir returns an empty directory.
func NewDir() *Dir {
	return &Dir{children: make(map[string]Node)}
}

// NewFile returns a file with the given content.
func NewFile(content string) *File {
	return &File{Content: content}
}

// Entry describes one child in a directory listing.
type Entry struct {
	Name  string
	IsDir bool
}

// Child returns the immediate child with the given name, if any.
func (d *Dir) Child(name string) (Node, bool) {
	n, ok := d.children[name]
	return n, ok
}

// Create adds a child under name. It fails with ErrExists when the name
// is already taken by a child of either kind; it never overwrites.
func (d *Dir) Create(name string, n Node) error {
	if _, ok := d.children[name]; ok {
		return ErrExists
	}
	d.children[name] = n
	return nil
}

// Put adds or replaces the child under name. This is the write path of
// echo's redirection, which overwrites by design.
func (d *Dir) Put(name string, n Node) {
	d.children[name] = n
}

// Remove deletes the child with the given name. It fails with
// ErrNotFound when the name is absent and with ErrNotEmpty when the
// target is a directory that still has children.
func (d *Dir) Remove(name string) error {
	n, ok := d.children[name]
	if !ok {
		return ErrNotFound
	}
	if dir, ok := n.(*Dir); ok && len(dir.children) > 0 {
		return ErrNotEmpty
	}
	delete(d.children, name)
	return nil
}

// List returns the directory's entries sorted ascending by name.
func (d *Dir) List() []Entry {
	entries := make([]Entry, 0, len(d.children))
	for name, n := range d.children {
		_, isDir := n.(*Dir)
		entries = append(entries, Entry{Name: name, IsDir: isDir})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// Len returns the number of children.
func (d *Dir) Len() int {
	return len(d.children)
}
