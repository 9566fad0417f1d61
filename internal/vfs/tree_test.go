package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) *Tree {
	t.Helper()
	return New("alice", "welcome", "os-release contents")
}

func TestNewSeedLayout(t *testing.T) {
	tree := seeded(t)

	alice, err := tree.Resolve([]string{"home", "alice"})
	require.NoError(t, err)

	n, ok := alice.Child("welcome.txt")
	require.True(t, ok)
	f, ok := n.(*File)
	require.True(t, ok, "welcome.txt must be a file")
	assert.Equal(t, "welcome", f.Content)

	etc, err := tree.Resolve([]string{"etc"})
	require.NoError(t, err)
	n, ok = etc.Child("os-release")
	require.True(t, ok)
	f, ok = n.(*File)
	require.True(t, ok)
	assert.Equal(t, "os-release contents", f.Content)
}

func TestResolve(t *testing.T) {
	tree := seeded(t)

	tests := []struct {
		name    string
		path    []string
		wantErr error
	}{
		{"root from empty path", nil, nil},
		{"existing directory", []string{"home", "alice"}, nil},
		{"missing segment", []string{"home", "bob"}, ErrNotFound},
		{"file segment", []string{"etc", "os-release"}, ErrNotFound},
		{"segment below file", []string{"etc", "os-release", "x"}, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, err := tree.Resolve(tt.path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, dir)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, dir)
		})
	}
}

func TestResolveEmptyPathIsRoot(t *testing.T) {
	tree := seeded(t)
	dir, err := tree.Resolve(nil)
	require.NoError(t, err)
	assert.Same(t, tree.Root(), dir)
}

func TestCreate(t *testing.T) {
	dir := NewDir()

	require.NoError(t, dir.Create("docs", NewDir()))
	assert.ErrorIs(t, dir.Create("docs", NewDir()), ErrExists)
	// Conflicts apply across kinds too.
	assert.ErrorIs(t, dir.Create("docs", NewFile("x")), ErrExists)
	assert.Equal(t, 1, dir.Len())
}

func TestPutOverwrites(t *testing.T) {
	dir := NewDir()

	dir.Put("f", NewFile("a"))
	dir.Put("f", NewFile("b"))

	n, ok := dir.Child("f")
	require.True(t, ok)
	f := n.(*File)
	assert.Equal(t, "b", f.Content)
	assert.Equal(t, 1, dir.Len())
}

func TestRemove(t *testing.T) {
	dir := NewDir()
	require.NoError(t, dir.Create("f", NewFile("x")))

	empty := NewDir()
	require.NoError(t, dir.Create("empty", empty))

	full := NewDir()
	require.NoError(t, full.Create("inner", NewFile("y")))
	require.NoError(t, dir.Create("full", full))

	t.Run("file", func(t *testing.T) {
		require.NoError(t, dir.Remove("f"))
		_, ok := dir.Child("f")
		assert.False(t, ok)
	})

	t.Run("empty directory", func(t *testing.T) {
		require.NoError(t, dir.Remove("empty"))
	})

	t.Run("non-empty directory", func(t *testing.T) {
		assert.ErrorIs(t, dir.Remove("full"), ErrNotEmpty)
		_, ok := dir.Child("full")
		assert.True(t, ok, "failed removal must leave the tree unchanged")
	})

	t.Run("missing name", func(t *testing.T) {
		assert.ErrorIs(t, dir.Remove("ghost"), ErrNotFound)
	})
}

func TestListSorted(t *testing.T) {
	dir := NewDir()
	require.NoError(t, dir.Create("zeta", NewFile("")))
	require.NoError(t, dir.Create("alpha", NewDir()))
	require.NoError(t, dir.Create("mid", NewFile("")))

	entries := dir.List()
	require.Len(t, entries, 3)
	assert.Equal(t, []Entry{
		{Name: "alpha", IsDir: true},
		{Name: "mid", IsDir: false},
		{Name: "zeta", IsDir: false},
	}, entries)
}

func TestListEmpty(t *testing.T) {
	assert.Empty(t, NewDir().List())
}
