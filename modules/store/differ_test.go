package store

import (
	"context"
	"testing"

	"github.com/nu-scm/nu/modules/merge"
	"github.com/nu-scm/nu/modules/plumbing/filemode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExactRenameDifferDetectsRename(t *testing.T) {
	s := NewMemoryStore()
	h, err := s.PutBlob([]byte("unchanged"))
	require.NoError(t, err)

	oldTree := s.PutTree(Tree{"old.txt": {Mode: filemode.Regular, Hash: h}})
	newTree := s.PutTree(Tree{"new.txt": {Mode: filemode.Regular, Hash: h}})

	differ := &ExactRenameDiffer{Store: s}
	pairs, err := differ.DiffTrees(context.Background(), oldTree, newTree, DiffOptions{})
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.True(t, pairs[0].Rename)
	assert.Equal(t, "old.txt", pairs[0].One.Path)
	assert.Equal(t, "new.txt", pairs[0].Two.Path)
}

func TestExactRenameDifferPureInsertAndDelete(t *testing.T) {
	s := NewMemoryStore()
	h1, err := s.PutBlob([]byte("one"))
	require.NoError(t, err)
	h2, err := s.PutBlob([]byte("two"))
	require.NoError(t, err)

	oldTree := s.PutTree(Tree{"gone1.txt": {Mode: filemode.Regular, Hash: h1}, "gone2.txt": {Mode: filemode.Regular, Hash: h1}})
	newTree := s.PutTree(Tree{"new1.txt": {Mode: filemode.Regular, Hash: h2}, "new2.txt": {Mode: filemode.Regular, Hash: h2}})

	differ := &ExactRenameDiffer{Store: s}
	pairs, err := differ.DiffTrees(context.Background(), oldTree, newTree, DiffOptions{})
	require.NoError(t, err)

	// No matching hashes between deleted and inserted sets: every pair must
	// be a pure deletion or pure insertion, and building a ChangeIndex over
	// them must not raise ErrDuplicatePreimage despite two null preimages
	// and two null postimages.
	_, err = merge.NewChangeIndex(pairs)
	require.NoError(t, err)

	for _, p := range pairs {
		assert.False(t, p.Rename)
		assert.True(t, p.One.IsNull() || p.Two.IsNull())
	}
}

func TestExactRenameDifferUnchangedPathOmitted(t *testing.T) {
	s := NewMemoryStore()
	h, err := s.PutBlob([]byte("same"))
	require.NoError(t, err)

	oldTree := s.PutTree(Tree{"a.txt": {Mode: filemode.Regular, Hash: h}})
	newTree := s.PutTree(Tree{"a.txt": {Mode: filemode.Regular, Hash: h}})

	differ := &ExactRenameDiffer{Store: s}
	pairs, err := differ.DiffTrees(context.Background(), oldTree, newTree, DiffOptions{})
	require.NoError(t, err)
	assert.Empty(t, pairs)
}
