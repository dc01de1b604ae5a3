// Package store defines the interfaces the merge engine borrows from
// external collaborators — an object store, a rename-detecting tree
// differ, and an index/working-tree writer — and ships in-memory stand-ins
// for the first two (MemoryStore and ExactRenameDiffer) for tests and the
// CLI demonstrator; it ships no index writer. None of
// this package is part of the engine's required surface: spec.md lists
// the object store, the tree-diff producer, and the index/working-tree
// writer as out of scope, specified only through the interfaces the core
// uses.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/nu-scm/nu/modules/merge"
	"github.com/nu-scm/nu/modules/plumbing"
	"github.com/nu-scm/nu/modules/plumbing/filemode"
)

// TreeEntry is one path's mode and content hash inside a Tree.
type TreeEntry struct {
	Mode filemode.FileMode
	Hash plumbing.Hash
}

// Tree is a directory snapshot: a flat map from path to entry. Real
// content-addressed stores keep trees recursive and object-identified;
// this fake keeps them flat in memory since the merge engine only ever
// consumes the fully recursive diff between two of them.
type Tree map[string]TreeEntry

// ObjectStore resolves a content hash to the raw bytes of a tree object.
// A zero hash denotes an empty tree and must be accepted without error.
// An unknown or wrong-typed hash raises plumbing.NoSuchObject.
type ObjectStore interface {
	ReadTree(ctx context.Context, hash plumbing.Hash) (Tree, error)
}

// DiffOptions mirrors the options the tree-diff producer is invoked with:
// rename detection and recursive descent, both expected to be enabled by
// the merge engine's caller.
type DiffOptions struct {
	DetectRenames bool
	Recursive     bool
}

// TreeDiffer emits the rename-detected set of filepairs between two
// trees. A real implementation delivers its queue through a single
// terminal callback and forgets it once the engine takes ownership; this
// interface models the already-materialized result of that handoff.
type TreeDiffer interface {
	DiffTrees(ctx context.Context, old, new plumbing.Hash, opts DiffOptions) ([]*merge.Filepair, error)
}

// IndexWriter realizes a plan against the current index and working
// tree. The engine's current stage only reports plans (see
// merge.Reporter); a conforming writer is a Sink that actually mutates
// on-disk state instead of just printing.
type IndexWriter interface {
	merge.Sink
}

// MemoryStore is an in-memory ObjectStore (ExactRenameDiffer diffs the
// trees it holds), content-addressed
// with BLAKE3 and storing blob payloads flate-compressed — the same
// hash/compression choices the domain's real object store makes, scaled
// down to fit in a map for tests and demonstrations.
type MemoryStore struct {
	mu     sync.Mutex
	trees  map[plumbing.Hash]Tree
	cBlobs map[plumbing.Hash][]byte
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		trees:  make(map[plumbing.Hash]Tree),
		cBlobs: make(map[plumbing.Hash][]byte),
	}
}

// PutBlob hashes and stores a blob's content, returning its hash.
func (s *MemoryStore) PutBlob(content []byte) (plumbing.Hash, error) {
	hash := plumbing.SumBlake3(content)
	compressed, err := deflate(content)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("store: compress blob: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cBlobs[hash] = compressed
	return hash, nil
}

// ReadBlob inflates and returns a previously stored blob's content.
func (s *MemoryStore) ReadBlob(hash plumbing.Hash) ([]byte, error) {
	s.mu.Lock()
	compressed, ok := s.cBlobs[hash]
	s.mu.Unlock()
	if !ok {
		return nil, plumbing.NoSuchObject(hash)
	}
	content, err := inflate(compressed)
	if err != nil {
		return nil, fmt.Errorf("store: inflate blob: %w", err)
	}
	return content, nil
}

// PutTree hashes and stores a tree snapshot, returning its hash. The zero
// tree (no entries) always hashes to plumbing.ZeroHash so that a caller
// representing "no ancestor" never needs a sentinel.
func (s *MemoryStore) PutTree(entries Tree) plumbing.Hash {
	if len(entries) == 0 {
		return plumbing.ZeroHash
	}
	hash := hashTree(entries)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trees[hash] = entries
	return hash
}

// ReadTree implements ObjectStore.
func (s *MemoryStore) ReadTree(_ context.Context, hash plumbing.Hash) (Tree, error) {
	if hash.IsZero() {
		return Tree{}, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	tree, ok := s.trees[hash]
	if !ok {
		return nil, plumbing.NoSuchObject(hash)
	}
	return tree, nil
}

func hashTree(entries Tree) plumbing.Hash {
	paths := make([]string, 0, len(entries))
	for p := range entries {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	var buf []byte
	for _, p := range paths {
		e := entries[p]
		buf = append(buf, fmt.Sprintf("%s %s %s\n", e.Mode, e.Hash, p)...)
	}
	return plumbing.SumBlake3(buf)
}
