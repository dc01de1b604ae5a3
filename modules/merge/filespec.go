// Package merge implements the Nu structural three-way tree merge engine:
// given a filepair change list for "ours" and one for "theirs" (each diffed
// against a common ancestor "base"), it classifies every path theirs
// touched and assembles a plan of per-path instructions that would turn
// ours into the merge result.
//
// The engine borrows its filespecs and filepairs from the caller's diff
// results and never performs I/O itself; see the store subpackage for the
// collaborator interfaces (object store, tree differ, index writer) that
// produce those inputs and consume the resulting Plan.
package merge

import (
	"github.com/nu-scm/nu/modules/plumbing"
	"github.com/nu-scm/nu/modules/plumbing/filemode"
)

// Filespec describes a path at one side of a change: its path, its file
// mode, and the content hash it names. A Filespec with Mode == 0 is null:
// it denotes absence at that side. A null Filespec may still carry a Path
// (and even a Hash, for identification by the diff producer), but callers
// must only trust Hash/Mode together when Mode != 0.
type Filespec struct {
	Path string
	Mode filemode.FileMode
	Hash plumbing.Hash
}

// IsNull reports whether the filespec denotes absence.
func (f Filespec) IsNull() bool {
	return f.Mode == 0
}

// Same reports whether a and b refer to identical content: both sides
// must be non-null and their hashes must match. Mode differences alone
// never defeat sameness — this is the content-only equivalence the
// classifier uses everywhere it asks "did nothing change?". A pure
// permission flip on either side therefore still reads as "same".
func Same(a, b Filespec) bool {
	return a.Mode != 0 && b.Mode != 0 && a.Hash == b.Hash
}
