// Package plumbing holds the small value types shared by every layer of
// the merge engine: the content-addressed Hash identifier and (in the
// filemode subpackage) the file mode bits a tree entry carries.
package plumbing

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/zeebo/blake3"
)

const (
	// HashSize is the width of an object identifier, per the data model:
	// "hash: 20-byte".
	HashSize = 20
	hashHex  = HashSize * 2
)

// Hash is a content-addressed object identifier. The engine never
// interprets the bytes; it only compares them for equality and renders
// them as lowercase hex for user-facing messages.
type Hash [HashSize]byte

// ZeroHash is the all-zero Hash, used to identify an empty/absent tree.
var ZeroHash Hash

// NewHash decodes a hex string into a Hash. Malformed input yields a
// partially (or not at all) populated Hash; callers that need strict
// validation should use NewHashStrict.
func NewHash(s string) Hash {
	var h Hash
	b, _ := hex.DecodeString(s)
	copy(h[:], b)
	return h
}

// NewHashStrict decodes a hex string into a Hash, rejecting anything that
// isn't exactly HashSize bytes of hex.
func NewHashStrict(s string) (Hash, error) {
	if len(s) != hashHex {
		return ZeroHash, fmt.Errorf("plumbing: %q is not a valid object id", s)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return ZeroHash, fmt.Errorf("plumbing: %q is not a valid object id: %w", s, err)
	}
	var h Hash
	copy(h[:], b)
	return h, nil
}

// SumBlake3 hashes content with BLAKE3-256 and truncates the digest to
// HashSize bytes — the spec fixes the wire width of the identifier, not
// the hash function, and the rest of the domain stack is BLAKE3-addressed.
func SumBlake3(content []byte) Hash {
	full := blake3.Sum256(content)
	var h Hash
	copy(h[:], full[:HashSize])
	return h
}

func (h Hash) IsZero() bool {
	return h == ZeroHash
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *Hash) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("plumbing: invalid hash json %q: %w", s, err)
	}
	copy(h[:], decoded)
	return nil
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Hash) UnmarshalText(text []byte) error {
	decoded, err := hex.DecodeString(string(text))
	if err != nil {
		return fmt.Errorf("plumbing: invalid hash text %q: %w", text, err)
	}
	copy(h[:], decoded)
	return nil
}

// HashSlice attaches sort.Interface to []Hash in increasing byte order.
type HashSlice []Hash

func (p HashSlice) Len() int           { return len(p) }
func (p HashSlice) Less(i, j int) bool { return bytes.Compare(p[i][:], p[j][:]) < 0 }
func (p HashSlice) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

// HashesSort sorts a slice of Hashes in increasing order.
func HashesSort(a []Hash) {
	sort.Sort(HashSlice(a))
}
