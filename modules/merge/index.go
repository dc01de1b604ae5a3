package merge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/utils"
)

// ErrDuplicatePreimage is returned when a diff queue handed to NewChangeIndex
// names the same preimage path more than once. The original design treats
// this as caller undefined behavior (the diff producer is required to
// deduplicate); this implementation refines that into a reported error
// instead of silently picking an arbitrary match.
type ErrDuplicatePreimage struct {
	Path string
}

func (e *ErrDuplicatePreimage) Error() string {
	return fmt.Sprintf("merge: duplicate preimage path in change queue: %q", e.Path)
}

// ChangeIndex is a finite ordered sequence of filepairs, sorted by
// One.Path, searchable by that path with a binary search. Its backing
// store grows with amortized doubling (via gods/lists/arraylist); callers
// must hold indices, not pointers, across any mutation — though in
// practice a ChangeIndex is built once from a fully materialized queue and
// never appended to afterward.
type ChangeIndex struct {
	list *arraylist.List
}

func pairComparator(a, b interface{}) int {
	return strings.Compare(a.(*Filepair).One.Path, b.(*Filepair).One.Path)
}

// NewChangeIndex sorts the given filepairs by preimage path and builds a
// searchable index over them. It returns ErrDuplicatePreimage if two
// filepairs share a preimage path, per the uniqueness invariant on the
// change-pair index.
func NewChangeIndex(pairs []*Filepair) (*ChangeIndex, error) {
	values := make([]interface{}, len(pairs))
	for i, p := range pairs {
		values[i] = p
	}
	list := arraylist.New(values...)
	list.Sort(utils.Comparator(pairComparator))

	for i := 1; i < list.Size(); i++ {
		prev, _ := list.Get(i - 1)
		cur, _ := list.Get(i)
		if prev.(*Filepair).One.Path == cur.(*Filepair).One.Path {
			return nil, &ErrDuplicatePreimage{Path: cur.(*Filepair).One.Path}
		}
	}
	return &ChangeIndex{list: list}, nil
}

// Len returns the number of filepairs in the index.
func (idx *ChangeIndex) Len() int {
	if idx == nil {
		return 0
	}
	return idx.list.Size()
}

// Find looks up the filepair whose preimage path equals path. It returns
// nil if no filepair changed that path — callers must treat nil as a
// no-op filepair, meaning that side left the ancestor path untouched.
func (idx *ChangeIndex) Find(path string) *Filepair {
	if idx == nil {
		return nil
	}
	n := idx.list.Size()
	i := sort.Search(n, func(i int) bool {
		v, _ := idx.list.Get(i)
		return v.(*Filepair).One.Path >= path
	})
	if i >= n {
		return nil
	}
	v, _ := idx.list.Get(i)
	pair := v.(*Filepair)
	if pair.One.Path != path {
		return nil
	}
	return pair
}

// All returns the filepairs in sorted preimage-path order.
func (idx *ChangeIndex) All() []*Filepair {
	if idx == nil {
		return nil
	}
	values := idx.list.Values()
	pairs := make([]*Filepair, len(values))
	for i, v := range values {
		pairs[i] = v.(*Filepair)
	}
	return pairs
}
