package merge

import "github.com/emirpasic/gods/lists/arraylist"

// StructureResult is the structural (path) verdict for a plan entry.
type StructureResult int

const (
	StructOurs StructureResult = iota
	StructTheirs
	StructConflictOurs
	StructConflictTheirs
)

func (s StructureResult) String() string {
	switch s {
	case StructOurs:
		return "ours"
	case StructTheirs:
		return "theirs"
	case StructConflictOurs:
		return "conflict-ours"
	case StructConflictTheirs:
		return "conflict-theirs"
	default:
		return "unknown"
	}
}

// ContentResult is the content (blob) verdict for a plan entry.
type ContentResult int

const (
	ContentOurs ContentResult = iota
	ContentTheirs
	ContentAdd
	ContentDelete
	ContentMerge
	ContentDeleteModify
	ContentModifyDelete
	ContentAddAdd
)

func (c ContentResult) String() string {
	switch c {
	case ContentOurs:
		return "ours"
	case ContentTheirs:
		return "theirs"
	case ContentAdd:
		return "add"
	case ContentDelete:
		return "delete"
	case ContentMerge:
		return "merge"
	case ContentDeleteModify:
		return "delete/modify"
	case ContentModifyDelete:
		return "modify/delete"
	case ContentAddAdd:
		return "add/add"
	default:
		return "unknown"
	}
}

// IsConflict reports whether c is one of the three content-level conflict
// outcomes (delete/modify, modify/delete, add/add).
func (c ContentResult) IsConflict() bool {
	switch c {
	case ContentDeleteModify, ContentModifyDelete, ContentAddAdd:
		return true
	default:
		return false
	}
}

// IsConflict reports whether s is one of the two rename-conflict halves.
func (s StructureResult) IsConflict() bool {
	return s == StructConflictOurs || s == StructConflictTheirs
}

// Entry is a single per-path merge instruction. OurPath and ResultPath
// reference strings owned by the input filespecs (or, for the rename
// conflict's second half, by Theirs); a Plan must not outlive the queues
// its entries were built from.
type Entry struct {
	OurPath    string
	ResultPath string

	Base   Filespec
	Ours   Filespec
	Theirs Filespec

	Structure StructureResult
	Content   ContentResult

	// Resolved content, set by a caller that ran a text-merge driver for
	// a ContentMerge entry. Empty/zero otherwise; the engine itself never
	// performs line-level blob merges.
	ResultData []byte
	ResultSize int64
}

// HasConflict reports whether the entry carries either kind of conflict.
func (e *Entry) HasConflict() bool {
	return e.Structure.IsConflict() || e.Content.IsConflict()
}

// Plan is the append-only, growable sequence of plan entries the
// assembler produces. Its backing store uses amortized doubling (via
// gods/lists/arraylist); callers must refer to entries by index, never by
// address, since addresses are not stable across growth.
type Plan struct {
	list *arraylist.List
}

// NewPlan returns an empty plan ready to be appended to.
func NewPlan() *Plan {
	return &Plan{list: arraylist.New()}
}

func (p *Plan) append(e *Entry) {
	p.list.Add(e)
}

// Len returns the number of entries currently in the plan.
func (p *Plan) Len() int {
	if p == nil {
		return 0
	}
	return p.list.Size()
}

// At returns the entry at index i, or nil if i is out of range.
func (p *Plan) At(i int) *Entry {
	if p == nil {
		return nil
	}
	v, ok := p.list.Get(i)
	if !ok {
		return nil
	}
	return v.(*Entry)
}

// Entries returns the plan's entries in production order: the order of
// their_changes[i].One.Path, with a rename-conflict's
// StructConflictTheirs half always immediately following its
// StructConflictOurs half.
func (p *Plan) Entries() []*Entry {
	if p == nil {
		return nil
	}
	values := p.list.Values()
	entries := make([]*Entry, len(values))
	for i, v := range values {
		entries[i] = v.(*Entry)
	}
	return entries
}

// HasConflicts reports whether any entry in the plan carries a conflict,
// the condition the §6 status code of 1 is defined against.
func (p *Plan) HasConflicts() bool {
	if p == nil {
		return false
	}
	for _, v := range p.list.Values() {
		if v.(*Entry).HasConflict() {
			return true
		}
	}
	return false
}
