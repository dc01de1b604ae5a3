package merge

import (
	"fmt"
	"io"
)

// Status returns the §6 status code for a completed plan: 0 if no entry
// carries a conflict (structural or content), 1 otherwise. It never
// returns a negative value — negative status is reserved for setup
// failures that occur before a plan exists at all (see ReplayTrees).
func Status(plan *Plan) int {
	if plan.HasConflicts() {
		return 1
	}
	return 0
}

// Sink is an external consumer that realizes a plan: it either writes the
// instructions out to an index/working tree, or simply reports them to a
// user. Either way it returns the plan's §6 status code.
type Sink interface {
	Realize(plan *Plan) (status int, err error)
}

// NullSink computes the status of a plan without producing any output.
// Useful for callers that only want the merged status/conflict list and
// will walk plan.Entries() themselves.
type NullSink struct{}

func (NullSink) Realize(plan *Plan) (int, error) {
	return Status(plan), nil
}

// Reporter formats each plan entry the way the source repository's own
// (incomplete) reporter sink did — one line per entry, naming a rename if
// the path changed, then the structural conflict half if any, then the
// content verdict. Unlike that original sink, Realize returns the §6
// status code instead of leaving it at -1.
type Reporter struct {
	W io.Writer
}

func (r *Reporter) Realize(plan *Plan) (int, error) {
	for _, e := range plan.Entries() {
		if err := r.reportEntry(e); err != nil {
			return -1, err
		}
	}
	return Status(plan), nil
}

func (r *Reporter) reportEntry(e *Entry) error {
	if _, err := fmt.Fprintf(r.W, "%s: ", e.OurPath); err != nil {
		return err
	}
	if e.OurPath != e.ResultPath {
		if _, err := fmt.Fprintf(r.W, "rename to %s ", e.ResultPath); err != nil {
			return err
		}
	}
	switch e.Structure {
	case StructConflictOurs:
		if _, err := fmt.Fprintf(r.W, "rename conflict: ours half: %s: ", e.ResultPath); err != nil {
			return err
		}
	case StructConflictTheirs:
		if _, err := fmt.Fprintf(r.W, "rename conflict: theirs half: %s: ", e.ResultPath); err != nil {
			return err
		}
	}
	label, ok := contentMessages[e.Content]
	if !ok {
		label = "huh?"
	}
	_, err := fmt.Fprintf(r.W, "%s\n", label)
	return err
}

var contentMessages = map[ContentResult]string{
	ContentOurs:         "take our version",
	ContentTheirs:       "take their version",
	ContentAdd:          "take their addition",
	ContentDelete:       "take their deletion",
	ContentMerge:        "merge with theirs",
	ContentDeleteModify: "delete/modify conflict",
	ContentModifyDelete: "modify/delete conflict",
	ContentAddAdd:       "add/add conflict",
}
