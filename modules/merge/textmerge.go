package merge

import "fmt"

// TextMergeDriver performs a three-way textual blob merge for a single
// ContentMerge entry. The engine never invokes this itself — resolving the
// content of a ContentMerge entry is explicitly out of scope for the
// classifier/assembler; a caller that wants automatic three-way text
// merging supplies a driver and runs ResolveMerges over the finished plan.
type TextMergeDriver interface {
	// Merge returns the merged blob for one ContentMerge entry's triple.
	// clean reports whether the merge produced no inline conflict markers;
	// a caller may choose to still surface an unclean merge as a conflict
	// even though the classifier did not mark it as one.
	Merge(base, ours, theirs Filespec) (data []byte, clean bool, err error)
}

// ResolveMerges runs driver over every ContentMerge entry in plan, filling
// in ResultData/ResultSize. Entries the classifier resolved without needing
// a textual merge are left untouched. It stops at the first error.
func ResolveMerges(plan *Plan, driver TextMergeDriver) error {
	for _, e := range plan.Entries() {
		if e.Content != ContentMerge {
			continue
		}
		data, _, err := driver.Merge(e.Base, e.Ours, e.Theirs)
		if err != nil {
			return fmt.Errorf("merge: resolve %s: %w", e.ResultPath, err)
		}
		e.ResultData = data
		e.ResultSize = int64(len(data))
	}
	return nil
}
