package merge

// Classify computes the plan entry (or entries) for one path theirPair
// changed, given the matching ourPair (nil if ours left the ancestor path
// untouched), and appends them to plan.
//
// theirPair must never be nil: the assembler only calls Classify once per
// entry in the their-side change index, and an unreachable case (base,
// ours, and theirs all absent) cannot occur because theirPair is required
// to be a real change.
func Classify(plan *Plan, ourPair, theirPair *Filepair) {
	base := theirPair.One
	ours := theirPair.One
	if ourPair != nil {
		ours = ourPair.Two
	}
	theirs := theirPair.Two

	entry := &Entry{
		OurPath: ours.Path,
		Base:    base,
		Ours:    ours,
		Theirs:  theirs,
	}

	entry.Structure, entry.ResultPath = classifyStructure(ourPair, theirPair, ours, theirs)
	entry.Content = classifyContent(base, ours, theirs)
	plan.append(entry)

	if entry.Structure != StructConflictOurs {
		return
	}

	// They wanted to rename base.Path to theirs.Path while we moved it to
	// ours.Path. entry is our half; build their half now, sharing the
	// same (base, ours, theirs) triple and content verdict, but pinned to
	// theirs.Path on both sides.
	other := &Entry{
		OurPath:    theirs.Path,
		ResultPath: theirs.Path,
		Base:       base,
		Ours:       ours,
		Theirs:     theirs,
		Structure:  StructConflictTheirs,
		Content:    entry.Content,
	}
	plan.append(other)
}

// classifyStructure implements the structural resolution table: which
// path the merged content should occupy, and whether that's a clean pick
// or a rename/rename conflict.
func classifyStructure(ourPair, theirPair *Filepair, ours, theirs Filespec) (StructureResult, string) {
	theirRename := IsRename(theirPair)
	ourRename := IsRename(ourPair)

	switch {
	case !theirRename:
		// Neither side renamed, or only we renamed: keep our path.
		return StructOurs, ours.Path
	case !ourRename:
		// They renamed, we did not (or left the path untouched): take
		// their rename.
		return StructTheirs, theirs.Path
	case ours.Path == theirs.Path:
		// Both renamed to the same destination: no conflict.
		return StructOurs, ours.Path
	default:
		// Renamed to two different destinations: rename/rename conflict.
		return StructConflictOurs, ours.Path
	}
}

// classifyContent implements the content decision tree: how the blob
// content at this path should be resolved, independent of where it ends
// up living.
func classifyContent(base, ours, theirs Filespec) ContentResult {
	// Did they delete it?
	if theirs.IsNull() {
		switch {
		case ours.IsNull():
			// Both deleted; keep it deleted.
			return ContentOurs
		case Same(base, ours):
			// We did not touch it; let their deletion apply.
			return ContentDelete
		default:
			// We modified while they deleted.
			return ContentModifyDelete
		}
	}

	// Did they create it? (the ancestor never had this path)
	if base.IsNull() {
		switch {
		case ours.IsNull():
			// We didn't create it; accept their addition.
			return ContentAdd
		case Same(theirs, ours):
			// Both created identically; keep it.
			return ContentOurs
		default:
			// Created differently: needs a two-way merge.
			return ContentAddAdd
		}
	}

	// The ancestor existed and they modified it.
	switch {
	case Same(theirs, ours):
		// Identical post-state; keep it.
		return ContentOurs
	case ours.IsNull():
		// We deleted while they modified.
		return ContentDeleteModify
	case Same(base, ours):
		// We did not touch it; take their modification.
		return ContentTheirs
	default:
		// Both sides changed the content: requires a three-way blob
		// merge, performed by an external collaborator.
		return ContentMerge
	}
}
