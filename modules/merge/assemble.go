package merge

// Assemble walks theirChanges in preimage-path order, resolves each entry
// against ourChanges by preimage path, and classifies the result into
// plan. It deliberately walks theirs, not the union of the two sides:
// paths theirs left untouched need no action against ours by definition,
// and paths ours touched but theirs did not are implicitly kept as-is.
func Assemble(plan *Plan, ourChanges, theirChanges *ChangeIndex) {
	for _, theirPair := range theirChanges.All() {
		ourPair := ourChanges.Find(theirPair.One.Path)
		Classify(plan, ourPair, theirPair)
	}
}
