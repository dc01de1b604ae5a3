// Package nu wires the merge engine's library surface (modules/merge)
// together with its external collaborators (modules/store) into the
// replay_trees operation described by spec.md §6: given a base tree and
// two sides, compute a merge plan and a status.
package nu

import (
	"context"
	"errors"
	"fmt"

	"github.com/nu-scm/nu/modules/merge"
	"github.com/nu-scm/nu/modules/plumbing"
	"github.com/nu-scm/nu/modules/store"
	"github.com/nu-scm/nu/modules/trace"
)

// Error taxonomy, per spec.md §7. These are sentinels: wrap with %w and
// test with errors.Is.
var (
	// ErrResolution: a named tree identifier does not resolve to a tree
	// object.
	ErrResolution = errors.New("nu: tree identifier does not resolve to a tree object")
	// ErrStore: an object read failed, or returned an object of the
	// wrong type.
	ErrStore = errors.New("nu: object store read failed")
	// ErrIndex: the current index could not be loaded, or the sink
	// could not realize the plan against it.
	ErrIndex = errors.New("nu: index could not be loaded")
)

// Result is the outcome of a successful ReplayTrees call: the assembled
// plan, plus the §6 status code the sink reported for it.
type Result struct {
	Plan   *merge.Plan
	Status int
}

// ReplayTrees computes the plan that transforms ours into a tree
// reflecting theirs's changes relative to base, classifying conflicts
// along the way, and hands the plan to sink to realize. It returns a
// negative status only via error: a failed tree resolution or store read
// is surfaced as an error wrapping ErrResolution/ErrStore/ErrIndex,
// matching §7's "all fatal errors short-circuit with a negative return;
// no partial plan is exposed."
//
// oursLabel and theirsLabel are purely informational; they appear only in
// the verbose debug trace. The sink does not receive them, so sink output
// (including merge.Reporter's) carries no labels.
func ReplayTrees(
	ctx context.Context,
	objects store.ObjectStore,
	differ store.TreeDiffer,
	sink merge.Sink,
	base, ours, theirs plumbing.Hash,
	oursLabel, theirsLabel string,
	opts *Options,
) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	if _, err := objects.ReadTree(ctx, base); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrResolution, trace.Errorf("base tree %s: %v", base, err))
	}
	if _, err := objects.ReadTree(ctx, ours); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrResolution, trace.Errorf("our tree %s: %v", ours, err))
	}
	if _, err := objects.ReadTree(ctx, theirs); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrResolution, trace.Errorf("their tree %s: %v", theirs, err))
	}

	diffOpts := store.DiffOptions{DetectRenames: opts.DetectRenames, Recursive: true}

	ourPairs, err := differ.DiffTrees(ctx, base, ours, diffOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStore, trace.Errorf("diff base..ours: %v", err))
	}
	theirPairs, err := differ.DiffTrees(ctx, base, theirs, diffOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStore, trace.Errorf("diff base..theirs: %v", err))
	}

	ourIndex, err := merge.NewChangeIndex(ourPairs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrIndex, trace.Errorf("ours change index: %v", err))
	}
	theirIndex, err := merge.NewChangeIndex(theirPairs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrIndex, trace.Errorf("theirs change index: %v", err))
	}

	plan := merge.NewPlan()
	merge.Assemble(plan, ourIndex, theirIndex)

	dbg := trace.NewDebuger(opts.Verbose, opts.Logger)
	dbg.DbgPrint("nu: assembled %d plan entries for base=%s ours=%s(%s) theirs=%s(%s)",
		plan.Len(), base, ours, oursLabel, theirs, theirsLabel)

	status, err := sink.Realize(plan)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrIndex, trace.Errorf("realize plan: %v", err))
	}
	return &Result{Plan: plan, Status: status}, nil
}
