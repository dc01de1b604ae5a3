package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/nu-scm/nu/modules/merge"
	"github.com/nu-scm/nu/modules/plumbing"
	"github.com/nu-scm/nu/modules/plumbing/filemode"
	"github.com/nu-scm/nu/modules/store"
	"github.com/nu-scm/nu/pkg/nu"
	"github.com/spf13/cobra"
)

// fixture is the JSON shape merge-tree reads: three flat trees, each a
// map from path to literal blob content (the toy object store hashes the
// content itself; nothing is read from a real repository).
type fixture struct {
	Base   map[string]string `json:"base"`
	Ours   map[string]string `json:"ours"`
	Theirs map[string]string `json:"theirs"`
}

func newMergeTreeCommand() *cobra.Command {
	var configPath string
	var nameOnly bool
	cmd := &cobra.Command{
		Use:   "merge-tree <fixture.json>",
		Short: "Merge three fixture trees and print the resulting plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMergeTree(args[0], configPath, nameOnly)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "optional TOML options file")
	cmd.Flags().BoolVar(&nameOnly, "name-only", false, "only print paths that carry a conflict")
	return cmd
}

func runMergeTree(fixturePath, configPath string, nameOnly bool) error {
	raw, err := os.ReadFile(fixturePath)
	if err != nil {
		return fmt.Errorf("read fixture: %w", err)
	}
	var f fixture
	if err := json.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parse fixture: %w", err)
	}

	opts := nu.DefaultOptions()
	if configPath != "" {
		if opts, err = nu.LoadOptions(configPath); err != nil {
			return err
		}
	}

	memStore := store.NewMemoryStore()
	baseHash, err := buildTree(memStore, f.Base)
	if err != nil {
		return err
	}
	oursHash, err := buildTree(memStore, f.Ours)
	if err != nil {
		return err
	}
	theirsHash, err := buildTree(memStore, f.Theirs)
	if err != nil {
		return err
	}
	differ := &store.ExactRenameDiffer{Store: memStore}

	var sink merge.Sink
	if nameOnly {
		sink = merge.NullSink{}
	} else {
		sink = &merge.Reporter{W: os.Stdout}
	}

	result, err := nu.ReplayTrees(context.Background(), memStore, differ, sink,
		baseHash, oursHash, theirsHash, "ours", "theirs", opts)
	if err != nil {
		return err
	}

	if nameOnly {
		for _, e := range result.Plan.Entries() {
			if e.HasConflict() {
				fmt.Println(e.ResultPath)
			}
		}
	}

	switch result.Status {
	case 0:
		return nil
	case 1:
		os.Exit(1)
	}
	return nil
}

func buildTree(memStore *store.MemoryStore, files map[string]string) (hash plumbing.Hash, err error) {
	tree := store.Tree{}
	for path, content := range files {
		blobHash, err := memStore.PutBlob([]byte(content))
		if err != nil {
			return hash, fmt.Errorf("build tree: %w", err)
		}
		tree[path] = store.TreeEntry{Mode: filemode.Regular, Hash: blobHash}
	}
	return memStore.PutTree(tree), nil
}
