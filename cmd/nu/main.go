// Command nu is a thin demonstrator CLI around the merge engine. It is
// not the repository's real CLI driver — spec.md explicitly places "the
// CLI driver that selects which two trees to merge" out of scope — it
// exists only to exercise replay_trees end to end against a small JSON
// fixture of three trees.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "nu",
		Short:         "Nu structural three-way tree merge engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMergeTreeCommand())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "nu: %v\n", err)
		os.Exit(2)
	}
}
