package nu

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// Options configures a ReplayTrees call. It is constructible by hand for
// library callers, or loadable from a TOML file for the CLI demonstrator
// — following the teacher's preference for TOML over YAML/JSON for
// static configuration.
type Options struct {
	// DetectRenames is passed through to the tree-diff collaborator;
	// the engine itself never computes renames, it only reads the
	// Rename flag a diff producer set.
	DetectRenames bool `toml:"detect_renames"`
	// RenameLimit and RenameScore are knobs for a tree-diff
	// collaborator's similarity detector; this engine stores but does
	// not interpret them, and ReplayTrees does not pass them on
	// (store.DiffOptions has no such fields).
	RenameLimit int `toml:"rename_limit"`
	RenameScore int `toml:"rename_score"`
	// Textconv is a setting for a text-merge collaborator handling
	// ContentMerge entries; nothing in this module reads it, and this
	// engine never performs textual merges itself (see Non-goals).
	Textconv bool `toml:"textconv"`
	// MergeSizeLimit bounds how large a blob a text-merge collaborator
	// should attempt to merge before falling back to a conflict;
	// informational here: neither ReplayTrees nor ResolveMerges reads or
	// enforces it.
	MergeSizeLimit int64 `toml:"merge_size_limit"`

	Verbose bool `toml:"-"`
	Logger  logrus.FieldLogger `toml:"-"`
}

// DefaultOptions returns the engine's baseline configuration: rename
// detection on, a 50MiB merge size limit (matching the domain's object
// store convention for what's safe to hold in memory for a blob merge).
func DefaultOptions() *Options {
	return &Options{
		DetectRenames:  true,
		MergeSizeLimit: 50 * 1024 * 1024,
	}
}

// LoadOptions reads a TOML configuration file, overlaying it onto
// DefaultOptions.
func LoadOptions(path string) (*Options, error) {
	opts := DefaultOptions()
	if _, err := toml.DecodeFile(path, opts); err != nil {
		return nil, fmt.Errorf("nu: load config %s: %w", path, err)
	}
	return opts, nil
}
