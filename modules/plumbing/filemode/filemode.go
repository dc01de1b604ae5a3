// Package filemode defines the small set of file mode bits a tree entry
// can carry. A FileMode of zero is reserved by the data model to mean
// "absent" (see the null convention on merge.Filespec); every
// other value names a regular file, an executable, a directory, a
// symlink or a submodule, optionally OR'd with Fragments for entries
// whose content lives as a chunked blob rather than a single object.
package filemode

import (
	"fmt"
	"os"
)

// FileMode mirrors a restricted subset of Unix permission bits, just
// enough to round-trip through a content-addressed tree entry.
type FileMode uint32

const (
	Empty      FileMode = 0
	Dir        FileMode = 0040000
	Regular    FileMode = 0100644
	Deprecated FileMode = 0100664
	Executable FileMode = 0100755
	Symlink    FileMode = 0120000
	Submodule  FileMode = 0160000

	// Fragments marks a blob whose content is split across multiple
	// chunks in the object store rather than stored as one object; it
	// is OR'd onto one of the modes above.
	Fragments FileMode = 0004000
)

// IsMalformed reports whether m isn't one of the known base modes
// (ignoring the Fragments bit).
func (m FileMode) IsMalformed() bool {
	switch m &^ Fragments {
	case Empty, Dir, Regular, Deprecated, Executable, Symlink, Submodule:
		return false
	default:
		return true
	}
}

// IsFile reports whether m names a regular or executable file (with or
// without Fragments).
func (m FileMode) IsFile() bool {
	switch m &^ Fragments {
	case Regular, Deprecated, Executable:
		return true
	default:
		return false
	}
}

func (m FileMode) String() string {
	return fmt.Sprintf("%06o", uint32(m))
}

// ToOSFileMode converts m to the closest os.FileMode equivalent.
func (m FileMode) ToOSFileMode() (os.FileMode, error) {
	switch m &^ Fragments {
	case Empty:
		return 0, nil
	case Dir:
		return os.ModeDir | 0755, nil
	case Regular, Deprecated:
		return 0644, nil
	case Executable:
		return 0755, nil
	case Symlink:
		return os.ModeSymlink, nil
	case Submodule:
		return os.ModeDir | os.ModeIrregular, nil
	default:
		return 0, fmt.Errorf("filemode: malformed mode %s", m)
	}
}

func (m FileMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *FileMode) UnmarshalText(text []byte) error {
	var v uint32
	if _, err := fmt.Sscanf(string(text), "%o", &v); err != nil {
		return fmt.Errorf("filemode: invalid mode %q: %w", text, err)
	}
	*m = FileMode(v)
	return nil
}
