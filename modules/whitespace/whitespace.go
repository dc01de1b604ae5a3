// Package whitespace canonicalizes commit-message-shaped text: it trims
// trailing whitespace from every line, collapses runs of blank lines
// between paragraphs to one, drops leading/trailing blank lines, and
// ensures the result ends with a single newline. It is unrelated to the
// merge engine; spec.md lists it as a peripheral utility (a
// "stripspace"-style canonicalizer) carried by the same repository.
package whitespace

import (
	"bytes"
)

// StripComments, when passed to Clean, drops every line beginning with
// '#' before the rest of the canonicalization runs.
const StripComments = 1 << 0

// Clean canonicalizes text in the manner described above. The input is
// split on '\n'; a final line without a trailing newline is treated like
// any other line.
func Clean(text []byte, flags int) []byte {
	lines := splitLines(text)
	var out [][]byte
	empties := 0
	for _, line := range lines {
		if flags&StripComments != 0 && len(line) > 0 && line[0] == '#' {
			continue
		}
		trimmed := trimTrailingSpace(line)
		if len(trimmed) == 0 {
			empties++
			continue
		}
		if empties > 0 && len(out) > 0 {
			out = append(out, nil)
		}
		empties = 0
		out = append(out, trimmed)
	}
	var buf bytes.Buffer
	for _, line := range out {
		buf.Write(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func splitLines(text []byte) [][]byte {
	var lines [][]byte
	for len(text) > 0 {
		i := bytes.IndexByte(text, '\n')
		if i < 0 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:i])
		text = text[i+1:]
	}
	return lines
}

func trimTrailingSpace(line []byte) []byte {
	return bytes.TrimRight(line, " \t\n\v\f\r")
}
