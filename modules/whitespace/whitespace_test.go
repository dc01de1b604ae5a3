package whitespace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTrimsTrailingSpaceAndBlankRuns(t *testing.T) {
	in := "summary line   \n\n\n\nbody line one\nbody line two   \n\n\n"
	got := Clean([]byte(in), 0)
	assert.Equal(t, "summary line\n\nbody line one\nbody line two\n", string(got))
}

func TestCleanDropsLeadingAndTrailingBlankLines(t *testing.T) {
	in := "\n\n  \nhello\n\n\n"
	got := Clean([]byte(in), 0)
	assert.Equal(t, "hello\n", string(got))
}

func TestCleanStripComments(t *testing.T) {
	in := "keep this\n# drop this\nkeep too\n"
	got := Clean([]byte(in), StripComments)
	assert.Equal(t, "keep this\nkeep too\n", string(got))
}

func TestCleanWithoutStripCommentsKeepsHashLines(t *testing.T) {
	in := "keep this\n# also kept\n"
	got := Clean([]byte(in), 0)
	assert.Equal(t, "keep this\n# also kept\n", string(got))
}
