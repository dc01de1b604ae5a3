package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRendersIdentityLine(t *testing.T) {
	id := Identity{Name: "Ada Lovelace", Email: "ada@example.com"}
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("UTC+2", 2*3600))
	got := Format(id, at)
	assert.Equal(t, "Ada Lovelace <ada@example.com> 1767315845 +0200", got)
}

func TestFormatNegativeOffset(t *testing.T) {
	id := Identity{Name: "Grace Hopper", Email: "grace@example.com"}
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("UTC-5", -5*3600))
	got := Format(id, at)
	assert.Equal(t, "Grace Hopper <grace@example.com> 1767341045 -0500", got)
}

func TestTrimCrud(t *testing.T) {
	assert.Equal(t, "name", trimCrud("  <name>  "))
	assert.Equal(t, "a.b", trimCrud(".a.b,"))
	assert.Equal(t, "", trimCrud("   "))
}

func TestDefaultIsMemoized(t *testing.T) {
	a := Default()
	b := Default()
	assert.Equal(t, a, b)
}
