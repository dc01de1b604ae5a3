package merge

import (
	"bytes"
	"testing"

	"github.com/nu-scm/nu/modules/plumbing/filemode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullSinkReportsStatusWithoutOutput(t *testing.T) {
	plan := NewPlan()
	Classify(plan, nil, &Filepair{
		One: Filespec{Path: "a", Mode: filemode.Regular, Hash: hashX},
		Two: Filespec{Path: "a"},
	})
	status, err := (NullSink{}).Realize(plan)
	require.NoError(t, err)
	assert.Equal(t, 0, status)
}

func TestReporterRealizeCleanAndConflict(t *testing.T) {
	var buf bytes.Buffer
	plan := NewPlan()
	Classify(plan, nil, &Filepair{
		One: Filespec{Path: "a", Mode: filemode.Regular, Hash: hashX},
		Two: Filespec{Path: "a", Mode: filemode.Regular, Hash: hashX2},
	})
	r := &Reporter{W: &buf}
	status, err := r.Realize(plan)
	require.NoError(t, err)
	assert.Equal(t, 0, status)
	assert.Contains(t, buf.String(), "take their version")

	buf.Reset()
	plan = NewPlan()
	Classify(plan, &Filepair{
		One: Filespec{Path: "a", Mode: filemode.Regular, Hash: hashX},
		Two: Filespec{Path: "a", Mode: filemode.Regular, Hash: hashX2},
	}, &Filepair{
		One: Filespec{Path: "a", Mode: filemode.Regular, Hash: hashX},
		Two: Filespec{Path: "a"},
	})
	status, err = r.Realize(plan)
	require.NoError(t, err)
	assert.Equal(t, 1, status)
	assert.Contains(t, buf.String(), "modify/delete conflict")
}
