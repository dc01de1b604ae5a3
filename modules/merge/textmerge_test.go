package merge

import (
	"bytes"
	"testing"

	"github.com/nu-scm/nu/modules/plumbing/filemode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type concatDriver struct{}

func (concatDriver) Merge(base, ours, theirs Filespec) ([]byte, bool, error) {
	return []byte(ours.Hash.String() + "|" + theirs.Hash.String()), true, nil
}

func TestResolveMergesFillsResultData(t *testing.T) {
	ourPair := &Filepair{
		One: Filespec{Path: "a", Mode: filemode.Regular, Hash: hashX},
		Two: Filespec{Path: "a", Mode: filemode.Regular, Hash: hashX2},
	}
	theirPair := &Filepair{
		One: Filespec{Path: "a", Mode: filemode.Regular, Hash: hashX},
		Two: Filespec{Path: "a", Mode: filemode.Regular, Hash: hashP},
	}
	plan := NewPlan()
	Classify(plan, ourPair, theirPair)
	require.Equal(t, 1, plan.Len())
	require.Equal(t, ContentMerge, plan.At(0).Content)

	require.NoError(t, ResolveMerges(plan, concatDriver{}))

	e := plan.At(0)
	assert.True(t, bytes.Contains(e.ResultData, []byte(hashX2.String())))
	assert.True(t, bytes.Contains(e.ResultData, []byte(hashP.String())))
	assert.Equal(t, int64(len(e.ResultData)), e.ResultSize)
}

func TestResolveMergesSkipsNonMergeEntries(t *testing.T) {
	theirPair := &Filepair{
		One: Filespec{Path: "a", Mode: filemode.Regular, Hash: hashX},
		Two: Filespec{Path: "a", Mode: filemode.Regular, Hash: hashX2},
	}
	plan := NewPlan()
	Classify(plan, nil, theirPair)
	require.NoError(t, ResolveMerges(plan, concatDriver{}))
	assert.Nil(t, plan.At(0).ResultData)
}
