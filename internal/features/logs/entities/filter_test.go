package logs_entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_FilterEntityIDs_EmptyQuery_ReturnsAllUnchanged(t *testing.T) {
	ids := []string{testCIDAlpha, testCIDBeta, testSpaceDID}

	filtered := FilterEntityIDs(ids, "")

	assert.Equal(t, ids, filtered)
}

func Test_FilterEntityIDs_DistinctiveQuery_ReturnsMatchingOnly(t *testing.T) {
	ids := []string{testCIDBeta, testCIDAlpha, testSpaceDID}

	filtered := FilterEntityIDs(ids, "did:key")

	assert.Equal(t, []string{testSpaceDID}, filtered)
}

func Test_FilterEntityIDs_QueryMatchingOneCID_ExcludesTheOther(t *testing.T) {
	ids := []string{testCIDBeta, testCIDAlpha}

	filtered := FilterEntityIDs(ids, "baedreic")

	assert.Equal(t, []string{testCIDAlpha}, filtered)
}

func Test_FilterEntityIDs_NoMatches_ReturnsEmpty(t *testing.T) {
	ids := []string{testCIDAlpha, testCIDBeta}

	filtered := FilterEntityIDs(ids, "zzzz9999")

	assert.Empty(t, filtered)
}
