package logs_linkify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testCID = "baedreic7dvjvssmh6b62azkrx6o4wmymbbwffgx3brpte2ykm3y6ukepzm"
	testDID = "did:key:z6MkhaXgBZDvotDkL5257faiztiGiC2QtKLGpbnnEGta2doK"
)

func Test_ExtractClickableIDs_DIDAppearsFirstInText_CIDsStillListedFirst(t *testing.T) {
	ids := ExtractClickableIDs("space " + testDID + " holds " + testCID)

	assert.Equal(t, []string{testCID, testDID}, ids)
}

func Test_ExtractClickableIDs_RepeatedID_Deduplicated(t *testing.T) {
	ids := ExtractClickableIDs(testCID + " and again " + testCID)

	assert.Equal(t, []string{testCID}, ids)
}

func Test_ExtractClickableIDs_NoIDs_ReturnsEmpty(t *testing.T) {
	ids := ExtractClickableIDs("nothing clickable here")

	assert.Empty(t, ids)
}

func Test_MakeIDsClickable_CID_WrappedWithKindAndDataID(t *testing.T) {
	result := MakeIDsClickable("stored " + testCID + " ok")

	expected := `stored <span class="clickable-id" data-kind="cid" data-id="` +
		testCID + `">` + testCID + `</span> ok`
	assert.Equal(t, expected, result)
}

func Test_MakeIDsClickable_DID_WrappedWithDidKind(t *testing.T) {
	result := MakeIDsClickable("in " + testDID)

	assert.Contains(t, result, `data-kind="did"`)
	assert.Contains(t, result, `data-id="`+testDID+`"`)
	assert.Contains(t, result, `>`+testDID+`</span>`)
}

func Test_MakeIDsClickable_RepeatedID_EveryOccurrenceWrapped(t *testing.T) {
	result := MakeIDsClickable(testCID + " replicated to " + testCID)

	assert.Equal(t, 2, strings.Count(result, `<span class="clickable-id"`))
}

func Test_MakeIDsClickable_NoIDs_TextUnchanged(t *testing.T) {
	text := "no identifiers in sight"

	assert.Equal(t, text, MakeIDsClickable(text))
}
