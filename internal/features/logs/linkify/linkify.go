package logs_linkify

import (
	"fmt"
	"strings"

	logs_entities "logweave/internal/features/logs/entities"
)

const (
	kindCID = "cid"
	kindDID = "did"

	clickableSpanFormat = `<span class="clickable-id" data-kind="%s" data-id="%s">%s</span>`
)

// ExtractClickableIDs returns the distinct identifiers found in the text,
// CIDs before DIDs, each family in scan order. Unlike entity extraction no
// doc/charm distinction is made here, the renderer only needs the ids.
func ExtractClickableIDs(text string) []string {
	ids := []string{}
	seen := map[string]bool{}

	for _, id := range logs_entities.CIDPattern.FindAllString(text, -1) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	for _, id := range logs_entities.DIDPattern.FindAllString(text, -1) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	return ids
}

// MakeIDsClickable wraps every literal occurrence of each extracted id in a
// span carrying the id as both data attribute and display text. Identifiers
// are long enough that one id never appears inside the wrapper markup of
// another, so plain substring replacement is safe here.
func MakeIDsClickable(text string) string {
	for _, id := range ExtractClickableIDs(text) {
		kind := kindCID
		if strings.HasPrefix(id, "did:") {
			kind = kindDID
		}

		wrapped := fmt.Sprintf(clickableSpanFormat, kind, id, id)
		text = strings.ReplaceAll(text, id, wrapped)
	}

	return text
}
