package logs_entities

type EntityType string

const (
	EntityTypeDocID   EntityType = "doc_id"
	EntityTypeCharmID EntityType = "charm_id"
	EntityTypeSpaceID EntityType = "space_id"
)

// Entities groups the distinct identifiers found in one text by kind, each
// list in first-seen order.
type Entities struct {
	DocIDs   []string `json:"docIds"`
	CharmIDs []string `json:"charmIds"`
	SpaceIDs []string `json:"spaceIds"`
}

// ClassifierFunc decides the kind of a CID match from its surrounding text.
// The classification is contextual, not a structural property of the id, so
// the policy stays swappable.
type ClassifierFunc func(text string, matchStart int) EntityType

const charmContextMarker = "charm "

// ClassifyByCharmProximity is the default CID classifier: a match directly
// preceded by the literal "charm " is a charm id, anything else a doc id.
func ClassifyByCharmProximity(text string, matchStart int) EntityType {
	if matchStart >= len(charmContextMarker) &&
		text[matchStart-len(charmContextMarker):matchStart] == charmContextMarker {
		return EntityTypeCharmID
	}

	return EntityTypeDocID
}

func ExtractEntities(text string) Entities {
	return ExtractEntitiesWithClassifier(text, ClassifyByCharmProximity)
}

// ExtractEntitiesWithClassifier scans the text for both identifier shapes,
// classifies CID matches through the given policy and deduplicates within
// each category.
func ExtractEntitiesWithClassifier(text string, classify ClassifierFunc) Entities {
	entities := Entities{
		DocIDs:   []string{},
		CharmIDs: []string{},
		SpaceIDs: []string{},
	}

	seenDocs := map[string]bool{}
	seenCharms := map[string]bool{}
	for _, match := range CIDPattern.FindAllStringIndex(text, -1) {
		id := text[match[0]:match[1]]

		if classify(text, match[0]) == EntityTypeCharmID {
			if !seenCharms[id] {
				seenCharms[id] = true
				entities.CharmIDs = append(entities.CharmIDs, id)
			}
			continue
		}

		if !seenDocs[id] {
			seenDocs[id] = true
			entities.DocIDs = append(entities.DocIDs, id)
		}
	}

	seenSpaces := map[string]bool{}
	for _, id := range DIDPattern.FindAllString(text, -1) {
		if !seenSpaces[id] {
			seenSpaces[id] = true
			entities.SpaceIDs = append(entities.SpaceIDs, id)
		}
	}

	return entities
}
