package logs_entities

import "regexp"

// The two identifier families are recognized by shape only, never verified
// cryptographically. The linkifier shares these patterns.
var (
	// CIDPattern: the "ba" prefix followed by a long lowercase
	// alphanumeric run, at least 50 characters in total.
	CIDPattern = regexp.MustCompile(`ba[a-z0-9]{48,}`)
	// DIDPattern: a did:key identifier with a base58 run. Base58 excludes
	// the easily confused 0, O, I and l.
	DIDPattern = regexp.MustCompile(`did:key:[1-9A-HJ-NP-Za-km-z]{8,}`)
)
