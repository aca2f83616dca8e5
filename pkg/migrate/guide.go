package migrate

import _ "embed"

//go:embed guide/uniwind-migration.md
var guideText string

// Guide returns the migration guide the rule catalog is derived from.
func Guide() string {
	return guideText
}

// GuideHash fingerprints the guide so report consumers can tell which
// revision of the rule catalog produced a summary.
func GuideHash() string {
	return Fingerprint(guideText)
}
