// Package verbs provides the verb dictionary model and persistence.
package verbs

// Entry represents one verb row. The JSON names match the wire
// contract the front end reads and writes.
type Entry struct {
	ID             int64   `db:"id" json:"id"`
	BaseWord       string  `db:"base_word" json:"base"`
	PastTense      string  `db:"past_tense" json:"past"`
	PastParticiple string  `db:"past_participle" json:"part"`
	Definition     string  `db:"definition" json:"def"`
	Note           *string `db:"note" json:"note"`
}

// MatchMode selects how the search text is matched.
type MatchMode string

const (
	// MatchFuzzy matches the text as a substring of the base word or definition.
	MatchFuzzy MatchMode = "fuzzy"
	// MatchExact matches the base word exactly, ignoring case.
	MatchExact MatchMode = "exact"
)

// InsertMode selects what a batch insert does on a base-word conflict.
type InsertMode string

const (
	// InsertSkip leaves the existing row untouched.
	InsertSkip InsertMode = "skip"
	// InsertOverwrite replaces the existing row.
	InsertOverwrite InsertMode = "update"
)

// SearchQuery describes a filtered, optionally windowed listing.
type SearchQuery struct {
	Text   string
	Mode   MatchMode
	Limit  int
	Offset int
	// Unlimited disables the row window entirely (export mode).
	Unlimited bool
}
