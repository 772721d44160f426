package seriosity

import "strings"

// keywordLexicon is the fixed list of domain terms used to judge topical
// relevance. Grouping is informational only and not enforced at match time.
var keywordLexicon = []string{
	// employment
	"job",
	"work",
	"employed",
	"company",
	"salary",
	"career",
	"profession",
	"contract",
	// education
	"student",
	"study",
	"studies",
	"university",
	"college",
	"degree",
	"school",
	// housing intent
	"apartment",
	"flat",
	"room",
	"move in",
	"moving",
	"rent",
	"lease",
	"roommate",
	"neighborhood",
	// stability
	"long term",
	"stay",
	"settle",
	"stable",
	"quiet",
	"responsible",
	// financial
	"income",
	"budget",
	"afford",
	"deposit",
	"guarantor",
	"savings",
}

// MatchKeywords returns the lexicon entries that appear anywhere in the
// lowercased transcript. Matching is substring containment, not word
// boundary, so a longer phrase containing a shorter entry can count both.
// Duplicate hits in the transcript do not duplicate entries.
func MatchKeywords(text string) []string {
	lowered := strings.ToLower(text)

	matched := make([]string, 0)
	for _, keyword := range keywordLexicon {
		if strings.Contains(lowered, keyword) {
			matched = append(matched, keyword)
		}
	}
	return matched
}
