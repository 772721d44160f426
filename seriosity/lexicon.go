package seriosity

import "regexp"

// sentimentLexicon is a fixed AFINN-style valence table. Only tokens found
// here contribute to the polarity score; everything else counts as neutral.
var sentimentLexicon = map[string]int{
	// positive
	"good":        3,
	"great":       3,
	"excellent":   3,
	"amazing":     4,
	"awesome":     4,
	"wonderful":   4,
	"fantastic":   4,
	"perfect":     3,
	"love":        3,
	"loved":       3,
	"like":        2,
	"likes":       2,
	"enjoy":       2,
	"enjoyed":     2,
	"happy":       3,
	"glad":        3,
	"nice":        3,
	"best":        3,
	"better":      2,
	"friendly":    2,
	"clean":       2,
	"calm":        2,
	"comfortable": 2,
	"responsible": 2,
	"reliable":    2,
	"honest":      2,
	"motivated":   2,
	"excited":     3,
	"interested":  2,
	"thank":       2,
	"thanks":      2,
	"welcome":     2,
	"easy":        1,
	"fine":        2,
	"secure":      2,
	"positive":    2,
	"hope":        2,
	"hopeful":     2,
	"care":        2,
	"respectful":  2,

	// negative
	"bad":          -3,
	"terrible":     -3,
	"horrible":     -3,
	"awful":        -3,
	"worst":        -3,
	"worse":        -3,
	"hate":         -3,
	"hated":        -3,
	"dislike":      -2,
	"angry":        -3,
	"annoyed":      -2,
	"annoying":     -2,
	"sad":          -2,
	"unhappy":      -2,
	"problem":      -2,
	"problems":     -2,
	"broke":        -2,
	"broken":       -1,
	"dirty":        -2,
	"noisy":        -1,
	"lazy":         -1,
	"stupid":       -2,
	"useless":      -2,
	"poor":         -2,
	"fired":        -2,
	"evicted":      -3,
	"debt":         -2,
	"stress":       -2,
	"stressed":     -2,
	"difficult":    -1,
	"impossible":   -2,
	"never":        -1,
	"no":           -1,
	"not":          -1,
	"refuse":       -2,
	"refused":      -2,
	"complaint":    -2,
	"complaints":   -2,
	"disappointed": -2,
}

// profanityLexicon is the fixed short list of offensive terms. Matching is
// whole-word, unlike the keyword matcher which is substring based.
var profanityLexicon = []string{
	"damn",
	"shit",
	"fuck",
	"fucking",
	"bitch",
	"bastard",
	"asshole",
	"crap",
	"dick",
	"piss",
	"idiot",
	"moron",
}

// profanityPattern matches any lexicon term on word boundaries,
// case-insensitively. Built once at startup, never mutated.
var profanityPattern = regexp.MustCompile(buildProfanityPattern())

func buildProfanityPattern() string {
	pattern := `(?i)\b(?:`
	for i, term := range profanityLexicon {
		if i > 0 {
			pattern += "|"
		}
		pattern += regexp.QuoteMeta(term)
	}
	return pattern + `)\b`
}

// bareAnswers are one-word replies that never count as a complete answer,
// compared against the whole trimmed lower-cased transcript.
var bareAnswers = map[string]bool{
	"yes":   true,
	"no":    true,
	"maybe": true,
	"sure":  true,
	"ok":    true,
	"okay":  true,
	"fine":  true,
}
