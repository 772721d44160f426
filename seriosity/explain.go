package seriosity

import "renthub/models"

// scoreExplanations maps each possible seriosity score to one canned
// sentence shown next to the score
var scoreExplanations = map[int]string{
	1: "Very low seriosity. The answer shows little effort or engagement with the question.",
	2: "Low seriosity. The answer is brief and misses most of the signals of a serious applicant.",
	3: "Moderate seriosity. The answer covers some relevant ground but leaves clear gaps.",
	4: "Good seriosity. The answer is relevant and well formed, with one minor shortcoming.",
	5: "Excellent seriosity. The answer is thorough, relevant and positively framed.",
}

// unavailableExplanation should be unreachable: Score clamps to 1-5.
// It exists as a consistency guard, not a user-facing path.
const unavailableExplanation = "Score unavailable"

const (
	suggestionTooShort   = "Try to speak for at least 20-30 seconds so your answer covers more ground."
	suggestionNoKeywords = "Mention concrete details about your work, studies, income or housing plans."
	suggestionOffensive  = "Avoid offensive language and keep the tone polite and professional."
	suggestionNegative   = "Try to frame your situation in a more positive or neutral tone."
	suggestionIncomplete = "Answer in full sentences rather than short one-word replies."
)

// ExplainScore returns the canned explanation for a score
func ExplainScore(score int) string {
	if explanation, ok := scoreExplanations[score]; ok {
		return explanation
	}
	return unavailableExplanation
}

// Suggestions returns one fixed remediation per raised flag, in the fixed
// order tooShort, noKeywords, offensive, negative, incomplete. The list is
// empty exactly when no flag is raised.
func Suggestions(flags models.ScoreFlags) []string {
	suggestions := make([]string, 0)
	if flags.TooShort {
		suggestions = append(suggestions, suggestionTooShort)
	}
	if flags.NoKeywords {
		suggestions = append(suggestions, suggestionNoKeywords)
	}
	if flags.Offensive {
		suggestions = append(suggestions, suggestionOffensive)
	}
	if flags.Negative {
		suggestions = append(suggestions, suggestionNegative)
	}
	if flags.Incomplete {
		suggestions = append(suggestions, suggestionIncomplete)
	}
	return suggestions
}
