package seriosity

import (
	"strings"

	"renthub/models"
)

const (
	minCompleteLength = 20
	minCompleteWords  = 5
)

// AnalyzeText derives the full quality profile for one transcript
func AnalyzeText(text string) models.TextQualityProfile {
	wordCount := CountWords(text)
	sentenceCount := countSentences(text)

	avgWords := 0.0
	if sentenceCount > 0 {
		avgWords = float64(wordCount) / float64(sentenceCount)
	}

	return models.TextQualityProfile{
		WordCount:                 wordCount,
		SentenceCount:             sentenceCount,
		AvgWordsPerSentence:       avgWords,
		HasCompleteSentences:      hasCompleteSentences(text, wordCount),
		ContainsOffensiveLanguage: ContainsProfanity(text),
		Sentiment:                 AnalyzeSentiment(text),
	}
}

// CountWords counts whitespace-separated words. Blank input is guarded
// explicitly so an empty transcript counts zero words, not one.
func CountWords(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return len(strings.Fields(text))
}

// countSentences splits on terminating punctuation and drops blank fragments
func countSentences(text string) int {
	fragments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	count := 0
	for _, fragment := range fragments {
		if strings.TrimSpace(fragment) != "" {
			count++
		}
	}
	return count
}

// AnalyzeSentiment scores the transcript against the valence lexicon.
// The comparative value is the raw score normalized by token count.
func AnalyzeSentiment(text string) models.SentimentResult {
	tokens := strings.Fields(strings.ToLower(text))

	score := 0
	for _, token := range tokens {
		token = strings.Trim(token, ".,!?;:'\"()-")
		if valence, ok := sentimentLexicon[token]; ok {
			score += valence
		}
	}

	comparative := 0.0
	if len(tokens) > 0 {
		comparative = float64(score) / float64(len(tokens))
	}

	return models.SentimentResult{
		Score:       score,
		Comparative: comparative,
		IsPositive:  score > 0,
		IsNeutral:   score == 0,
		IsNegative:  score < 0,
	}
}

// ContainsProfanity reports whether any offensive term appears as a whole
// word anywhere in the transcript
func ContainsProfanity(text string) bool {
	return profanityPattern.MatchString(text)
}

// hasCompleteSentences applies the completeness heuristic: long enough,
// punctuated, enough words, and not just a bare one-word answer
func hasCompleteSentences(text string, wordCount int) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minCompleteLength {
		return false
	}
	if !strings.ContainsAny(trimmed, ".!?") {
		return false
	}
	if wordCount < minCompleteWords {
		return false
	}
	if bareAnswers[strings.ToLower(trimmed)] {
		return false
	}
	return true
}
