package seriosity

import "renthub/models"

const (
	// lengthScore requires more than this many estimated spoken seconds
	minSpokenSeconds = 20
	// keywordScore requires at least this many distinct lexicon matches
	minKeywordMatches = 2
	// the score never drops below 1, even when every dimension fails
	scoreFloor = 1
)

// Scorecard is the full deterministic output of scoring one transcript
type Scorecard struct {
	Score           int
	Breakdown       models.ScoreBreakdown
	Flags           models.ScoreFlags
	Quality         models.TextQualityProfile
	DurationSeconds int
	Keywords        []string
}

// Score evaluates a transcript into the five binary sub-scores, the bounded
// 1-5 seriosity score and the complementary failure flags. It is a pure
// function: identical transcripts always produce identical scorecards.
func Score(transcript string) Scorecard {
	quality := AnalyzeText(transcript)
	duration := EstimateSpokenSeconds(transcript)
	keywords := MatchKeywords(transcript)

	breakdown := models.ScoreBreakdown{
		LengthScore:       boolToScore(duration > minSpokenSeconds),
		KeywordScore:      boolToScore(len(keywords) >= minKeywordMatches),
		LanguageScore:     boolToScore(!quality.ContainsOffensiveLanguage),
		SentimentScore:    boolToScore(!quality.Sentiment.IsNegative),
		CompletenessScore: boolToScore(quality.HasCompleteSentences),
	}

	total := breakdown.LengthScore + breakdown.KeywordScore +
		breakdown.LanguageScore + breakdown.SentimentScore +
		breakdown.CompletenessScore
	if total < scoreFloor {
		total = scoreFloor
	}

	return Scorecard{
		Score:     total,
		Breakdown: breakdown,
		Flags: models.ScoreFlags{
			TooShort:   breakdown.LengthScore == 0,
			NoKeywords: breakdown.KeywordScore == 0,
			Offensive:  breakdown.LanguageScore == 0,
			Negative:   breakdown.SentimentScore == 0,
			Incomplete: breakdown.CompletenessScore == 0,
		},
		Quality:         quality,
		DurationSeconds: duration,
		Keywords:        keywords,
	}
}

func boolToScore(pass bool) int {
	if pass {
		return 1
	}
	return 0
}
