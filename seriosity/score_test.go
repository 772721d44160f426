package seriosity

import (
	"reflect"
	"strings"
	"testing"
)

// 10 words per repetition, positive tone, two keyword hits (job, apartment)
const strongAnswerUnit = "I really enjoy my job and I love this apartment. "

func strongAnswer() string {
	// 60 words, estimated 24 spoken seconds
	return strings.Repeat(strongAnswerUnit, 6)
}

func TestScoreBareYes(t *testing.T) {
	card := Score("Yes.")

	if card.Score != 2 {
		t.Errorf("Expected score 2, got %d", card.Score)
	}
	if card.DurationSeconds != 0 {
		t.Errorf("Expected 0 estimated seconds for one word, got %d", card.DurationSeconds)
	}
	if card.Breakdown.LengthScore != 0 || card.Breakdown.KeywordScore != 0 || card.Breakdown.CompletenessScore != 0 {
		t.Errorf("Expected length, keyword and completeness to fail, got %+v", card.Breakdown)
	}
	if card.Breakdown.LanguageScore != 1 || card.Breakdown.SentimentScore != 1 {
		t.Errorf("Expected language and sentiment to pass, got %+v", card.Breakdown)
	}
	if !card.Flags.TooShort || !card.Flags.NoKeywords || !card.Flags.Incomplete {
		t.Errorf("Expected tooShort, noKeywords and incomplete flags, got %+v", card.Flags)
	}
	if card.Flags.Offensive || card.Flags.Negative {
		t.Errorf("Expected offensive and negative flags to be clear, got %+v", card.Flags)
	}
}

func TestScorePerfectAnswer(t *testing.T) {
	card := Score(strongAnswer())

	if card.Score != 5 {
		t.Errorf("Expected score 5, got %d (breakdown %+v)", card.Score, card.Breakdown)
	}
	if card.Flags.TooShort || card.Flags.NoKeywords || card.Flags.Offensive || card.Flags.Negative || card.Flags.Incomplete {
		t.Errorf("Expected all flags clear, got %+v", card.Flags)
	}
	if len(Suggestions(card.Flags)) != 0 {
		t.Errorf("Expected no suggestions for a perfect answer")
	}
}

func TestScoreProfanityCostsOnePoint(t *testing.T) {
	card := Score(strongAnswer() + "The damn elevator is slow.")

	if card.Score != 4 {
		t.Errorf("Expected score 4, got %d (breakdown %+v)", card.Score, card.Breakdown)
	}
	if card.Breakdown.LanguageScore != 0 || !card.Flags.Offensive {
		t.Errorf("Expected the language dimension to fail, got %+v", card.Breakdown)
	}

	suggestions := Suggestions(card.Flags)
	if len(suggestions) != 1 || suggestions[0] != suggestionOffensive {
		t.Errorf("Expected only the offensive-language suggestion, got %v", suggestions)
	}
}

func TestScoreFloorIsOne(t *testing.T) {
	// Fails every dimension: short, no keywords, profane, negative, incomplete
	card := Score("Damn awful")

	total := card.Breakdown.LengthScore + card.Breakdown.KeywordScore +
		card.Breakdown.LanguageScore + card.Breakdown.SentimentScore +
		card.Breakdown.CompletenessScore
	if total != 0 {
		t.Fatalf("Expected every dimension to fail, got %+v", card.Breakdown)
	}
	if card.Score != 1 {
		t.Errorf("Expected the floor score 1, got %d", card.Score)
	}
}

func TestFlagsAreBreakdownComplements(t *testing.T) {
	transcripts := []string{
		"",
		"Yes.",
		"ok",
		"Damn awful",
		strongAnswer(),
		"The last place was terrible and the landlord was awful.",
	}

	for _, transcript := range transcripts {
		card := Score(transcript)

		pairs := []struct {
			score int
			flag  bool
		}{
			{card.Breakdown.LengthScore, card.Flags.TooShort},
			{card.Breakdown.KeywordScore, card.Flags.NoKeywords},
			{card.Breakdown.LanguageScore, card.Flags.Offensive},
			{card.Breakdown.SentimentScore, card.Flags.Negative},
			{card.Breakdown.CompletenessScore, card.Flags.Incomplete},
		}
		for i, pair := range pairs {
			if pair.score != 0 && pair.score != 1 {
				t.Errorf("%q: dimension %d not binary: %d", transcript, i, pair.score)
			}
			if pair.flag != (pair.score == 0) {
				t.Errorf("%q: flag %d is not the complement of its dimension", transcript, i)
			}
		}

		if card.Score < 1 || card.Score > 5 {
			t.Errorf("%q: score %d out of range", transcript, card.Score)
		}
		sum := card.Breakdown.LengthScore + card.Breakdown.KeywordScore +
			card.Breakdown.LanguageScore + card.Breakdown.SentimentScore +
			card.Breakdown.CompletenessScore
		expected := sum
		if expected < 1 {
			expected = 1
		}
		if card.Score != expected {
			t.Errorf("%q: score %d != max(1, sum %d)", transcript, card.Score, sum)
		}
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	transcript := strongAnswer() + "I can afford the deposit."

	first := Score(transcript)
	second := Score(transcript)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Scoring the same transcript twice produced different results:\n%+v\n%+v", first, second)
	}
}

func TestNegativeToneFailsSentimentDimension(t *testing.T) {
	card := Score("The last place was terrible and the landlord was awful.")

	if card.Breakdown.SentimentScore != 0 || !card.Flags.Negative {
		t.Errorf("Expected the sentiment dimension to fail, got %+v", card.Breakdown)
	}
}
