package seriosity

import (
	"testing"

	"renthub/models"
)

func TestExplainScoreCoversFullRange(t *testing.T) {
	for score := 1; score <= 5; score++ {
		explanation := ExplainScore(score)
		if explanation == "" || explanation == unavailableExplanation {
			t.Errorf("Score %d has no explanation", score)
		}
	}
}

func TestExplainScoreOutOfRange(t *testing.T) {
	// Unreachable after the scoring clamp, kept as a consistency guard
	for _, score := range []int{0, 6, -1, 100} {
		if got := ExplainScore(score); got != unavailableExplanation {
			t.Errorf("ExplainScore(%d) = %q, want the sentinel", score, got)
		}
	}
}

func TestSuggestionsFollowFixedOrder(t *testing.T) {
	flags := models.ScoreFlags{
		TooShort:   true,
		NoKeywords: true,
		Offensive:  true,
		Negative:   true,
		Incomplete: true,
	}

	suggestions := Suggestions(flags)
	expected := []string{
		suggestionTooShort,
		suggestionNoKeywords,
		suggestionOffensive,
		suggestionNegative,
		suggestionIncomplete,
	}

	if len(suggestions) != len(expected) {
		t.Fatalf("Expected %d suggestions, got %d", len(expected), len(suggestions))
	}
	for i := range expected {
		if suggestions[i] != expected[i] {
			t.Errorf("Suggestion %d = %q, want %q", i, suggestions[i], expected[i])
		}
	}
}

func TestSuggestionsCountMatchesRaisedFlags(t *testing.T) {
	cases := []struct {
		flags models.ScoreFlags
		want  int
	}{
		{models.ScoreFlags{}, 0},
		{models.ScoreFlags{TooShort: true}, 1},
		{models.ScoreFlags{NoKeywords: true, Incomplete: true}, 2},
		{models.ScoreFlags{Offensive: true, Negative: true, TooShort: true}, 3},
	}

	for _, c := range cases {
		suggestions := Suggestions(c.flags)
		if len(suggestions) != c.want {
			t.Errorf("Flags %+v: expected %d suggestions, got %d", c.flags, c.want, len(suggestions))
		}
	}
}
