package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SentimentResult holds the lexicon polarity classification of a transcript
type SentimentResult struct {
	Score       int     `bson:"score" json:"score"`
	Comparative float64 `bson:"comparative" json:"comparative"`
	IsPositive  bool    `bson:"isPositive" json:"isPositive"`
	IsNeutral   bool    `bson:"isNeutral" json:"isNeutral"`
	IsNegative  bool    `bson:"isNegative" json:"isNegative"`
}

// TextQualityProfile is the derived text analysis for one transcript
type TextQualityProfile struct {
	WordCount                 int             `bson:"wordCount" json:"wordCount"`
	SentenceCount             int             `bson:"sentenceCount" json:"sentenceCount"`
	AvgWordsPerSentence       float64         `bson:"avgWordsPerSentence" json:"avgWordsPerSentence"`
	HasCompleteSentences      bool            `bson:"hasCompleteSentences" json:"hasCompleteSentences"`
	ContainsOffensiveLanguage bool            `bson:"containsOffensiveLanguage" json:"containsOffensiveLanguage"`
	Sentiment                 SentimentResult `bson:"sentiment" json:"sentiment"`
}

// ScoreBreakdown holds the five binary sub-scores that sum into the seriosity score
type ScoreBreakdown struct {
	LengthScore       int `bson:"lengthScore" json:"lengthScore"`
	KeywordScore      int `bson:"keywordScore" json:"keywordScore"`
	LanguageScore     int `bson:"languageScore" json:"languageScore"`
	SentimentScore    int `bson:"sentimentScore" json:"sentimentScore"`
	CompletenessScore int `bson:"completenessScore" json:"completenessScore"`
}

// ScoreFlags are the complements of the breakdown dimensions
type ScoreFlags struct {
	TooShort   bool `bson:"tooShort" json:"tooShort"`
	NoKeywords bool `bson:"noKeywords" json:"noKeywords"`
	Offensive  bool `bson:"offensive" json:"offensive"`
	Negative   bool `bson:"negative" json:"negative"`
	Incomplete bool `bson:"incomplete" json:"incomplete"`
}

// EvaluationDetails carries the raw analysis numbers behind the score
type EvaluationDetails struct {
	EstimatedDurationSeconds int      `bson:"estimatedDurationSeconds" json:"estimatedDurationSeconds"`
	WordCount                int      `bson:"wordCount" json:"wordCount"`
	KeywordsFound            []string `bson:"keywordsFound" json:"keywordsFound"`
	SentimentScore           int      `bson:"sentimentScore" json:"sentimentScore"`
}

// EvaluationResult is the full outcome of one interview answer evaluation
type EvaluationResult struct {
	Transcript       string            `bson:"transcript" json:"transcript"`
	Score            int               `bson:"score" json:"score"`
	ScoreExplanation string            `bson:"scoreExplanation" json:"scoreExplanation"`
	Breakdown        ScoreBreakdown    `bson:"breakdown" json:"breakdown"`
	Flags            ScoreFlags        `bson:"flags" json:"flags"`
	Suggestions      []string          `bson:"suggestions" json:"suggestions"`
	Details          EvaluationDetails `bson:"details" json:"details"`
}

// ExternalEvaluationView is the result as shown to a counter-party
// (e.g. a landlord reviewing an applicant): diagnostic fields are omitted
type ExternalEvaluationView struct {
	Transcript       string            `json:"transcript"`
	Score            int               `json:"score"`
	ScoreExplanation string            `json:"scoreExplanation"`
	Breakdown        ScoreBreakdown    `json:"breakdown"`
	Details          EvaluationDetails `json:"details"`
}

// InterviewEvaluation is the stored record tying a result to a submission
type InterviewEvaluation struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SubmissionID string             `bson:"submissionId" json:"submissionId"`
	UserEmail    string             `bson:"userEmail" json:"userEmail"`
	Result       EvaluationResult   `bson:"result" json:"result"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
