package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"renthub/config"
	"renthub/db"
	"renthub/models"
	"renthub/seriosity"
	"renthub/stt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// minTranscriptLength is the minimum usable transcript length in
// characters; anything shorter is treated as a failed transcription
const minTranscriptLength = 10

var sttProvider stt.Provider

// InitEvaluationService wires the configured transcription provider
func InitEvaluationService(cfg *config.Config) error {
	provider, err := stt.CreateProvider(cfg)
	if err != nil {
		return err
	}
	sttProvider = provider
	log.Printf("Evaluation service initialized with %s transcription", provider.Name())
	return nil
}

// EvaluateInterview runs the full pipeline for one recorded answer:
// transcription, scoring, explanation and suggestions. A transcription
// failure aborts the whole evaluation; no partial result is returned.
func EvaluateInterview(ctx context.Context, media []byte, mimeType string) (*models.EvaluationResult, error) {
	if len(media) == 0 {
		return nil, &ValidationError{Message: "no media provided"}
	}
	if strings.TrimSpace(mimeType) == "" {
		return nil, &ValidationError{Message: "media type is required"}
	}
	if sttProvider == nil {
		return nil, &InternalError{Cause: errors.New("transcription provider not initialized")}
	}

	transcription, err := sttProvider.Transcribe(ctx, media, mimeType)
	if err != nil {
		return nil, &TranscriptionError{Message: "transcription failed", Cause: err}
	}

	transcript := strings.TrimSpace(transcription.Transcript)
	if len(transcript) < minTranscriptLength {
		return nil, &TranscriptionError{Message: "transcript too short to evaluate"}
	}

	card := seriosity.Score(transcript)

	return &models.EvaluationResult{
		Transcript:       transcript,
		Score:            card.Score,
		ScoreExplanation: seriosity.ExplainScore(card.Score),
		Breakdown:        card.Breakdown,
		Flags:            card.Flags,
		Suggestions:      seriosity.Suggestions(card.Flags),
		Details: models.EvaluationDetails{
			EstimatedDurationSeconds: card.DurationSeconds,
			WordCount:                card.Quality.WordCount,
			KeywordsFound:            card.Keywords,
			SentimentScore:           card.Quality.Sentiment.Score,
		},
	}, nil
}

// ExternalView projects a result for a counter-party, dropping the
// diagnostic flags and suggestions. It is a projection, not a recompute.
func ExternalView(result *models.EvaluationResult) models.ExternalEvaluationView {
	return models.ExternalEvaluationView{
		Transcript:       result.Transcript,
		Score:            result.Score,
		ScoreExplanation: result.ScoreExplanation,
		Breakdown:        result.Breakdown,
		Details:          result.Details,
	}
}

// SaveEvaluation stores the finished result for a submission. The subject
// profile must still exist; re-submissions replace the previous record.
func SaveEvaluation(ctx context.Context, submissionID, userEmail string, result *models.EvaluationResult) error {
	if submissionID == "" {
		return &ValidationError{Message: "submission id is required"}
	}

	users := db.MongoDatabase.Collection("users")
	if err := users.FindOne(ctx, bson.M{"email": userEmail}).Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrProfileNotFound
		}
		return err
	}

	doc := models.InterviewEvaluation{
		SubmissionID: submissionID,
		UserEmail:    userEmail,
		Result:       *result,
		CreatedAt:    time.Now(),
	}

	evaluations := db.MongoDatabase.Collection("interview_evaluations")
	opts := options.Replace().SetUpsert(true)
	if _, err := evaluations.ReplaceOne(ctx, bson.M{"submissionId": submissionID}, doc, opts); err != nil {
		log.Printf("Error saving evaluation for submission %s: %v", submissionID, err)
		return err
	}
	return nil
}

// GetEvaluationBySubmission fetches a stored evaluation record
func GetEvaluationBySubmission(ctx context.Context, submissionID string) (*models.InterviewEvaluation, error) {
	evaluations := db.MongoDatabase.Collection("interview_evaluations")

	var record models.InterviewEvaluation
	err := evaluations.FindOne(ctx, bson.M{"submissionId": submissionID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrEvaluationNotFound
		}
		return nil, err
	}
	return &record, nil
}
