package controllers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"renthub/internal/ratelimit"
	"renthub/services"

	"github.com/gin-gonic/gin"
)

// Transcription of a long answer can take a while on the provider side
const evaluateTimeout = 2 * time.Minute

// EvaluateInterview accepts a recorded answer (multipart upload), runs the
// evaluation pipeline and stores the result for the submission
func EvaluateInterview(c *gin.Context) {
	submissionID := c.PostForm("submissionId")
	if submissionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "submissionId is required"})
		return
	}

	fileHeader, err := c.FormFile("media")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "media file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open uploaded media"})
		return
	}
	defer file.Close()

	media, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read uploaded media"})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = c.PostForm("mediaType")
	}

	userEmail := c.GetString("userEmail")

	// Transcription is expensive, so submissions are throttled per user
	// when Redis is configured
	var limiter *ratelimit.RateLimiter
	if ratelimit.GetRedisClient() != nil {
		limiter = ratelimit.NewRateLimiter()
		allowed, err := limiter.CheckEvaluationRateLimit(userEmail, ratelimit.DefaultConfig())
		if err == nil && !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many evaluations, try again later"})
			return
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), evaluateTimeout)
	defer cancel()

	result, err := services.EvaluateInterview(ctx, media, mimeType)
	if err != nil {
		var validationErr *services.ValidationError
		var transcriptionErr *services.TranscriptionError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		case errors.As(err, &transcriptionErr):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Could not transcribe the recording: " + transcriptionErr.Message})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	if limiter != nil {
		if err := limiter.RecordEvaluation(userEmail, ratelimit.DefaultConfig()); err != nil {
			log.Printf("Failed to record evaluation rate limit for %s: %v", userEmail, err)
		}
	}

	if err := services.SaveEvaluation(ctx, submissionID, userEmail, result); err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store evaluation: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetEvaluation returns the full stored result to its owner
func GetEvaluation(c *gin.Context) {
	submissionID := c.Param("submissionId")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	record, err := services.GetEvaluationBySubmission(ctx, submissionID)
	if err != nil {
		if errors.Is(err, services.ErrEvaluationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Evaluation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if record.UserEmail != c.GetString("userEmail") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your evaluation"})
		return
	}

	c.JSON(http.StatusOK, record.Result)
}

// GetSharedEvaluation returns the restricted projection shown to a
// counter-party: flags and suggestions are omitted
func GetSharedEvaluation(c *gin.Context) {
	submissionID := c.Param("submissionId")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	record, err := services.GetEvaluationBySubmission(ctx, submissionID)
	if err != nil {
		if errors.Is(err, services.ErrEvaluationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Evaluation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, services.ExternalView(&record.Result))
}
