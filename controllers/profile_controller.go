package controllers

import (
	"context"
	"net/http"
	"time"

	"renthub/db"
	"renthub/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetProfile retrieves and returns the renter profile with recent
// interview evaluations
func GetProfile(ctx *gin.Context) {
	email := ctx.GetString("userEmail")

	if email == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Fetch user profile
	var user models.User
	err := db.MongoDatabase.Collection("users").FindOne(dbCtx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	// Fetch the user's recent interview evaluations
	cursor, err := db.MongoDatabase.Collection("interview_evaluations").Find(
		dbCtx,
		bson.M{"userEmail": email},
		options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(5),
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching evaluations"})
		return
	}
	defer cursor.Close(dbCtx)

	evaluations := make([]models.InterviewEvaluation, 0)
	for cursor.Next(dbCtx) {
		var evaluation models.InterviewEvaluation
		if err := cursor.Decode(&evaluation); err != nil {
			continue
		}
		evaluations = append(evaluations, evaluation)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"profile":     user,
		"evaluations": evaluations,
	})
}
