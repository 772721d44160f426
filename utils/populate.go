package utils

import (
	"context"
	"log"
	"time"

	"renthub/db"
	"renthub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// PopulateSampleProfiles seeds renter profiles into an empty database so
// the interview flow can be exercised locally
func PopulateSampleProfiles() {
	collection := db.MongoDatabase.Collection("users")
	count, _ := collection.CountDocuments(context.Background(), bson.M{})

	if count > 0 {
		return
	}

	sampleUsers := []models.User{
		{
			Email:       "alice@example.com",
			DisplayName: "Alice Johnson",
			Bio:         "Looking for a quiet one-bedroom near the center",
			Occupation:  "Software engineer",
			CreatedAt:   time.Now(),
		},
		{
			Email:       "bob@example.com",
			DisplayName: "Bob Smith",
			Bio:         "Graduate student searching for a shared flat",
			Occupation:  "Student",
			CreatedAt:   time.Now(),
		},
	}

	var documents []interface{}
	for _, user := range sampleUsers {
		documents = append(documents, user)
	}

	if _, err := collection.InsertMany(context.Background(), documents); err != nil {
		log.Printf("Failed to seed sample profiles: %v", err)
	}
}
