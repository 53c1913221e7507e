package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	collectionUsers    = "users"
	collectionStudents = "students"
	collectionSubjects = "subjects"
	collectionCourses  = "courses"
	collectionNews     = "news"
	collectionEvents   = "events"
	collectionStaff    = "staff"
	collectionContacts = "contacts"
)

// EnsureIndexes creates the unique and query indexes every collection relies
// on. Uniqueness conflicts surface as duplicate key errors which the
// repositories map to domain conflict errors.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)
	uniqueSparse := options.Index().SetUnique(true).SetSparse(true)

	byCollection := map[string][]mongo.IndexModel{
		collectionUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		collectionStudents: {
			{Keys: bson.D{{Key: "registrationNumber", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: uniqueSparse},
		},
		collectionSubjects: {
			{Keys: bson.D{{Key: "code", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "department", Value: 1}}},
		},
		collectionCourses: {
			{Keys: bson.D{{Key: "courseCode", Value: 1}}, Options: unique},
		},
		collectionNews: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "date", Value: -1}}},
		},
		collectionEvents: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "date", Value: 1}}},
		},
		collectionStaff: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: uniqueSparse},
		},
	}

	for coll, indexes := range byCollection {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("create indexes for %s: %w", coll, err)
		}
	}
	return nil
}

// parseObjectID converts a hex id from a URL path. The bool result is false
// for malformed ids; callers map that to their domain's not-found error so a
// garbage id behaves like a missing document.
func parseObjectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
