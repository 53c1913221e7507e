package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subject is a teachable unit scoped to a department. Name and code are
// unique; codes are stored uppercase.
type Subject struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Code        string             `json:"code" bson:"code"`
	Department  string             `json:"department" bson:"department"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// Ref returns the denormalized subset embedded in student views.
func (s *Subject) Ref() SubjectRef {
	return SubjectRef{ID: s.ID, Name: s.Name, Code: s.Code, Department: s.Department}
}
