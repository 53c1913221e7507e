package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CourseHighlight is an ordered presentation sub-record on a course page.
type CourseHighlight struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	IconName    string `json:"iconName,omitempty" bson:"iconName,omitempty"`
}

// Course is a public study programme. The course code is unique; labelColor
// and iconName are presentation hints consumed by the frontend.
type Course struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	CourseCode  string             `json:"courseCode" bson:"courseCode"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	IconName    string             `json:"iconName,omitempty" bson:"iconName,omitempty"`
	ImageURL    string             `json:"imageURL,omitempty" bson:"imageURL,omitempty"`
	LabelColor  string             `json:"labelColor,omitempty" bson:"labelColor,omitempty"`
	Link        string             `json:"link,omitempty" bson:"link,omitempty"`
	Highlights  []CourseHighlight  `json:"highlights,omitempty" bson:"highlights,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
