package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// News is a published news article. The slug is derived from the title and is
// unique; it is regenerated only when the title changes.
type News struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Content   string             `json:"content" bson:"content"`
	Date      time.Time          `json:"date" bson:"date"`
	ImageURL  string             `json:"imageURL,omitempty" bson:"imageURL,omitempty"`
	Slug      string             `json:"slug" bson:"slug"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Event is a scheduled campus event. Like News it carries a unique
// title-derived slug; it additionally has a location.
type Event struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Date        time.Time          `json:"date" bson:"date"`
	Location    string             `json:"location" bson:"location"`
	ImageURL    string             `json:"imageURL,omitempty" bson:"imageURL,omitempty"`
	Slug        string             `json:"slug" bson:"slug"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CalendarItem is the merged news/event projection served to the calendar
// widget. Date is formatted YYYY-MM-DD.
type CalendarItem struct {
	Date string `json:"date"`
	Slug string `json:"slug"`
	Type string `json:"type"`
}
