package domain

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultStaffImageURL is used when no portrait is supplied.
const DefaultStaffImageURL = "https://via.placeholder.com/150"

var linkedinPattern = regexp.MustCompile(`^(https?://)?(www\.)?linkedin\.com/.*$`)

// ValidLinkedinProfile reports whether url looks like a LinkedIn profile URL.
// An empty value is valid (the field is optional).
func ValidLinkedinProfile(url string) bool {
	return url == "" || linkedinPattern.MatchString(url)
}

// Staff is a staff member shown on the public staff page. Email is unique
// when present.
type Staff struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	Title           string             `json:"title" bson:"title"`
	Department      string             `json:"department" bson:"department"`
	Email           string             `json:"email,omitempty" bson:"email,omitempty"`
	Phone           string             `json:"phone,omitempty" bson:"phone,omitempty"`
	ImageURL        string             `json:"imageURL" bson:"imageURL"`
	Description     string             `json:"description,omitempty" bson:"description,omitempty"`
	LinkedinProfile string             `json:"linkedinProfile,omitempty" bson:"linkedinProfile,omitempty"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
}

// ContactMessage is a message submitted through the public contact form.
type ContactMessage struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	FullName  string             `json:"fullName" bson:"fullName"`
	Email     string             `json:"email" bson:"email"`
	Message   string             `json:"message" bson:"message"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
