package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Institutional roles. Students carry the fixed RoleStudent.
const (
	RoleAdmin   = "admin"
	RoleEditor  = "editor"
	RoleViewer  = "viewer"
	RoleStudent = "student"
)

// User is an institutional account (administrator, editor, viewer).
// The password hash is never serialized.
type User struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Username  string             `json:"username" bson:"username"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"-" bson:"password"`
	Role      string             `json:"role" bson:"role"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// Principal is the authenticated identity attached to a request after token
// verification, either an institutional user or a student, discriminated by
// Role. The optional fields are populated per role, matching the token claims.
type Principal struct {
	ID                 string `json:"id"`
	Role               string `json:"role"`
	Username           string `json:"username,omitempty"`
	Email              string `json:"email,omitempty"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	Name               string `json:"name,omitempty"`
	Department         string `json:"department,omitempty"`
}
