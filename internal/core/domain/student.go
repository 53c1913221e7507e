package domain

import (
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Departments offered by the institute.
const (
	DeptHNDE  = "HNDE"
	DeptHNDA  = "HNDA"
	DeptHNDIT = "HNDIT"
)

// regNumPatterns maps each department to its registration number format:
// RAT/<dept code>/<4-digit year>/<letter>/<4-digit sequence>.
var regNumPatterns = map[string]*regexp.Regexp{
	DeptHNDE:  regexp.MustCompile(`^RAT/EN/\d{4}/[A-Z]/\d{4}$`),
	DeptHNDA:  regexp.MustCompile(`^RAT/AC/\d{4}/[A-Z]/\d{4}$`),
	DeptHNDIT: regexp.MustCompile(`^RAT/IT/\d{4}/[A-Z]/\d{4}$`),
}

// ValidDepartment reports whether d is one of the known departments.
// Callers are expected to uppercase first.
func ValidDepartment(d string) bool {
	_, ok := regNumPatterns[d]
	return ok
}

// Student is an enrolled student account. Registration numbers and
// departments are stored uppercase; the password hash is never serialized.
type Student struct {
	ID                 primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	RegistrationNumber string               `json:"registrationNumber" bson:"registrationNumber"`
	Name               string               `json:"name" bson:"name"`
	Email              string               `json:"email,omitempty" bson:"email,omitempty"`
	Password           string               `json:"-" bson:"password"`
	Department         string               `json:"department" bson:"department"`
	EnrolledSubjects   []primitive.ObjectID `json:"enrolledSubjects" bson:"enrolledSubjects"`
	Role               string               `json:"role" bson:"role"`
	CreatedAt          time.Time            `json:"createdAt" bson:"createdAt"`
}

// SubjectRef is the denormalized subject subset embedded in student views in
// place of raw subject ids.
type SubjectRef struct {
	ID         primitive.ObjectID `json:"_id"`
	Name       string             `json:"name"`
	Code       string             `json:"code"`
	Department string             `json:"department"`
}

// StudentProfile is the read view of a student: the account fields with
// enrolled subjects populated.
type StudentProfile struct {
	ID                 primitive.ObjectID `json:"_id"`
	RegistrationNumber string             `json:"registrationNumber"`
	Name               string             `json:"name"`
	Email              string             `json:"email,omitempty"`
	Department         string             `json:"department"`
	EnrolledSubjects   []SubjectRef       `json:"enrolledSubjects"`
	Role               string             `json:"role"`
	CreatedAt          time.Time          `json:"createdAt"`
}

// ValidateStudentRecord checks the cross-field rules a schema validator cannot
// express: the registration number format is keyed by the department. It
// assumes RegistrationNumber and Department are already uppercased and returns
// a ValidationError listing every failure, or nil.
func ValidateStudentRecord(s *Student) *ValidationError {
	var msgs []string
	if s.RegistrationNumber == "" {
		msgs = append(msgs, "registration number is required")
	}
	if s.Name == "" {
		msgs = append(msgs, "name is required")
	}
	if !ValidDepartment(s.Department) {
		msgs = append(msgs, fmt.Sprintf("department must be one of %s, %s, %s", DeptHNDE, DeptHNDA, DeptHNDIT))
	} else if s.RegistrationNumber != "" && !regNumPatterns[s.Department].MatchString(s.RegistrationNumber) {
		msgs = append(msgs, fmt.Sprintf("invalid registration number format for department %s", s.Department))
	}
	if len(msgs) > 0 {
		return NewValidationError(msgs...)
	}
	return nil
}
