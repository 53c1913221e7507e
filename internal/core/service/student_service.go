package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sliate-rat/university-api/internal/core/domain"
	"github.com/sliate-rat/university-api/internal/core/ports"
)

// StudentService implements student management. Read views populate enrolled
// subjects with the denormalized name/code/department subset.
type StudentService struct {
	students ports.StudentRepository
	subjects ports.SubjectRepository
	log      zerolog.Logger
}

func NewStudentService(students ports.StudentRepository, subjects ports.SubjectRepository, log zerolog.Logger) *StudentService {
	return &StudentService{students: students, subjects: subjects, log: log}
}

func (s *StudentService) List(ctx context.Context) ([]*domain.StudentProfile, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}

	// One batched subject fetch covers every student's enrollment list.
	idSet := make(map[string]struct{})
	for _, st := range students {
		for _, id := range st.EnrolledSubjects {
			idSet[id.Hex()] = struct{}{}
		}
	}
	refs, err := s.subjectRefs(ctx, idSet)
	if err != nil {
		return nil, err
	}

	profiles := make([]*domain.StudentProfile, 0, len(students))
	for _, st := range students {
		profiles = append(profiles, buildProfile(st, refs))
	}
	return profiles, nil
}

func (s *StudentService) Get(ctx context.Context, id string) (*domain.StudentProfile, error) {
	st, err := s.students.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	idSet := make(map[string]struct{}, len(st.EnrolledSubjects))
	for _, sid := range st.EnrolledSubjects {
		idSet[sid.Hex()] = struct{}{}
	}
	refs, err := s.subjectRefs(ctx, idSet)
	if err != nil {
		return nil, err
	}
	return buildProfile(st, refs), nil
}

func (s *StudentService) Create(ctx context.Context, in ports.CreateStudentInput) (*domain.Student, error) {
	subjectIDs, verr := parseSubjectIDs(in.EnrolledSubjects)
	if verr != nil {
		return nil, verr
	}

	student := &domain.Student{
		RegistrationNumber: strings.ToUpper(strings.TrimSpace(in.RegistrationNumber)),
		Name:               strings.TrimSpace(in.Name),
		Email:              strings.TrimSpace(in.Email),
		Department:         strings.ToUpper(strings.TrimSpace(in.Department)),
		EnrolledSubjects:   subjectIDs,
		Role:               domain.RoleStudent,
	}
	if verr := domain.ValidateStudentRecord(student); verr != nil {
		return nil, verr
	}
	if in.Password == "" {
		return nil, domain.NewValidationError("password is required")
	}

	if _, err := s.students.FindByRegistrationNumber(ctx, student.RegistrationNumber); err == nil {
		return nil, domain.ErrStudentExists
	} else if !errors.Is(err, domain.ErrStudentNotFound) {
		return nil, err
	}
	if student.Email != "" {
		if _, err := s.students.FindByEmail(ctx, student.Email); err == nil {
			return nil, domain.ErrStudentExists
		} else if !errors.Is(err, domain.ErrStudentNotFound) {
			return nil, err
		}
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	student.Password = hash
	student.CreatedAt = time.Now().UTC()

	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}
	s.log.Info().Str("registration_number", student.RegistrationNumber).Msg("student created")
	return student, nil
}

// Update applies a partial merge. An omitted password preserves the stored
// hash; a present enrolledSubjects list replaces the previous one.
func (s *StudentService) Update(ctx context.Context, id string, in ports.UpdateStudentInput) (*domain.Student, error) {
	student, err := s.students.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.RegistrationNumber != nil {
		regNum := strings.ToUpper(strings.TrimSpace(*in.RegistrationNumber))
		if regNum != student.RegistrationNumber {
			existing, err := s.students.FindByRegistrationNumber(ctx, regNum)
			if err == nil && existing.ID != student.ID {
				return nil, domain.ErrStudentExists
			}
			if err != nil && !errors.Is(err, domain.ErrStudentNotFound) {
				return nil, err
			}
		}
		student.RegistrationNumber = regNum
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if email != "" && email != student.Email {
			existing, err := s.students.FindByEmail(ctx, email)
			if err == nil && existing.ID != student.ID {
				return nil, domain.ErrStudentExists
			}
			if err != nil && !errors.Is(err, domain.ErrStudentNotFound) {
				return nil, err
			}
		}
		student.Email = email
	}
	if in.Name != nil {
		student.Name = strings.TrimSpace(*in.Name)
	}
	if in.Department != nil {
		student.Department = strings.ToUpper(strings.TrimSpace(*in.Department))
	}
	if in.EnrolledSubjects != nil {
		subjectIDs, verr := parseSubjectIDs(in.EnrolledSubjects)
		if verr != nil {
			return nil, verr
		}
		student.EnrolledSubjects = subjectIDs
	}
	if verr := domain.ValidateStudentRecord(student); verr != nil {
		return nil, verr
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		student.Password = hash
	}

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *StudentService) Delete(ctx context.Context, id string) error {
	if _, err := s.students.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.students.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("student_id", id).Msg("student deleted")
	return nil
}

func (s *StudentService) subjectRefs(ctx context.Context, idSet map[string]struct{}) (map[string]domain.SubjectRef, error) {
	if len(idSet) == 0 {
		return map[string]domain.SubjectRef{}, nil
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	subjects, err := s.subjects.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	refs := make(map[string]domain.SubjectRef, len(subjects))
	for _, sub := range subjects {
		refs[sub.ID.Hex()] = sub.Ref()
	}
	return refs, nil
}

func buildProfile(st *domain.Student, refs map[string]domain.SubjectRef) *domain.StudentProfile {
	enrolled := make([]domain.SubjectRef, 0, len(st.EnrolledSubjects))
	for _, id := range st.EnrolledSubjects {
		if ref, ok := refs[id.Hex()]; ok {
			enrolled = append(enrolled, ref)
		}
	}
	return &domain.StudentProfile{
		ID:                 st.ID,
		RegistrationNumber: st.RegistrationNumber,
		Name:               st.Name,
		Email:              st.Email,
		Department:         st.Department,
		EnrolledSubjects:   enrolled,
		Role:               st.Role,
		CreatedAt:          st.CreatedAt,
	}
}

func parseSubjectIDs(raw []string) ([]primitive.ObjectID, *domain.ValidationError) {
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, r := range raw {
		id, err := primitive.ObjectIDFromHex(r)
		if err != nil {
			return nil, domain.NewValidationError(fmt.Sprintf("invalid subject id %q", r))
		}
		ids = append(ids, id)
	}
	return ids, nil
}
