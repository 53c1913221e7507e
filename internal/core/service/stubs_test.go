package service

import (
	"context"

	"github.com/sliate-rat/university-api/internal/core/domain"
	"github.com/sliate-rat/university-api/internal/core/ports"
)

// Hand-rolled repository stubs. Nil funcs fall back to not-found (reads) or
// success (writes) so each test only wires what it asserts on.

type stubUserRepo struct {
	findByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	findByIDFn    func(ctx context.Context, id string) (*domain.User, error)
	createFn      func(ctx context.Context, u *domain.User) error
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.findByEmailFn == nil {
		return nil, domain.ErrUserNotFound
	}
	return s.findByEmailFn(ctx, email)
}

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if s.findByIDFn == nil {
		return nil, domain.ErrUserNotFound
	}
	return s.findByIDFn(ctx, id)
}

func (s *stubUserRepo) Create(ctx context.Context, u *domain.User) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, u)
}

type stubStudentRepo struct {
	findByIDFn     func(ctx context.Context, id string) (*domain.Student, error)
	findByRegNumFn func(ctx context.Context, regNum string) (*domain.Student, error)
	findByEmailFn  func(ctx context.Context, email string) (*domain.Student, error)
	listFn         func(ctx context.Context) ([]*domain.Student, error)
	createFn       func(ctx context.Context, st *domain.Student) error
	updateFn       func(ctx context.Context, st *domain.Student) error
	deleteFn       func(ctx context.Context, id string) error
}

func (s *stubStudentRepo) FindByID(ctx context.Context, id string) (*domain.Student, error) {
	if s.findByIDFn == nil {
		return nil, domain.ErrStudentNotFound
	}
	return s.findByIDFn(ctx, id)
}

func (s *stubStudentRepo) FindByRegistrationNumber(ctx context.Context, regNum string) (*domain.Student, error) {
	if s.findByRegNumFn == nil {
		return nil, domain.ErrStudentNotFound
	}
	return s.findByRegNumFn(ctx, regNum)
}

func (s *stubStudentRepo) FindByEmail(ctx context.Context, email string) (*domain.Student, error) {
	if s.findByEmailFn == nil {
		return nil, domain.ErrStudentNotFound
	}
	return s.findByEmailFn(ctx, email)
}

func (s *stubStudentRepo) List(ctx context.Context) ([]*domain.Student, error) {
	if s.listFn == nil {
		return []*domain.Student{}, nil
	}
	return s.listFn(ctx)
}

func (s *stubStudentRepo) Create(ctx context.Context, st *domain.Student) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, st)
}

func (s *stubStudentRepo) Update(ctx context.Context, st *domain.Student) error {
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(ctx, st)
}

func (s *stubStudentRepo) Delete(ctx context.Context, id string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

type stubSubjectRepo struct {
	listFn       func(ctx context.Context, department string) ([]*domain.Subject, error)
	findByIDFn   func(ctx context.Context, id string) (*domain.Subject, error)
	findByIDsFn  func(ctx context.Context, ids []string) ([]*domain.Subject, error)
	findByCodeFn func(ctx context.Context, code string) (*domain.Subject, error)
	createFn     func(ctx context.Context, sub *domain.Subject) error
	updateFn     func(ctx context.Context, sub *domain.Subject) error
	deleteFn     func(ctx context.Context, id string) error
}

func (s *stubSubjectRepo) List(ctx context.Context, department string) ([]*domain.Subject, error) {
	if s.listFn == nil {
		return []*domain.Subject{}, nil
	}
	return s.listFn(ctx, department)
}

func (s *stubSubjectRepo) FindByID(ctx context.Context, id string) (*domain.Subject, error) {
	if s.findByIDFn == nil {
		return nil, domain.ErrSubjectNotFound
	}
	return s.findByIDFn(ctx, id)
}

func (s *stubSubjectRepo) FindByIDs(ctx context.Context, ids []string) ([]*domain.Subject, error) {
	if s.findByIDsFn == nil {
		return []*domain.Subject{}, nil
	}
	return s.findByIDsFn(ctx, ids)
}

func (s *stubSubjectRepo) FindByCode(ctx context.Context, code string) (*domain.Subject, error) {
	if s.findByCodeFn == nil {
		return nil, domain.ErrSubjectNotFound
	}
	return s.findByCodeFn(ctx, code)
}

func (s *stubSubjectRepo) Create(ctx context.Context, sub *domain.Subject) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, sub)
}

func (s *stubSubjectRepo) Update(ctx context.Context, sub *domain.Subject) error {
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(ctx, sub)
}

func (s *stubSubjectRepo) Delete(ctx context.Context, id string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

type stubNewsRepo struct {
	listFn     func(ctx context.Context, f ports.NewsListFilter) ([]*domain.News, int64, error)
	findByIDFn func(ctx context.Context, id string) (*domain.News, error)
	createFn   func(ctx context.Context, n *domain.News) error
	updateFn   func(ctx context.Context, n *domain.News) error
	deleteFn   func(ctx context.Context, id string) error
	calendarFn func(ctx context.Context) ([]*domain.News, error)
}

func (s *stubNewsRepo) List(ctx context.Context, f ports.NewsListFilter) ([]*domain.News, int64, error) {
	if s.listFn == nil {
		return []*domain.News{}, 0, nil
	}
	return s.listFn(ctx, f)
}

func (s *stubNewsRepo) FindByID(ctx context.Context, id string) (*domain.News, error) {
	if s.findByIDFn == nil {
		return nil, domain.ErrNewsNotFound
	}
	return s.findByIDFn(ctx, id)
}

func (s *stubNewsRepo) Create(ctx context.Context, n *domain.News) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, n)
}

func (s *stubNewsRepo) Update(ctx context.Context, n *domain.News) error {
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(ctx, n)
}

func (s *stubNewsRepo) Delete(ctx context.Context, id string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

func (s *stubNewsRepo) CalendarEntries(ctx context.Context) ([]*domain.News, error) {
	if s.calendarFn == nil {
		return []*domain.News{}, nil
	}
	return s.calendarFn(ctx)
}

type stubEventRepo struct {
	listFn     func(ctx context.Context, f ports.EventListFilter) ([]*domain.Event, int64, error)
	findByIDFn func(ctx context.Context, id string) (*domain.Event, error)
	createFn   func(ctx context.Context, e *domain.Event) error
	updateFn   func(ctx context.Context, e *domain.Event) error
	deleteFn   func(ctx context.Context, id string) error
	calendarFn func(ctx context.Context) ([]*domain.Event, error)
}

func (s *stubEventRepo) List(ctx context.Context, f ports.EventListFilter) ([]*domain.Event, int64, error) {
	if s.listFn == nil {
		return []*domain.Event{}, 0, nil
	}
	return s.listFn(ctx, f)
}

func (s *stubEventRepo) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	if s.findByIDFn == nil {
		return nil, domain.ErrEventNotFound
	}
	return s.findByIDFn(ctx, id)
}

func (s *stubEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, e)
}

func (s *stubEventRepo) Update(ctx context.Context, e *domain.Event) error {
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(ctx, e)
}

func (s *stubEventRepo) Delete(ctx context.Context, id string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

func (s *stubEventRepo) CalendarEntries(ctx context.Context) ([]*domain.Event, error) {
	if s.calendarFn == nil {
		return []*domain.Event{}, nil
	}
	return s.calendarFn(ctx)
}

type stubCourseRepo struct {
	listFn       func(ctx context.Context) ([]*domain.Course, error)
	findByIDFn   func(ctx context.Context, id string) (*domain.Course, error)
	findByCodeFn func(ctx context.Context, code string) (*domain.Course, error)
	createFn     func(ctx context.Context, c *domain.Course) error
	updateFn     func(ctx context.Context, c *domain.Course) error
	deleteFn     func(ctx context.Context, id string) error
}

func (s *stubCourseRepo) List(ctx context.Context) ([]*domain.Course, error) {
	if s.listFn == nil {
		return []*domain.Course{}, nil
	}
	return s.listFn(ctx)
}

func (s *stubCourseRepo) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	if s.findByIDFn == nil {
		return nil, domain.ErrCourseNotFound
	}
	return s.findByIDFn(ctx, id)
}

func (s *stubCourseRepo) FindByCode(ctx context.Context, code string) (*domain.Course, error) {
	if s.findByCodeFn == nil {
		return nil, domain.ErrCourseNotFound
	}
	return s.findByCodeFn(ctx, code)
}

func (s *stubCourseRepo) Create(ctx context.Context, c *domain.Course) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, c)
}

func (s *stubCourseRepo) Update(ctx context.Context, c *domain.Course) error {
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(ctx, c)
}

func (s *stubCourseRepo) Delete(ctx context.Context, id string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

type stubStaffRepo struct {
	listFn     func(ctx context.Context) ([]*domain.Staff, error)
	findByIDFn func(ctx context.Context, id string) (*domain.Staff, error)
	createFn   func(ctx context.Context, st *domain.Staff) error
	updateFn   func(ctx context.Context, st *domain.Staff) error
	deleteFn   func(ctx context.Context, id string) error
}

func (s *stubStaffRepo) List(ctx context.Context) ([]*domain.Staff, error) {
	if s.listFn == nil {
		return []*domain.Staff{}, nil
	}
	return s.listFn(ctx)
}

func (s *stubStaffRepo) FindByID(ctx context.Context, id string) (*domain.Staff, error) {
	if s.findByIDFn == nil {
		return nil, domain.ErrStaffNotFound
	}
	return s.findByIDFn(ctx, id)
}

func (s *stubStaffRepo) Create(ctx context.Context, st *domain.Staff) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, st)
}

func (s *stubStaffRepo) Update(ctx context.Context, st *domain.Staff) error {
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(ctx, st)
}

func (s *stubStaffRepo) Delete(ctx context.Context, id string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

type stubContactRepo struct {
	createFn func(ctx context.Context, m *domain.ContactMessage) error
}

func (s *stubContactRepo) Create(ctx context.Context, m *domain.ContactMessage) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, m)
}

type stubNotifier struct {
	enqueued []ports.ContactNotification
}

func (s *stubNotifier) Enqueue(n ports.ContactNotification) {
	s.enqueued = append(s.enqueued, n)
}

type stubDeduper struct {
	isDuplicateFn func(ctx context.Context, email, message string) (bool, error)
	marked        []string
}

func (s *stubDeduper) IsDuplicate(ctx context.Context, email, message string) (bool, error) {
	if s.isDuplicateFn == nil {
		return false, nil
	}
	return s.isDuplicateFn(ctx, email, message)
}

func (s *stubDeduper) Mark(ctx context.Context, email, message string) error {
	s.marked = append(s.marked, email)
	return nil
}
