package services

import (
	"context"
	"strings"

	"github.com/rajni12071985-debug/pragati/internal/app/models"
)

// studentStore is the slice of the student repository StudentService needs.
type studentStore interface {
	GetByID(ctx context.Context, id string) (*models.Student, error)
	List(ctx context.Context, interests []string) ([]models.Student, error)
	UpdateInterests(ctx context.Context, studentID string, interests []string) error
	Delete(ctx context.Context, id string) error
}

// StudentService handles student profile and discovery operations
type StudentService struct {
	students studentStore
}

// NewStudentService creates a new StudentService
func NewStudentService(students studentStore) *StudentService {
	return &StudentService{students: students}
}

// GetStudent retrieves a student profile with derived associations
func (s *StudentService) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// ListStudents lists students, optionally narrowed to those sharing at
// least one of the given interests. Blank filter entries are dropped.
func (s *StudentService) ListStudents(ctx context.Context, interests []string) ([]models.Student, error) {
	filtered := make([]string, 0, len(interests))
	for _, interest := range interests {
		if trimmed := strings.TrimSpace(interest); trimmed != "" {
			filtered = append(filtered, trimmed)
		}
	}
	return s.students.List(ctx, filtered)
}

// UpdateInterests replaces a student's interest set. Duplicates in the
// submitted list collapse to one entry.
func (s *StudentService) UpdateInterests(ctx context.Context, studentID string, interests []string) error {
	seen := make(map[string]struct{}, len(interests))
	unique := make([]string, 0, len(interests))
	for _, interest := range interests {
		trimmed := strings.TrimSpace(interest)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		unique = append(unique, trimmed)
	}
	return s.students.UpdateInterests(ctx, studentID, unique)
}

// DeleteStudent removes a student and everything hanging off the record
func (s *StudentService) DeleteStudent(ctx context.Context, id string) error {
	if _, err := s.students.GetByID(ctx, id); err != nil {
		return err
	}
	return s.students.Delete(ctx, id)
}
