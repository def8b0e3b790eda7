package service

import (
	"context"

	"github.com/gradekeep/gradebook-backend/internal/model"
	"github.com/gradekeep/gradebook-backend/internal/repository"
)

// StudentPageSize is the fixed page size of the student list endpoint.
const StudentPageSize = 10

// StudentService handles student record business logic.
type StudentService struct {
	students *repository.StudentRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(students *repository.StudentRepository) *StudentService {
	return &StudentService{students: students}
}

// GetByID retrieves a student record by ID.
func (s *StudentService) GetByID(ctx context.Context, id int) (*model.Student, error) {
	return s.students.GetByID(ctx, id)
}

// List retrieves the filter's page of students plus the total match count.
// A page beyond the last yields an empty slice with the count intact.
func (s *StudentService) List(ctx context.Context, f *model.StudentFilter) ([]model.Student, int, error) {
	page := f.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * StudentPageSize
	return s.students.List(ctx, f, StudentPageSize, offset)
}

// Create inserts a new student record. is_active defaults to true.
func (s *StudentService) Create(ctx context.Context, req *model.CreateStudentRequest) (*model.Student, error) {
	student := &model.Student{
		Name:           req.Name,
		Grade:          req.Grade,
		IsActive:       true,
		MidtermScore:   *req.MidtermScore,
		FinalExamScore: *req.FinalExamScore,
	}
	if req.IsActive != nil {
		student.IsActive = *req.IsActive
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Update overwrites every client-writable field of an existing record.
func (s *StudentService) Update(ctx context.Context, id int, req *model.UpdateStudentRequest) (*model.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	student.Name = req.Name
	student.Grade = req.Grade
	student.MidtermScore = *req.MidtermScore
	student.FinalExamScore = *req.FinalExamScore
	// A full update with is_active omitted resets it to the default; only
	// PATCH preserves the stored value for absent fields.
	student.IsActive = true
	if req.IsActive != nil {
		student.IsActive = *req.IsActive
	}

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Patch applies only the fields present in the payload.
func (s *StudentService) Patch(ctx context.Context, id int, req *model.PatchStudentRequest) (*model.Student, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Grade != nil {
		student.Grade = *req.Grade
	}
	if req.IsActive != nil {
		student.IsActive = *req.IsActive
	}
	if req.MidtermScore != nil {
		student.MidtermScore = *req.MidtermScore
	}
	if req.FinalExamScore != nil {
		student.FinalExamScore = *req.FinalExamScore
	}

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Delete removes a student record by ID.
func (s *StudentService) Delete(ctx context.Context, id int) error {
	return s.students.Delete(ctx, id)
}
