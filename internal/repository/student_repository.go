package repository

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gradekeep/gradebook-backend/internal/model"
)

const studentColumns = `id, name, grade, is_active, midterm_score, final_exam_score, created_at, updated_at`

// StudentRepository handles student record data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

func scanStudent(row interface{ Scan(...any) error }) (*model.Student, error) {
	s := &model.Student{}
	err := row.Scan(&s.ID, &s.Name, &s.Grade, &s.IsActive,
		&s.MidtermScore, &s.FinalExamScore, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.FinalScore = s.ComputeFinalScore()
	return s, nil
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = $1`, id))
}

// List retrieves students matching the filter, plus the total match count.
func (r *StudentRepository) List(ctx context.Context, f *model.StudentFilter, limit, offset int) ([]model.Student, int, error) {
	where, args := buildStudentWhere(f)

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM students`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + studentColumns + ` FROM students` + where + studentOrderClause(f)
	query += ` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	students := []model.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, 0, err
		}
		students = append(students, *s)
	}
	return students, total, rows.Err()
}

// Create inserts a new student record.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students (name, grade, is_active, midterm_score, final_exam_score)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		s.Name, s.Grade, s.IsActive, s.MidtermScore, s.FinalExamScore,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return err
	}
	s.FinalScore = s.ComputeFinalScore()
	return nil
}

// Update overwrites a student's client-writable fields.
// Returns pgx.ErrNoRows for an unknown ID.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE students
		 SET name = $1, grade = $2, is_active = $3, midterm_score = $4,
		     final_exam_score = $5, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $6
		 RETURNING created_at, updated_at`,
		s.Name, s.Grade, s.IsActive, s.MidtermScore, s.FinalExamScore, s.ID,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return err
	}
	s.FinalScore = s.ComputeFinalScore()
	return nil
}

// Delete removes a student by ID. Returns pgx.ErrNoRows for an unknown ID.
func (r *StudentRepository) Delete(ctx context.Context, id int) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
