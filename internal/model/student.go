package model

import "time"

// Grade is the closed set of letter grades a student record can carry.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

// Grades lists every valid grade, in rank order.
var Grades = []Grade{GradeA, GradeB, GradeC, GradeD}

// ValidGrade reports whether s is a member of the grade enum.
func ValidGrade(s string) bool {
	for _, g := range Grades {
		if string(g) == s {
			return true
		}
	}
	return false
}

// Student represents a student grade record. FinalScore is derived, never
// stored: repositories recompute it on every read.
type Student struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Grade          Grade     `json:"grade"`
	IsActive       bool      `json:"is_active"`
	MidtermScore   int       `json:"midterm_score"`
	FinalExamScore int       `json:"final_exam_score"`
	FinalScore     int       `json:"final_score"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ComputeFinalScore returns midterm + final exam. Holds for negatives too.
func (s *Student) ComputeFinalScore() int {
	return s.MidtermScore + s.FinalExamScore
}

// CreateStudentRequest is the payload for creating a student record.
// Scores are pointers so a literal 0 passes the required check.
// final_score is not a field here: it is computed output only.
type CreateStudentRequest struct {
	Name           string `json:"name" binding:"required,max=255"`
	Grade          Grade  `json:"grade" binding:"required,oneof=A B C D"`
	IsActive       *bool  `json:"is_active"`
	MidtermScore   *int   `json:"midterm_score" binding:"required"`
	FinalExamScore *int   `json:"final_exam_score" binding:"required"`
}

// UpdateStudentRequest is the payload for a full (PUT) update.
type UpdateStudentRequest struct {
	Name           string `json:"name" binding:"required,max=255"`
	Grade          Grade  `json:"grade" binding:"required,oneof=A B C D"`
	IsActive       *bool  `json:"is_active"`
	MidtermScore   *int   `json:"midterm_score" binding:"required"`
	FinalExamScore *int   `json:"final_exam_score" binding:"required"`
}

// PatchStudentRequest is the payload for a partial (PATCH) update.
// Absent fields keep their stored values.
type PatchStudentRequest struct {
	Name           *string `json:"name" binding:"omitempty,max=255"`
	Grade          *Grade  `json:"grade" binding:"omitempty,oneof=A B C D"`
	IsActive       *bool   `json:"is_active"`
	MidtermScore   *int    `json:"midterm_score"`
	FinalExamScore *int    `json:"final_exam_score"`
}

// ScoreFilter holds the comparison operators applied to one score column.
// All set operators apply together (logical AND).
type ScoreFilter struct {
	Eq  *int
	Lt  *int
	Lte *int
	Gt  *int
	Gte *int
}

// Empty reports whether no operator is set.
func (f ScoreFilter) Empty() bool {
	return f.Eq == nil && f.Lt == nil && f.Lte == nil && f.Gt == nil && f.Gte == nil
}

// StudentFilter is the parsed list query: every set member narrows the
// result set, all members compose with AND.
type StudentFilter struct {
	Grade     *Grade
	Midterm   ScoreFilter
	FinalExam ScoreFilter
	Search    string // case-insensitive substring on name
	OrderBy   string // one of name, grade, midterm_score, final_exam_score
	Desc      bool
	Page      int
}
