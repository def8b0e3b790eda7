package repository

import (
	"testing"

	"github.com/gradekeep/gradebook-backend/internal/model"
)

func intPtr(n int) *int { return &n }

func TestBuildStudentWhereEmpty(t *testing.T) {
	clause, args := buildStudentWhere(&model.StudentFilter{})
	if clause != "" {
		t.Errorf("expected empty clause, got %q", clause)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestBuildStudentWhereGrade(t *testing.T) {
	g := model.GradeB
	clause, args := buildStudentWhere(&model.StudentFilter{Grade: &g})

	if clause != " WHERE grade = $1" {
		t.Errorf("unexpected clause: %q", clause)
	}
	if len(args) != 1 || args[0] != "B" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildStudentWhereScoreOperators(t *testing.T) {
	f := &model.StudentFilter{
		Midterm:   model.ScoreFilter{Gte: intPtr(50), Lt: intPtr(90)},
		FinalExam: model.ScoreFilter{Eq: intPtr(75)},
	}
	clause, args := buildStudentWhere(f)

	want := " WHERE midterm_score < $1 AND midterm_score >= $2 AND final_exam_score = $3"
	if clause != want {
		t.Errorf("clause = %q, want %q", clause, want)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %v", args)
	}
	if args[0] != 90 || args[1] != 50 || args[2] != 75 {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildStudentWhereCombined(t *testing.T) {
	g := model.GradeA
	f := &model.StudentFilter{
		Grade:   &g,
		Midterm: model.ScoreFilter{Gt: intPtr(60)},
		Search:  "ann",
	}
	clause, args := buildStudentWhere(f)

	want := " WHERE grade = $1 AND midterm_score > $2 AND name ILIKE $3"
	if clause != want {
		t.Errorf("clause = %q, want %q", clause, want)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %v", args)
	}
	if args[2] != "%ann%" {
		t.Errorf("search arg = %v, want %%ann%%", args[2])
	}
}

func TestBuildStudentWhereEscapesSearch(t *testing.T) {
	_, args := buildStudentWhere(&model.StudentFilter{Search: `50%_a\b`})
	if len(args) != 1 {
		t.Fatalf("expected 1 arg, got %v", args)
	}
	want := `%50\%\_a\\b%`
	if args[0] != want {
		t.Errorf("escaped arg = %q, want %q", args[0], want)
	}
}

func TestStudentOrderClause(t *testing.T) {
	cases := []struct {
		name    string
		orderBy string
		desc    bool
		want    string
	}{
		{"default", "", false, " ORDER BY id ASC"},
		{"unknown column", "password_hash", false, " ORDER BY id ASC"},
		{"name asc", "name", false, " ORDER BY name ASC, id ASC"},
		{"grade desc", "grade", true, " ORDER BY grade DESC, id ASC"},
		{"score asc", "final_exam_score", false, " ORDER BY final_exam_score ASC, id ASC"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := studentOrderClause(&model.StudentFilter{OrderBy: tc.orderBy, Desc: tc.desc})
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestOrderableStudentColumn(t *testing.T) {
	for _, col := range []string{"name", "grade", "midterm_score", "final_exam_score"} {
		if !OrderableStudentColumn(col) {
			t.Errorf("%s should be orderable", col)
		}
	}
	for _, col := range []string{"", "id", "final_score", "name; DROP TABLE students"} {
		if OrderableStudentColumn(col) {
			t.Errorf("%s should not be orderable", col)
		}
	}
}
