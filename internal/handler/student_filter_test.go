package handler

import (
	"net/url"
	"testing"

	"github.com/gradekeep/gradebook-backend/internal/model"
)

func TestParseStudentFilterDefaults(t *testing.T) {
	filter, fields := parseStudentFilter(url.Values{})
	if len(fields) != 0 {
		t.Fatalf("unexpected field errors: %v", fields)
	}
	if filter.Page != 1 {
		t.Errorf("page = %d, want 1", filter.Page)
	}
	if filter.Grade != nil || filter.Search != "" || filter.OrderBy != "" {
		t.Error("empty query should yield an unconstrained filter")
	}
	if !filter.Midterm.Empty() || !filter.FinalExam.Empty() {
		t.Error("empty query should yield empty score filters")
	}
}

func TestParseStudentFilterGrade(t *testing.T) {
	q := url.Values{}
	q.Set("grade", "B")

	filter, fields := parseStudentFilter(q)
	if len(fields) != 0 {
		t.Fatalf("unexpected field errors: %v", fields)
	}
	if filter.Grade == nil || *filter.Grade != model.GradeB {
		t.Errorf("grade = %v, want B", filter.Grade)
	}
}

func TestParseStudentFilterInvalidGrade(t *testing.T) {
	q := url.Values{}
	q.Set("grade", "Z")

	_, fields := parseStudentFilter(q)
	if _, ok := fields["grade"]; !ok {
		t.Errorf("expected grade error, got %v", fields)
	}
}

func TestParseStudentFilterScoreSuffixes(t *testing.T) {
	q := url.Values{}
	q.Set("midterm_score__gte", "50")
	q.Set("midterm_score__lt", "90")
	q.Set("final_exam_score", "75")

	filter, fields := parseStudentFilter(q)
	if len(fields) != 0 {
		t.Fatalf("unexpected field errors: %v", fields)
	}
	if filter.Midterm.Gte == nil || *filter.Midterm.Gte != 50 {
		t.Errorf("midterm gte = %v, want 50", filter.Midterm.Gte)
	}
	if filter.Midterm.Lt == nil || *filter.Midterm.Lt != 90 {
		t.Errorf("midterm lt = %v, want 90", filter.Midterm.Lt)
	}
	if filter.FinalExam.Eq == nil || *filter.FinalExam.Eq != 75 {
		t.Errorf("final exam eq = %v, want 75", filter.FinalExam.Eq)
	}
}

func TestParseStudentFilterBadScore(t *testing.T) {
	q := url.Values{}
	q.Set("midterm_score__gte", "high")

	_, fields := parseStudentFilter(q)
	if msg, ok := fields["midterm_score__gte"]; !ok || msg != "Enter a whole number." {
		t.Errorf("expected whole-number error keyed by parameter, got %v", fields)
	}
}

func TestParseStudentFilterOrdering(t *testing.T) {
	q := url.Values{}
	q.Set("ordering", "-final_exam_score")

	filter, fields := parseStudentFilter(q)
	if len(fields) != 0 {
		t.Fatalf("unexpected field errors: %v", fields)
	}
	if filter.OrderBy != "final_exam_score" || !filter.Desc {
		t.Errorf("ordering parsed as %q desc=%v", filter.OrderBy, filter.Desc)
	}
}

func TestParseStudentFilterInvalidOrdering(t *testing.T) {
	q := url.Values{}
	q.Set("ordering", "password")

	_, fields := parseStudentFilter(q)
	if _, ok := fields["ordering"]; !ok {
		t.Errorf("expected ordering error, got %v", fields)
	}
}

func TestParseStudentFilterPage(t *testing.T) {
	q := url.Values{}
	q.Set("page", "3")

	filter, fields := parseStudentFilter(q)
	if len(fields) != 0 {
		t.Fatalf("unexpected field errors: %v", fields)
	}
	if filter.Page != 3 {
		t.Errorf("page = %d, want 3", filter.Page)
	}

	for _, bad := range []string{"0", "-1", "abc"} {
		q.Set("page", bad)
		_, fields := parseStudentFilter(q)
		if _, ok := fields["page"]; !ok {
			t.Errorf("page=%q: expected page error, got %v", bad, fields)
		}
	}
}

func TestParseStudentFilterCollectsAllErrors(t *testing.T) {
	q := url.Values{}
	q.Set("grade", "Z")
	q.Set("ordering", "nope")
	q.Set("page", "zero")

	_, fields := parseStudentFilter(q)
	if len(fields) != 3 {
		t.Errorf("expected 3 field errors together, got %v", fields)
	}
}

func TestParseStudentFilterTrimsSearch(t *testing.T) {
	q := url.Values{}
	q.Set("search", "  ann  ")

	filter, fields := parseStudentFilter(q)
	if len(fields) != 0 {
		t.Fatalf("unexpected field errors: %v", fields)
	}
	if filter.Search != "ann" {
		t.Errorf("search = %q, want %q", filter.Search, "ann")
	}
}
