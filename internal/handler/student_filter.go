package handler

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gradekeep/gradebook-backend/internal/model"
	"github.com/gradekeep/gradebook-backend/internal/repository"
)

// parseStudentFilter turns the list query string into a StudentFilter.
// Invalid values are rejected with field-keyed messages rather than
// silently ignored, so a typo'd filter never returns misleading results.
//
// Recognized parameters: grade, search, ordering, page, and
// {midterm_score,final_exam_score} with optional __lt/__lte/__gt/__gte
// suffixes.
func parseStudentFilter(query url.Values) (*model.StudentFilter, map[string]string) {
	filter := &model.StudentFilter{Page: 1}
	fields := map[string]string{}

	if raw := query.Get("grade"); raw != "" {
		if !model.ValidGrade(raw) {
			fields["grade"] = "Select a valid choice. " + raw + " is not one of the available choices."
		} else {
			g := model.Grade(raw)
			filter.Grade = &g
		}
	}

	filter.Midterm = parseScoreFilter(query, "midterm_score", fields)
	filter.FinalExam = parseScoreFilter(query, "final_exam_score", fields)

	filter.Search = strings.TrimSpace(query.Get("search"))

	if raw := query.Get("ordering"); raw != "" {
		col := raw
		if strings.HasPrefix(col, "-") {
			filter.Desc = true
			col = col[1:]
		}
		if !repository.OrderableStudentColumn(col) {
			fields["ordering"] = "Ordering must be one of: name, grade, midterm_score, final_exam_score."
		} else {
			filter.OrderBy = col
		}
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			fields["page"] = "Page must be a positive integer."
		} else {
			filter.Page = page
		}
	}

	return filter, fields
}

func parseScoreFilter(query url.Values, column string, fields map[string]string) model.ScoreFilter {
	var sf model.ScoreFilter
	for suffix, dst := range map[string]**int{
		"":      &sf.Eq,
		"__lt":  &sf.Lt,
		"__lte": &sf.Lte,
		"__gt":  &sf.Gt,
		"__gte": &sf.Gte,
	} {
		param := column + suffix
		raw := query.Get(param)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			fields[param] = "Enter a whole number."
			continue
		}
		*dst = &n
	}
	return sf
}
