package repository

import (
	"strconv"
	"strings"

	"github.com/gradekeep/gradebook-backend/internal/model"
)

// studentOrderColumns are the only columns the list endpoint may sort by.
// final_score is deliberately absent: it is derived output, not a column.
var studentOrderColumns = map[string]bool{
	"name":             true,
	"grade":            true,
	"midterm_score":    true,
	"final_exam_score": true,
}

// OrderableStudentColumn reports whether col is a permitted ordering key.
func OrderableStudentColumn(col string) bool {
	return studentOrderColumns[col]
}

// buildStudentWhere renders the filter into a WHERE clause and its args.
// Returns an empty clause when no filter is set. All predicates AND together.
func buildStudentWhere(f *model.StudentFilter) (string, []any) {
	var conds []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if f.Grade != nil {
		conds = append(conds, "grade = "+arg(string(*f.Grade)))
	}
	appendScore("midterm_score", f.Midterm, &conds, arg)
	appendScore("final_exam_score", f.FinalExam, &conds, arg)

	if f.Search != "" {
		conds = append(conds, "name ILIKE "+arg("%"+escapeLike(f.Search)+"%"))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func appendScore(col string, sf model.ScoreFilter, conds *[]string, arg func(any) string) {
	if sf.Eq != nil {
		*conds = append(*conds, col+" = "+arg(*sf.Eq))
	}
	if sf.Lt != nil {
		*conds = append(*conds, col+" < "+arg(*sf.Lt))
	}
	if sf.Lte != nil {
		*conds = append(*conds, col+" <= "+arg(*sf.Lte))
	}
	if sf.Gt != nil {
		*conds = append(*conds, col+" > "+arg(*sf.Gt))
	}
	if sf.Gte != nil {
		*conds = append(*conds, col+" >= "+arg(*sf.Gte))
	}
}

// studentOrderClause renders the ORDER BY clause. Unfiltered listings sort
// by id so pages stay stable; an explicit key gets id as a tiebreaker.
func studentOrderClause(f *model.StudentFilter) string {
	if f.OrderBy == "" || !studentOrderColumns[f.OrderBy] {
		return " ORDER BY id ASC"
	}
	dir := " ASC"
	if f.Desc {
		dir = " DESC"
	}
	return " ORDER BY " + f.OrderBy + dir + ", id ASC"
}

// escapeLike escapes ILIKE metacharacters in user-supplied search text.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
