package model

import "testing"

func TestComputeFinalScore(t *testing.T) {
	cases := []struct {
		name    string
		midterm int
		final   int
		want    int
	}{
		{"typical", 70, 85, 155},
		{"zeros", 0, 0, 0},
		{"negative inputs", -10, 5, -5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &Student{MidtermScore: tc.midterm, FinalExamScore: tc.final}
			if got := s.ComputeFinalScore(); got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestValidGrade(t *testing.T) {
	for _, g := range []string{"A", "B", "C", "D"} {
		if !ValidGrade(g) {
			t.Errorf("%s should be valid", g)
		}
	}
	for _, g := range []string{"", "E", "F", "a", "AA"} {
		if ValidGrade(g) {
			t.Errorf("%q should be invalid", g)
		}
	}
}
