package response

import (
	"net/url"
	"testing"
)

func TestNewPageSinglePage(t *testing.T) {
	p := NewPage("/api/students/", url.Values{}, 1, 10, 7, []int{1, 2, 3})

	if p.Count != 7 {
		t.Errorf("count = %d, want 7", p.Count)
	}
	if p.Next != nil {
		t.Errorf("next = %v, want nil", *p.Next)
	}
	if p.Previous != nil {
		t.Errorf("previous = %v, want nil", *p.Previous)
	}
}

func TestNewPageEmpty(t *testing.T) {
	p := NewPage("/api/students/", url.Values{}, 1, 10, 0, []int{})

	if p.Count != 0 {
		t.Errorf("count = %d, want 0", p.Count)
	}
	if p.Next != nil || p.Previous != nil {
		t.Error("empty result set should have no page links")
	}
}

func TestNewPageMiddle(t *testing.T) {
	p := NewPage("/api/students/", url.Values{}, 2, 10, 25, nil)

	if p.Next == nil || *p.Next != "/api/students/?page=3" {
		t.Errorf("next = %v, want /api/students/?page=3", p.Next)
	}
	if p.Previous == nil || *p.Previous != "/api/students/?page=1" {
		t.Errorf("previous = %v, want /api/students/?page=1", p.Previous)
	}
}

func TestNewPageLast(t *testing.T) {
	p := NewPage("/api/students/", url.Values{}, 3, 10, 25, nil)

	if p.Next != nil {
		t.Errorf("next = %v, want nil", *p.Next)
	}
	if p.Previous == nil || *p.Previous != "/api/students/?page=2" {
		t.Errorf("previous = %v, want /api/students/?page=2", p.Previous)
	}
}

func TestNewPageKeepsQuery(t *testing.T) {
	query := url.Values{}
	query.Set("grade", "A")
	query.Set("ordering", "-name")
	query.Set("page", "1")

	p := NewPage("/api/students/", query, 1, 10, 30, nil)

	if p.Next == nil {
		t.Fatal("expected next link")
	}
	u, err := url.Parse(*p.Next)
	if err != nil {
		t.Fatalf("next link does not parse: %v", err)
	}
	q := u.Query()
	if q.Get("grade") != "A" || q.Get("ordering") != "-name" {
		t.Errorf("filter params dropped from link: %s", *p.Next)
	}
	if q.Get("page") != "2" {
		t.Errorf("page = %s, want 2", q.Get("page"))
	}

	// The caller's url.Values must not be mutated.
	if query.Get("page") != "1" {
		t.Errorf("caller query mutated: page = %s", query.Get("page"))
	}
}
