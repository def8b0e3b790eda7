package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gradekeep/gradebook-backend/internal/response"
)

func TestStudentIDValid(t *testing.T) {
	c, _ := handlerContext()
	c.Params = gin.Params{{Key: "id", Value: "7"}}

	id, ok := studentID(c)
	if !ok || id != 7 {
		t.Errorf("got id=%d ok=%v, want 7 true", id, ok)
	}
}

func TestStudentIDUnparseableIs404(t *testing.T) {
	// A path segment that cannot name a record behaves like an unknown id,
	// the way the original URL routing never matches non-numeric segments.
	for _, raw := range []string{"abc", "7x", "", "0", "-3"} {
		c, w := handlerContext()
		c.Params = gin.Params{{Key: "id", Value: raw}}

		if _, ok := studentID(c); ok {
			t.Errorf("id=%q accepted", raw)
			continue
		}
		if w.Code != http.StatusNotFound {
			t.Errorf("id=%q: status = %d, want 404", raw, w.Code)
		}
		var body response.ErrorBody
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("id=%q: json decode: %v", raw, err)
		}
		if body.Code != response.ErrNotFound {
			t.Errorf("id=%q: code = %s, want %s", raw, body.Code, response.ErrNotFound)
		}
	}
}
