package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gradekeep/gradebook-backend/internal/repository"
	"github.com/gradekeep/gradebook-backend/internal/response"
	"github.com/gradekeep/gradebook-backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func handlerContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	return c, w
}

func TestFailAccountErrorDuplicateUser(t *testing.T) {
	// Two concurrent creations can both pass the existence checks; the
	// loser's unique violation must still come back as a 400 conflict.
	c, w := handlerContext()

	failAccountError(c, repository.ErrDuplicateUser)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var body response.ErrorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json decode: %v", err)
	}
	if body.Code != response.ErrConflict {
		t.Errorf("code = %s, want %s", body.Code, response.ErrConflict)
	}
	if body.Detail == "" {
		t.Error("conflict body missing detail message")
	}
}

func TestFailAccountErrorFieldErrors(t *testing.T) {
	c, w := handlerContext()

	failAccountError(c, service.FieldErrors{"username": "A user with this username already exists."})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var fields map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &fields); err != nil {
		t.Fatalf("json decode: %v", err)
	}
	if fields["username"] == "" {
		t.Errorf("body = %v, want username error", fields)
	}
}

func TestFailAccountErrorUnknown(t *testing.T) {
	c, w := handlerContext()

	failAccountError(c, errors.New("connection reset"))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}
