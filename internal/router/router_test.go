package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gradekeep/gradebook-backend/internal/config"
	"github.com/gradekeep/gradebook-backend/internal/handler"
)

func testRouter() *gin.Engine {
	cfg := &config.Config{GinMode: gin.TestMode}
	handlers := &Handlers{
		Auth:    handler.NewAuthHandler(nil),
		Account: handler.NewAccountHandler(nil),
		Student: handler.NewStudentHandler(nil),
	}
	return SetupRouter(nil, handlers, cfg)
}

func TestHealthEndpoint(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := w.Body.String(); body != `{"status":"ok"}` {
		t.Errorf("body = %s", body)
	}
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	r := testRouter()

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/users/logout/"},
		{http.MethodPost, "/api/users/register/"},
		{http.MethodGet, "/api/students/"},
		{http.MethodPost, "/api/admin/create/"},
		{http.MethodGet, "/api/admin/list/"},
		{http.MethodGet, "/api/user/profile/"},
	}

	for _, p := range paths {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(p.method, p.path, nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: status = %d, want 401", p.method, p.path, w.Code)
		}
	}
}
