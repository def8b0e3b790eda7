package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gradekeep/gradebook-backend/internal/model"
	"github.com/gradekeep/gradebook-backend/internal/response"
)

// Predicate decides whether a resolved caller may proceed. Authorization is
// an ordered list of these evaluated before the handler body, not a class
// hierarchy.
type Predicate func(*model.User) bool

// Staff admits staff accounts. Guards the student CRUD surface.
func Staff(u *model.User) bool {
	return u.IsStaff
}

// Admin admits staff or superuser accounts. Guards admin management and
// registration.
func Admin(u *model.User) bool {
	return u.IsStaff || u.IsSuperuser
}

// Require evaluates predicates in order against the resolved caller and
// aborts with 403 on the first failure. Must run after RequireAuth.
func Require(preds ...Predicate) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetUser(c)
		if user == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		for _, pred := range preds {
			if !pred(user) {
				response.AbortFail(c, http.StatusForbidden, response.ErrForbidden)
				return
			}
		}

		c.Next()
	}
}
