package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/reviewpulse/sentiment-api/internal/usecase"
)

// CurrentUserKey is the gin context key under which the auth middleware
// stores the authenticated user.
const CurrentUserKey = "current_user"

// CurrentUser returns the authenticated user placed in the context by the
// auth middleware.
func CurrentUser(c *gin.Context) (*usecase.UserOutput, bool) {
	value, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*usecase.UserOutput)
	return user, ok
}
