package http

import (
	"seminary/pkg/apperr"
	"seminary/pkg/logger"
	"seminary/services/seminary/internal/entity"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"lecture not found"`
	Code  string `json:"code" example:"NOT_FOUND"`
}

// respondError writes the classified error. Server-side failures are
// logged with their cause; the client only sees the public message.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	kind := apperr.KindOf(err)
	status := kind.Status()
	if status >= 500 {
		log.Error("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(status, ErrorResponse{
		Error: apperr.PublicMessage(err),
		Code:  string(kind),
	})
}

// contextUser holds the stored account resolved by AuthHandler.RequireAdmin.
const contextUser = "user"

// caller is the account resolved for this request, nil when the route is
// not behind RequireAdmin.
func caller(c *gin.Context) *entity.User {
	v, ok := c.Get(contextUser)
	if !ok {
		return nil
	}
	user, _ := v.(*entity.User)
	return user
}
