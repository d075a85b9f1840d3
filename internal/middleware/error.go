package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/bfpulse/internal/domain/dto"
	"github.com/guttosm/bfpulse/internal/logger"
)

// ErrorHandler renders the last error attached with c.Error() as a
// dto.ErrorResponse when the handler did not write a body itself.
// The handler's status is kept when it is already an error status; otherwise
// the response is 500.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	var resp dto.ErrorResponse
	if !errors.As(err, &resp) {
		resp = dto.NewErrorResponse("Internal server error", err)
	}

	status := c.Writer.Status()
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	c.JSON(status, resp)
}

// AbortWithError stops the chain and answers with status and a standard
// error body. The error is also recorded on the context for the request log.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	resp := dto.NewErrorResponse(message, err)
	_ = c.Error(resp)

	rid, _ := c.Get(RequestIDKey)
	logger.L().Warn().
		Str("request_id", toString(rid)).
		Int("status", status).
		Str("path", c.Request.URL.Path).
		Str("error", resp.Error()).
		Msg("request rejected")

	c.AbortWithStatusJSON(status, resp)
}
