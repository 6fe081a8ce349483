package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	apierrors "github.com/yukikurage/task-assignment-api/internal/errors"
	"github.com/yukikurage/task-assignment-api/internal/validation"
)

// ErrorHandler turns the last error a handler attached with c.Error into a
// plain-text response. Unclassified errors are logged and hidden behind a 500.
func ErrorHandler(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, message := Translate(err)
		if status == http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Msg("unhandled error")
		}

		c.String(status, message)
	}
}

// Translate maps an error to the status and body shown to the client.
func Translate(err error) (int, string) {
	if apiErr, ok := apierrors.As(err); ok {
		return apiErr.Status, apiErr.Message
	}
	if vErr, ok := validation.AsError(err); ok {
		return http.StatusBadRequest, vErr.Error()
	}
	return apierrors.ErrInternalError.Status, apierrors.ErrInternalError.Message
}

// Recovery answers a panicking request with the generic 500 body.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().
			Interface("panic", recovered).
			Str("request_id", GetRequestID(c)).
			Str("path", c.Request.URL.Path).
			Msg("recovered from panic")
		c.String(apierrors.ErrInternalError.Status, apierrors.ErrInternalError.Message)
		c.Abort()
	})
}
