package server

import (
	"errors"

	"github.com/carinspectinator/car-service/internal/apierror"
	cardomain "github.com/carinspectinator/car-service/internal/car/domain"
	"github.com/gin-gonic/gin"
)

// ErrorHandlingMiddleware translates errors collected on the gin context
// into the error-taxonomy response shape. Handlers report failures with
// AbortWithError and never write error bodies themselves.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		apiErr := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(apiErr.StatusCode, apiErr)
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) *apierror.Error {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var fieldErr *cardomain.FieldError
	if errors.As(err, &fieldErr) {
		return apierror.BadRequest(fieldErr.Error())
	}

	switch {
	case errors.Is(err, cardomain.ErrInvalidID):
		return apierror.BadRequest("carId is required")
	case errors.Is(err, cardomain.ErrNotFound):
		return apierror.NotFound("")
	default:
		return apierror.Internal("")
	}
}
