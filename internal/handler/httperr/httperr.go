package httperr

import (
	"net/http"

	"stayhub/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps an error kind marker to its HTTP status. Unmarked errors are 500.
func StatusOf(err error) int {
	switch errs.KindOf(err) {
	case errs.ErrInvalidInput:
		return http.StatusBadRequest
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrForbidden:
		return http.StatusForbidden
	case errs.ErrConflict:
		return http.StatusConflict
	case errs.ErrUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
