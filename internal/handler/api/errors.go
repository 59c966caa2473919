package api

import (
	"log/slog"
	"net/http"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingCaller = errs.New("authenticated user missing from context")
	errInvalidID     = errs.Mark(errs.New("invalid id"), errs.ErrInvalidInput)
)

// respondError turns a use case error into the JSON error envelope.
// Conflicts carry the overlapping bookings in detail.
func respondError(c *gin.Context, err error) {
	status := httperr.StatusOf(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"path", c.Request.URL.Path,
			"request_id", middleware.GetRequestID(c),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12))
	}

	var detail any
	if d := resdto.ConflictDetailOf(err); d != nil {
		detail = d
	}
	httperr.AbortWithError(c, status, err, publicMessage(status, err), detail)
}

func publicMessage(status int, err error) string {
	switch {
	case status == http.StatusServiceUnavailable:
		return "Service temporarily unavailable"
	case status >= http.StatusInternalServerError:
		return "Internal server error"
	default:
		return errs.Cause(err).Error()
	}
}

func respondBindError(c *gin.Context, err error) {
	msg := "Invalid request format"
	if errs.Is(err, reqdto.ErrInvalidDate) {
		msg = reqdto.ErrInvalidDate.Error()
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}

func callerID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingCaller, "Internal server error", nil)
		return uuid.Nil, false
	}
	return userID, true
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidID), "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}
