package handlers

import (
	"net/http"

	"github.com/dejmenek/pms-backend/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// statusForKind maps an error kind onto its HTTP status.
func statusForKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict:
		return http.StatusConflict
	case apperrors.KindProblem:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

var fallbackError = apperrors.NewFailure("Internal.Error", "An unexpected error occurred.")

// respondWithError writes a service error as JSON with its stable code, the
// human-readable message, and any field violations.
func respondWithError(c *gin.Context, err error) {
	appErr := apperrors.FromError(err, fallbackError)
	body := gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Violations) > 0 {
		body["violations"] = appErr.Violations
	}
	c.JSON(statusForKind(appErr.Kind), body)
}
