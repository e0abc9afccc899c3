package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yigit/sporthub/internal/app/models/dto"
	"github.com/yigit/sporthub/internal/pkg/apperrors"
)

type errorMapping struct {
	target error
	status int
	code   dto.ErrorCode
}

// Checked in order; the first match wins.
var errorMappings = []errorMapping{
	{apperrors.ErrTokenMissing, http.StatusUnauthorized, dto.ErrorCodeTokenNotFound},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, dto.ErrorCodeUnauthorized},
	{apperrors.ErrUnsupportedFileType, http.StatusBadRequest, dto.ErrorCodeUnsupportedFileType},
	{apperrors.ErrFileRequired, http.StatusBadRequest, dto.ErrorCodeFileRequired},
	{apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
	{apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
	{apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
}

const internalMessage = "internal error"

// HandleAPIError writes the error body for err. Taxonomy errors keep their
// message; anything else is a 500 whose cause is logged, not returned.
func HandleAPIError(c *gin.Context, err error) {
	status, body := ErrorResponseFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Str("request_id", c.GetString(ContextRequestID)).
			Msg("Request failed")
	}
	c.AbortWithStatusJSON(status, body)
}

// ErrorResponseFor maps err onto a status code and error body.
func ErrorResponseFor(err error) (int, *dto.ErrorResponse) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			msg := apperrors.PublicMessage(err)
			if msg == "" {
				msg = m.target.Error()
			}
			return m.status, dto.NewErrorResponse(m.code, msg)
		}
	}

	msg := apperrors.PublicMessage(err)
	if msg == "" {
		msg = internalMessage
	}
	return http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeInternalServer, msg)
}

// Recovery turns a panic into a logged 500 with the usual error body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("request_id", c.GetString(ContextRequestID)).
			Msg("Recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			dto.NewErrorResponse(dto.ErrorCodeInternalServer, internalMessage))
	})
}
