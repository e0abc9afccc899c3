// Package controllers handles HTTP request handling
package controllers

import (
	"mime/multipart"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/sporthub/internal/app/models/dto"
	"github.com/yigit/sporthub/internal/middleware"
	"github.com/yigit/sporthub/internal/pkg/apperrors"
	"github.com/yigit/sporthub/internal/pkg/filestorage"
)

// parseIDParam reads a numeric path parameter. A value that is not a positive
// integer cannot name a row, so it gets the same 404 as a missing one.
func parseIDParam(ctx *gin.Context, name, notFound string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		middleware.HandleAPIError(ctx, apperrors.NewResourceNotFoundError(notFound))
		return 0, false
	}
	return id, true
}

// currentUserID returns the id JWTAuth put in the context. Routes using it
// are always behind JWTAuth; a missing value is treated as no token.
func currentUserID(ctx *gin.Context) (int64, bool) {
	id, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenMissing)
		return 0, false
	}
	return id, true
}

// bindRequest binds JSON or form fields by content type. Any failure is
// answered with the handler's own 400 message.
func bindRequest(ctx *gin.Context, lgr zerolog.Logger, req any, message string) bool {
	if err := ctx.ShouldBind(req); err != nil {
		lgr.Debug().Str("reason", middleware.DescribeBindingError(err)).Msg("Request binding failed")
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError(message))
		return false
	}
	return true
}

// optionalUpload returns the multipart file under field, or nil when the
// request carries none. A file of a disallowed type is rejected here, before
// any other field is looked at.
func optionalUpload(ctx *gin.Context, storage filestorage.FileStorage, field string) (*multipart.FileHeader, bool) {
	fh, err := ctx.FormFile(field)
	if err != nil {
		// http.ErrMissingFile, or a body that is not multipart at all
		return nil, true
	}
	if _, err := storage.CheckType(fh); err != nil {
		middleware.HandleAPIError(ctx, err)
		return nil, false
	}
	return fh, true
}

func respondMessage(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, dto.SuccessResponse{Message: message})
}
