package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sporthub/internal/app/models/dto"
	"github.com/yigit/sporthub/internal/pkg/apperrors"
	"github.com/yigit/sporthub/internal/pkg/auth"
	"github.com/yigit/sporthub/internal/pkg/logger"
	"github.com/yigit/sporthub/internal/pkg/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode error body %q: %v", w.Body.String(), err)
	}
	return body
}

func newAuthRouter(jwtService *auth.JWTService) *gin.Engine {
	router := gin.New()
	router.Use(NewAuthMiddleware(jwtService).JWTAuth())
	router.GET("/me", func(c *gin.Context) {
		id, ok := GetUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id, "email": c.GetString(ContextEmail), "role": c.GetString(ContextRole)})
	})
	return router
}

func TestJWTAuth(t *testing.T) {
	jwtService := auth.NewJWTService("secret")
	router := newAuthRouter(jwtService)

	valid, err := jwtService.GenerateToken(7, "a@x.com", "user")
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	foreign, err := auth.NewJWTService("other").GenerateToken(7, "a@x.com", "user")
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
		wantCode   dto.ErrorCode
	}{
		{"no header", "", http.StatusUnauthorized, "missing token", dto.ErrorCodeTokenNotFound},
		{"no bearer scheme", valid, http.StatusUnauthorized, "missing token", dto.ErrorCodeTokenNotFound},
		{"garbage token", "Bearer nope", http.StatusUnauthorized, "invalid token", dto.ErrorCodeInvalidToken},
		{"wrong key", "Bearer " + foreign, http.StatusUnauthorized, "invalid token", dto.ErrorCodeInvalidToken},
		{"valid", "Bearer " + valid, http.StatusOK, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("Expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantStatus != http.StatusOK {
				body := decodeError(t, w)
				if body.Error != tt.wantError || body.Code != tt.wantCode {
					t.Errorf("Expected %s/%s, got %s/%s", tt.wantError, tt.wantCode, body.Error, body.Code)
				}
				return
			}

			var got struct {
				ID    int64  `json:"id"`
				Email string `json:"email"`
				Role  string `json:"role"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("Failed to decode body: %v", err)
			}
			if got.ID != 7 || got.Email != "a@x.com" || got.Role != "user" {
				t.Errorf("Expected claims 7/a@x.com/user in context, got %+v", got)
			}
		})
	}
}

func TestErrorResponseFor(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
		wantMsg    string
	}{
		{"not found", apperrors.NewResourceNotFoundError("post not found"), http.StatusNotFound, dto.ErrorCodeResourceNotFound, "post not found"},
		{"conflict", apperrors.NewConflictError("email already taken"), http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "email already taken"},
		{"bad request", apperrors.NewBadRequestError("description is required"), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "description is required"},
		{"password", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "incorrect password"},
		{"unsupported file", apperrors.ErrUnsupportedFileType, http.StatusBadRequest, dto.ErrorCodeUnsupportedFileType, "unsupported file format"},
		{"file required", apperrors.ErrFileRequired, http.StatusBadRequest, dto.ErrorCodeFileRequired, "a file is required"},
		{"wrapped sentinel", fmt.Errorf("ctx: %w", apperrors.ErrTokenInvalid), http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "invalid token"},
		{"internal with message", apperrors.NewInternalError("error creating post", errors.New("db down")), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "error creating post"},
		{"bare error", errors.New("db down"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := ErrorResponseFor(tt.err)
			if status != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, status)
			}
			if body.Code != tt.wantCode {
				t.Errorf("Expected code %s, got %s", tt.wantCode, body.Code)
			}
			if body.Error != tt.wantMsg {
				t.Errorf("Expected message %q, got %q", tt.wantMsg, body.Error)
			}
		})
	}
}

func TestRecoveryAndRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), Recovery(), AccessLog(logger.Nop()), Metrics(metrics.New()))
	router.GET("/panic", func(c *gin.Context) { panic("boom") })
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", w.Code)
	}
	if body := decodeError(t, w); body.Code != dto.ErrorCodeInternalServer {
		t.Errorf("Expected code %s, got %s", dto.ErrorCodeInternalServer, body.Code)
	}
	if w.Header().Get(HeaderRequestID) == "" {
		t.Error("Expected a generated request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if got := w.Header().Get(HeaderRequestID); got != "abc-123" {
		t.Errorf("Expected caller's request id to be echoed, got %q", got)
	}
}

func TestDescribeBindingError(t *testing.T) {
	type payload struct {
		Titre string `form:"titre" binding:"required"`
		Date  string `form:"date" binding:"required"`
	}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/articles", nil)
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var p payload
	err := c.ShouldBind(&p)
	if err == nil {
		t.Fatal("Expected a binding error")
	}
	if got := DescribeBindingError(err); got != "Titre: required, Date: required" {
		t.Errorf("Expected field summary, got %q", got)
	}
	if got := DescribeBindingError(errors.New("eof")); got != "eof" {
		t.Errorf("Expected plain message, got %q", got)
	}
}
