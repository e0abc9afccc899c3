package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/yigit/sporthub/internal/pkg/apperrors"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateToken(42, "a@x.com", "user")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("Expected valid token, got %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("Expected user id 42, got %d", claims.UserID)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("Expected email a@x.com, got %s", claims.Email)
	}
	if claims.Role != "user" {
		t.Errorf("Expected role user, got %s", claims.Role)
	}
	if claims.ExpiresAt != nil {
		t.Errorf("Expected no expiry, got %v", claims.ExpiresAt)
	}
	if claims.IssuedAt == nil {
		t.Error("Expected iat to be set")
	}
}

func TestValidateTokenRejectsOtherKey(t *testing.T) {
	token, err := NewJWTService("one").GenerateToken(1, "a@x.com", "user")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err = NewJWTService("two").ValidateToken(token)
	if !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("Expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewJWTService("secret")
	claims := &Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("Expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewJWTService("secret")

	if _, err := svc.ValidateToken("not.a.token"); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("Expected ErrTokenInvalid, got %v", err)
	}
	if _, err := svc.ValidateToken(""); !IsMissing(err) {
		t.Errorf("Expected ErrTokenMissing, got %v", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer", "Bearer abc.def", "abc.def", false},
		{"lowercase scheme", "bearer abc", "abc", false},
		{"empty", "", "", true},
		{"no scheme", "abc.def", "", true},
		{"basic", "Basic dXNlcjpwYXNz", "", true},
		{"scheme only", "Bearer ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				if !IsMissing(err) {
					t.Errorf("Expected ErrTokenMissing, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if hash == "pw123" {
		t.Fatal("Expected a hash, got the plain password")
	}

	other, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if other == hash {
		t.Error("Expected different salts to give different hashes")
	}

	ok, err := CheckPassword(hash, "pw123")
	if err != nil || !ok {
		t.Errorf("Expected match, got ok=%v err=%v", ok, err)
	}

	ok, err = CheckPassword(hash, "wrong")
	if err != nil || ok {
		t.Errorf("Expected mismatch without error, got ok=%v err=%v", ok, err)
	}

	if _, err := CheckPassword("not-a-hash", "pw123"); err == nil {
		t.Error("Expected an error for a malformed hash")
	}
}

func TestPasswordLongerThanBcryptLimit(t *testing.T) {
	long := strings.Repeat("p", 80)

	hash, err := HashPassword(long)
	if err != nil {
		t.Fatalf("Expected no error for an 80-byte password, got %v", err)
	}

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"same password", long, true},
		{"first 72 bytes", long[:72], true},
		{"different tail past 72 bytes", long[:72] + "xxxxxxxx", true},
		{"different within 72 bytes", "q" + long[1:], false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := CheckPassword(hash, tt.password)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if ok != tt.want {
				t.Errorf("Expected match=%v, got %v", tt.want, ok)
			}
		})
	}
}
