package helpers

import (
	"math"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestParsePage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query      string
		wantPage   int
		wantLimit  int
		wantOffset uint64
	}{
		{"", 1, 10, 0},
		{"?page=3&limit=5", 3, 5, 10},
		{"?page=abc&limit=xyz", 1, 10, 0},
		{"?page=0&limit=-4", 1, 10, 0},
		{"?page=2", 2, 10, 10},
		{"?page=9223372036854775807&limit=9223372036854775807", MaxPage, MaxLimit, uint64(MaxPage-1) * MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/posts-txt"+tt.query, nil)

			p := ParsePage(c)
			if p.Page != tt.wantPage || p.Limit != tt.wantLimit {
				t.Errorf("Expected page=%d limit=%d, got page=%d limit=%d", tt.wantPage, tt.wantLimit, p.Page, p.Limit)
			}
			if p.Offset() != tt.wantOffset {
				t.Errorf("Expected offset %d, got %d", tt.wantOffset, p.Offset())
			}
		})
	}
}

func TestNextPage(t *testing.T) {
	p := NewPage(2, 10)

	next := NextPage(10, p)
	if next == nil || *next != 3 {
		t.Errorf("Expected next page 3, got %v", next)
	}
	if got := NextPage(9, p); got != nil {
		t.Errorf("Expected nil for a short page, got %d", *got)
	}
	// A whole-table read larger than limit does not announce a next page.
	if got := NextPage(25, p); got != nil {
		t.Errorf("Expected nil for an oversized read, got %d", *got)
	}
}

func TestNewPageClampsHugeValues(t *testing.T) {
	p := NewPage(math.MaxInt, math.MaxInt)
	if p.Page != MaxPage || p.Limit != MaxLimit {
		t.Fatalf("Expected page=%d limit=%d, got page=%d limit=%d", MaxPage, MaxLimit, p.Page, p.Limit)
	}
	if p.Offset() > math.MaxInt64 {
		t.Errorf("Expected an offset that fits a signed bigint, got %d", p.Offset())
	}

	next := NextPage(MaxLimit, p)
	if next == nil || *next != MaxPage+1 {
		t.Errorf("Expected next page %d, got %v", MaxPage+1, next)
	}
}

func TestNullableHelpers(t *testing.T) {
	if NullableString("") != nil {
		t.Error("Expected nil for empty string")
	}
	if s := NullableString("x"); s == nil || *s != "x" {
		t.Errorf("Expected pointer to x, got %v", s)
	}
	if StringValue(nil) != "" {
		t.Error("Expected empty string for nil")
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("2m", time.Second); got != 2*time.Minute {
		t.Errorf("Expected 2m, got %v", got)
	}
	if got := ParseDuration("soon", time.Second); got != time.Second {
		t.Errorf("Expected default, got %v", got)
	}
	if got := ParseDuration("", time.Hour); got != time.Hour {
		t.Errorf("Expected default, got %v", got)
	}
}
