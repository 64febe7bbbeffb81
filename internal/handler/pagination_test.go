package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsFor(t *testing.T, query string) pageParams {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/reservation"+query, nil)
	return parsePagination(c)
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		description string
		query       string
		wantPage    int
		wantSize    int
		wantOffset  int
	}{
		{"defaults", "", 1, 10, 0},
		{"explicit page", "?page=3", 3, 10, 20},
		{"explicit size", "?page=2&page_size=25", 2, 25, 25},
		{"size capped at 100", "?page_size=500", 1, 100, 0},
		{"garbage falls back", "?page=abc&page_size=-1", 1, 10, 0},
	}
	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			page := paramsFor(t, test.query)
			assert.Equal(t, test.wantPage, page.Page)
			assert.Equal(t, test.wantSize, page.PageSize)
			assert.Equal(t, test.wantOffset, page.Offset())
		})
	}
}
