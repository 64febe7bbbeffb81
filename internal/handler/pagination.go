package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type pageParams struct {
	Page     int
	PageSize int
}

func (p pageParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// parsePagination reads ?page and ?page_size with the ledger defaults
// (10 per page, capped at 100). Bad values fall back to defaults.
func parsePagination(c *gin.Context) pageParams {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(c.Query("page_size"))
	if err != nil || size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return pageParams{Page: page, PageSize: size}
}
