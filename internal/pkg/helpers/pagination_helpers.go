package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/crewboard/crewboard/internal/app/models/dto"
)

const (
	// DefaultPageSize is used when the client sends no pageSize.
	DefaultPageSize = 10
	// MaxPageSize caps how many rows one page may request.
	MaxPageSize = 100
)

// ParsePaginationParams reads page and pageSize from the query string.
// Missing or malformed values fall back to page 1 and the default size;
// out-of-range values are clamped rather than rejected.
func ParsePaginationParams(c *gin.Context) (page, pageSize int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err = strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(DefaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return page, pageSize
}

// NewPaginationInfo assembles the pagination envelope. totalPages is the
// ceiling of total/pageSize and is 0 when there are no matches.
func NewPaginationInfo(page, pageSize int, total int64) dto.PaginationInfo {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return dto.PaginationInfo{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
