package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tsiw/alumnet/internal/app/models/dto"
	"github.com/tsiw/alumnet/internal/pkg/apperrors"
)

const (
	// DefaultLimit is the page size used when the client sends none.
	DefaultLimit = 10
	// MinAlumniLimit is the exclusive lower bound for the alumni listing.
	MinAlumniLimit = 5
)

// ParsePageParam extracts the 0-based page query parameter.
func ParsePageParam(c *gin.Context) (int, error) {
	pageStr := c.DefaultQuery("page", "0")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 0 {
		return 0, apperrors.NewValidationError("Page must be 0 or a positive integer")
	}
	return page, nil
}

// ParseExactLimit extracts the limit parameter and requires it to be
// exactly the given value (the validated companies/posts variant).
func ParseExactLimit(c *gin.Context, exact int) (int, error) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(exact))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit != exact {
		return 0, apperrors.NewValidationError("Limit must be exactly " + strconv.Itoa(exact))
	}
	return limit, nil
}

// ParseMinLimit extracts the limit parameter and requires it to be strictly
// greater than min (the alumni listing rule).
func ParseMinLimit(c *gin.Context, min int) (int, error) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(DefaultLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= min {
		return 0, apperrors.NewValidationError("Limit must be greater than " + strconv.Itoa(min))
	}
	return limit, nil
}

// Offset converts a 0-based page and limit to a SQL offset.
func Offset(page, limit int) uint64 {
	return uint64(page * limit)
}

// NewPagination builds the standard pagination metadata. Current is the
// 1-based page number shown to clients.
func NewPagination(total int64, page, limit int) dto.Pagination {
	pages := 0
	if total > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return dto.Pagination{
		Total:   total,
		Pages:   pages,
		Current: page + 1,
		Limit:   limit,
	}
}
