package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vueblog/blog-backend/internal/pkg/response"
	"gorm.io/gorm"
)

const (
	DefaultPage = 1
	DefaultSize = 10
	MaxSize     = 100
)

// Query holds parsed pagination parameters.
type Query struct {
	Page int
	Size int
}

// FromContext extracts and validates pagination params from the request.
func FromContext(c *gin.Context) Query {
	page := parseIntOr(c.DefaultQuery("page", "1"), DefaultPage)
	size := parseIntOr(c.DefaultQuery("size", "10"), DefaultSize)

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}

	return Query{Page: page, Size: size}
}

// Paginate applies limit/offset to a GORM query and returns the page envelope.
func Paginate[T any](db *gorm.DB, q Query, dest *[]T) (response.PageResult, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return response.PageResult{}, err
	}

	offset := (q.Page - 1) * q.Size
	if err := db.Offset(offset).Limit(q.Size).Find(dest).Error; err != nil {
		return response.PageResult{}, err
	}

	return response.PageResult{
		Page:  q.Page,
		Size:  q.Size,
		Total: total,
		Pages: Pages(total, q.Size),
		List:  *dest,
	}, nil
}

// Pages computes the number of pages needed for total rows at the given size.
func Pages(total int64, size int) int {
	if size < 1 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
