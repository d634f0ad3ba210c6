package article

import (
	"context"
	"errors"
	"strings"

	"github.com/vueblog/blog-backend/internal/models"
	"github.com/vueblog/blog-backend/internal/pkg/cache"
	"github.com/vueblog/blog-backend/internal/pkg/pagination"
	"github.com/vueblog/blog-backend/internal/pkg/response"
	"gorm.io/gorm"
)

var (
	ErrArticleNotFound  = errors.New("article not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidSortField = errors.New("invalid sort field")
)

// sortColumns maps API sort fields to database columns. Anything else is rejected.
var sortColumns = map[string]string{
	"createTime": "created_at",
	"viewCount":  "view_count",
	"title":      "title",
}

const (
	defaultTopLimit     = 5
	defaultSuggestLimit = 5
	defaultHotLimit     = 10
	maxTopLimit         = 20
)

type Service struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewService(db *gorm.DB, c *cache.Cache) *Service {
	return &Service{db: db, cache: c}
}

// List returns a page of articles filtered by status, category and keyword.
// The keyword matches title or content, case-insensitively.
func (s *Service) List(q *ListArticlesQuery, pq pagination.Query) (response.PageResult, error) {
	tx := s.listQuery(q).Preload("Category").Order("created_at DESC")
	var articles []models.ArticleModel
	return pagination.Paginate(tx, pq, &articles)
}

func (s *Service) listQuery(q *ListArticlesQuery) *gorm.DB {
	tx := s.db.Model(&models.ArticleModel{})
	kw := likePattern(q.Keyword)

	switch {
	case q.Status != nil && q.CategoryID != nil && kw != "":
		tx = tx.Where("status = ? AND category_id = ?", *q.Status, *q.CategoryID).
			Where("(LOWER(title) LIKE ? OR LOWER(content) LIKE ?)", kw, kw)
	case q.Status != nil && q.CategoryID != nil:
		tx = tx.Where("status = ? AND category_id = ?", *q.Status, *q.CategoryID)
	case q.Status != nil && kw != "":
		tx = tx.Where("status = ?", *q.Status).
			Where("(LOWER(title) LIKE ? OR LOWER(content) LIKE ?)", kw, kw)
	case q.Status != nil:
		tx = tx.Where("status = ?", *q.Status)
	case q.CategoryID != nil && kw != "":
		tx = tx.Where("category_id = ?", *q.CategoryID).
			Where("(LOWER(title) LIKE ? OR LOWER(content) LIKE ?)", kw, kw)
	case q.CategoryID != nil:
		tx = tx.Where("category_id = ?", *q.CategoryID)
	case kw != "":
		tx = tx.Where("(LOWER(title) LIKE ? OR LOWER(content) LIKE ?)", kw, kw)
	}
	return tx
}

// Search returns a page of published articles matching keyword and/or tag.
// The keyword matches title, content or summary. With neither filter it
// returns all published articles.
func (s *Service) Search(q *SearchArticlesQuery, pq pagination.Query) (response.PageResult, error) {
	order, err := resolveOrder(q.SortBy, q.SortDir)
	if err != nil {
		return response.PageResult{}, err
	}

	tx := s.db.Model(&models.ArticleModel{}).Where("status = ?", models.ArticleStatusPublished)
	kw := likePattern(q.Keyword)
	tag := strings.TrimSpace(q.Tag)

	switch {
	case kw != "" && tag != "":
		tx = tx.Where("(LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(summary) LIKE ?)", kw, kw, kw).
			Where("tags LIKE ?", "%"+tag+"%")
	case kw != "":
		tx = tx.Where("(LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(summary) LIKE ?)", kw, kw, kw)
	case tag != "":
		tx = tx.Where("tags LIKE ?", "%"+tag+"%")
	}

	tx = tx.Preload("Category").Order(order)
	var articles []models.ArticleModel
	return pagination.Paginate(tx, pq, &articles)
}

func resolveOrder(sortBy, sortDir string) (string, error) {
	if sortBy == "" {
		sortBy = "createTime"
	}
	column, ok := sortColumns[sortBy]
	if !ok {
		return "", ErrInvalidSortField
	}
	dir := "DESC"
	if strings.EqualFold(strings.TrimSpace(sortDir), "asc") {
		dir = "ASC"
	}
	return column + " " + dir, nil
}

// GetByID loads an article and counts the view. Every successful fetch
// increments view_count by exactly one via an atomic column update.
func (s *Service) GetByID(id uint) (*models.ArticleModel, error) {
	var a models.ArticleModel
	if err := s.db.Preload("Category").First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := s.db.Model(&models.ArticleModel{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error; err != nil {
		return nil, err
	}
	a.ViewCount++
	return &a, nil
}

// Latest returns the most recently published articles.
func (s *Service) Latest(limit int) ([]models.ArticleModel, error) {
	var articles []models.ArticleModel
	err := s.db.Where("status = ?", models.ArticleStatusPublished).
		Order("created_at DESC").
		Limit(clampLimit(limit, defaultTopLimit)).
		Find(&articles).Error
	return articles, err
}

// Popular returns the most viewed published articles, cached.
func (s *Service) Popular(ctx context.Context, limit int) ([]models.ArticleModel, error) {
	limit = clampLimit(limit, defaultTopLimit)
	key := cache.Key("article:popular", limit)

	var articles []models.ArticleModel
	if hit, _ := s.cache.GetJSON(ctx, key, &articles); hit {
		return articles, nil
	}

	err := s.db.Where("status = ?", models.ArticleStatusPublished).
		Order("view_count DESC").
		Limit(limit).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, key, articles, cache.DefaultTTL)
	return articles, nil
}

// Suggestions returns published article titles matching the keyword, cached.
func (s *Service) Suggestions(ctx context.Context, keyword string, limit int) ([]string, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return []string{}, nil
	}
	limit = clampLimit(limit, defaultSuggestLimit)
	key := cache.Key("article:suggestions", strings.ToLower(keyword), limit)

	var titles []string
	if hit, _ := s.cache.GetJSON(ctx, key, &titles); hit {
		return titles, nil
	}

	err := s.db.Model(&models.ArticleModel{}).
		Where("status = ? AND LOWER(title) LIKE ?", models.ArticleStatusPublished, likePattern(keyword)).
		Order("view_count DESC").
		Limit(limit).
		Pluck("title", &titles).Error
	if err != nil {
		return nil, err
	}
	if titles == nil {
		titles = []string{}
	}
	_ = s.cache.SetJSON(ctx, key, titles, cache.DefaultTTL)
	return titles, nil
}

// HotKeywords returns the titles of the most viewed published articles, cached.
func (s *Service) HotKeywords(ctx context.Context, limit int) ([]string, error) {
	limit = clampLimit(limit, defaultHotLimit)
	key := cache.Key("article:hot", limit)

	var titles []string
	if hit, _ := s.cache.GetJSON(ctx, key, &titles); hit {
		return titles, nil
	}

	err := s.db.Model(&models.ArticleModel{}).
		Where("status = ?", models.ArticleStatusPublished).
		Order("view_count DESC").
		Limit(limit).
		Pluck("title", &titles).Error
	if err != nil {
		return nil, err
	}
	if titles == nil {
		titles = []string{}
	}
	_ = s.cache.SetJSON(ctx, key, titles, cache.DefaultTTL)
	return titles, nil
}

// Create stores a new article after validating its category.
func (s *Service) Create(ctx context.Context, dto *CreateArticleDTO) (*models.ArticleModel, error) {
	a := models.ArticleModel{
		Title:      dto.Title,
		Content:    dto.Content,
		Summary:    dto.Summary,
		Thumbnail:  dto.Thumbnail,
		Tags:       dto.Tags,
		CategoryID: dto.CategoryID,
		Status:     models.ArticleStatusPublished,
	}
	if dto.Status != nil {
		a.Status = *dto.Status
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := categoryExists(tx, dto.CategoryID); err != nil {
			return err
		}
		return tx.Create(&a).Error
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCaches(ctx)
	return &a, nil
}

// Update applies the non-nil DTO fields to an existing article.
func (s *Service) Update(ctx context.Context, id uint, dto *UpdateArticleDTO) (*models.ArticleModel, error) {
	var a models.ArticleModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&a, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArticleNotFound
			}
			return err
		}

		updates := map[string]interface{}{}
		if dto.Title != nil {
			updates["title"] = *dto.Title
			a.Title = *dto.Title
		}
		if dto.Content != nil {
			updates["content"] = *dto.Content
			a.Content = *dto.Content
		}
		if dto.Summary != nil {
			updates["summary"] = *dto.Summary
			a.Summary = *dto.Summary
		}
		if dto.Thumbnail != nil {
			updates["thumbnail"] = *dto.Thumbnail
			a.Thumbnail = *dto.Thumbnail
		}
		if dto.Tags != nil {
			updates["tags"] = *dto.Tags
			a.Tags = *dto.Tags
		}
		if dto.CategoryID != nil {
			if err := categoryExists(tx, *dto.CategoryID); err != nil {
				return err
			}
			updates["category_id"] = *dto.CategoryID
			a.CategoryID = *dto.CategoryID
		}
		if dto.Status != nil {
			updates["status"] = *dto.Status
			a.Status = *dto.Status
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&a).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCaches(ctx)
	return &a, nil
}

// Delete removes an article together with its comments.
func (s *Service) Delete(ctx context.Context, id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.ArticleModel{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrArticleNotFound
		}
		return tx.Delete(&models.CommentModel{}, "article_id = ?", id).Error
	})
	if err != nil {
		return err
	}

	s.invalidateCaches(ctx)
	return nil
}

func (s *Service) invalidateCaches(ctx context.Context) {
	s.cache.InvalidateOp(ctx, "article:popular")
	s.cache.InvalidateOp(ctx, "article:suggestions")
	s.cache.InvalidateOp(ctx, "article:hot")
}

func categoryExists(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&models.CategoryModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > maxTopLimit {
		return maxTopLimit
	}
	return limit
}

func likePattern(keyword string) string {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return ""
	}
	return "%" + strings.ToLower(keyword) + "%"
}
