package category

import (
	"errors"

	"github.com/vueblog/blog-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrNameTaken        = errors.New("category name already exists")
	ErrCategoryInUse    = errors.New("category has articles")
)

type CreateCategoryDTO struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Sort        *int   `json:"sort"`
	Status      *int   `json:"status"`
}

type UpdateCategoryDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Sort        *int    `json:"sort"`
	Status      *int    `json:"status"`
}

// CategoryVO is a category together with its article count.
type CategoryVO struct {
	models.CategoryModel
	ArticleCount int64 `json:"articleCount"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns enabled categories ordered by sort weight, each with its
// article count. Counts come from one grouped query, not per-row lookups.
func (s *Service) List() ([]CategoryVO, error) {
	var cats []models.CategoryModel
	if err := s.db.Where("status = ?", 1).
		Order("sort ASC, created_at ASC").
		Find(&cats).Error; err != nil {
		return nil, err
	}

	var rows []struct {
		CategoryID uint
		Count      int64
	}
	if err := s.db.Model(&models.ArticleModel{}).
		Select("category_id, COUNT(*) AS count").
		Group("category_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.Count
	}

	out := make([]CategoryVO, len(cats))
	for i, cat := range cats {
		out[i] = CategoryVO{CategoryModel: cat, ArticleCount: counts[cat.ID]}
	}
	return out, nil
}

func (s *Service) GetByID(id uint) (*models.CategoryModel, error) {
	var cat models.CategoryModel
	if err := s.db.First(&cat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

func (s *Service) Create(dto *CreateCategoryDTO) (*models.CategoryModel, error) {
	var count int64
	if err := s.db.Model(&models.CategoryModel{}).Where("name = ?", dto.Name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrNameTaken
	}

	cat := models.CategoryModel{Name: dto.Name, Description: dto.Description, Status: 1}
	if dto.Sort != nil {
		cat.Sort = *dto.Sort
	}
	if dto.Status != nil {
		cat.Status = *dto.Status
	}
	return &cat, s.db.Create(&cat).Error
}

func (s *Service) Update(id uint, dto *UpdateCategoryDTO) (*models.CategoryModel, error) {
	cat, err := s.GetByID(id)
	if err != nil || cat == nil {
		return cat, err
	}

	updates := map[string]interface{}{}
	if dto.Name != nil && *dto.Name != cat.Name {
		var count int64
		if err := s.db.Model(&models.CategoryModel{}).
			Where("name = ? AND id <> ?", *dto.Name, id).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrNameTaken
		}
		updates["name"] = *dto.Name
		cat.Name = *dto.Name
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
		cat.Description = *dto.Description
	}
	if dto.Sort != nil {
		updates["sort"] = *dto.Sort
		cat.Sort = *dto.Sort
	}
	if dto.Status != nil {
		updates["status"] = *dto.Status
		cat.Status = *dto.Status
	}
	if len(updates) == 0 {
		return cat, nil
	}
	return cat, s.db.Model(cat).Updates(updates).Error
}

// Delete removes a category. It is refused while any article references it.
func (s *Service) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var articleCount int64
		if err := tx.Model(&models.ArticleModel{}).
			Where("category_id = ?", id).
			Count(&articleCount).Error; err != nil {
			return err
		}
		if articleCount > 0 {
			return ErrCategoryInUse
		}

		res := tx.Delete(&models.CategoryModel{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrCategoryNotFound
		}
		return nil
	})
}
