package contributor

import (
	"errors"

	"github.com/vueblog/blog-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrContributorNotFound = errors.New("contributor not found")
	ErrNameTaken           = errors.New("contributor name already exists")
)

type CreateContributorDTO struct {
	Name         string `json:"name" binding:"required"`
	Avatar       string `json:"avatar"`
	Introduction string `json:"introduction"`
	Sort         *int   `json:"sort"`
	Status       *int   `json:"status"`
}

type UpdateContributorDTO struct {
	Name         *string `json:"name"`
	Avatar       *string `json:"avatar"`
	Introduction *string `json:"introduction"`
	Sort         *int    `json:"sort"`
	Status       *int    `json:"status"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns enabled contributors ordered by sort weight.
func (s *Service) List() ([]models.ContributorModel, error) {
	var contributors []models.ContributorModel
	err := s.db.Where("status = ?", 1).
		Order("sort ASC, created_at ASC").
		Find(&contributors).Error
	return contributors, err
}

func (s *Service) GetByID(id uint) (*models.ContributorModel, error) {
	var contributor models.ContributorModel
	if err := s.db.First(&contributor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contributor, nil
}

func (s *Service) Create(dto *CreateContributorDTO) (*models.ContributorModel, error) {
	var count int64
	if err := s.db.Model(&models.ContributorModel{}).Where("name = ?", dto.Name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrNameTaken
	}

	contributor := models.ContributorModel{
		Name:         dto.Name,
		Avatar:       dto.Avatar,
		Introduction: dto.Introduction,
		Status:       1,
	}
	if dto.Sort != nil {
		contributor.Sort = *dto.Sort
	}
	if dto.Status != nil {
		contributor.Status = *dto.Status
	}
	return &contributor, s.db.Create(&contributor).Error
}

func (s *Service) Update(id uint, dto *UpdateContributorDTO) (*models.ContributorModel, error) {
	contributor, err := s.GetByID(id)
	if err != nil || contributor == nil {
		return contributor, err
	}

	updates := map[string]interface{}{}
	if dto.Name != nil && *dto.Name != contributor.Name {
		var count int64
		if err := s.db.Model(&models.ContributorModel{}).
			Where("name = ? AND id <> ?", *dto.Name, id).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrNameTaken
		}
		updates["name"] = *dto.Name
		contributor.Name = *dto.Name
	}
	if dto.Avatar != nil {
		updates["avatar"] = *dto.Avatar
		contributor.Avatar = *dto.Avatar
	}
	if dto.Introduction != nil {
		updates["introduction"] = *dto.Introduction
		contributor.Introduction = *dto.Introduction
	}
	if dto.Sort != nil {
		updates["sort"] = *dto.Sort
		contributor.Sort = *dto.Sort
	}
	if dto.Status != nil {
		updates["status"] = *dto.Status
		contributor.Status = *dto.Status
	}
	if len(updates) == 0 {
		return contributor, nil
	}
	return contributor, s.db.Model(contributor).Updates(updates).Error
}

func (s *Service) Delete(id uint) error {
	res := s.db.Delete(&models.ContributorModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrContributorNotFound
	}
	return nil
}
