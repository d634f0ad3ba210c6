package setting

import (
	"errors"
	"sync"

	"github.com/vueblog/blog-backend/internal/models"
	"gorm.io/gorm"
)

type UpdateSettingDTO struct {
	SiteName        *string `json:"siteName"`
	SiteDescription *string `json:"siteDescription"`
	SiteKeywords    *string `json:"siteKeywords"`
	SiteLogo        *string `json:"siteLogo"`
	SiteFavicon     *string `json:"siteFavicon"`
	SiteICP         *string `json:"siteIcp"`
	SiteEmail       *string `json:"siteEmail"`
	FooterInfo      *string `json:"footerInfo"`
	AllowComments   *bool   `json:"allowComments"`
	CommentAudit    *bool   `json:"commentAudit"`
}

// Service manages the singleton settings row with an in-memory cache.
type Service struct {
	db     *gorm.DB
	mu     sync.RWMutex
	cached *models.SettingModel
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Get returns the settings row, creating it with defaults when absent.
func (s *Service) Get() (*models.SettingModel, error) {
	s.mu.RLock()
	if s.cached != nil {
		defer s.mu.RUnlock()
		return s.cached, nil
	}
	s.mu.RUnlock()

	return s.load()
}

func (s *Service) load() (*models.SettingModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var setting models.SettingModel
	err := s.db.Order("id ASC").First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.SettingModel{
			SiteName:        "My Blog",
			SiteDescription: "A blog powered by blog-backend",
			FooterInfo:      "Powered by blog-backend",
			AllowComments:   true,
			CommentAudit:    true,
		}
		if err := s.db.Create(&setting).Error; err != nil {
			return nil, err
		}
		s.cached = &setting
		return s.cached, nil
	}
	if err != nil {
		return nil, err
	}
	s.cached = &setting
	return s.cached, nil
}

// Update applies the non-nil DTO fields and refreshes the cache.
func (s *Service) Update(dto *UpdateSettingDTO) (*models.SettingModel, error) {
	current, err := s.Get()
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.SiteName != nil {
		updates["site_name"] = *dto.SiteName
	}
	if dto.SiteDescription != nil {
		updates["site_description"] = *dto.SiteDescription
	}
	if dto.SiteKeywords != nil {
		updates["site_keywords"] = *dto.SiteKeywords
	}
	if dto.SiteLogo != nil {
		updates["site_logo"] = *dto.SiteLogo
	}
	if dto.SiteFavicon != nil {
		updates["site_favicon"] = *dto.SiteFavicon
	}
	if dto.SiteICP != nil {
		updates["site_icp"] = *dto.SiteICP
	}
	if dto.SiteEmail != nil {
		updates["site_email"] = *dto.SiteEmail
	}
	if dto.FooterInfo != nil {
		updates["footer_info"] = *dto.FooterInfo
	}
	if dto.AllowComments != nil {
		updates["allow_comments"] = *dto.AllowComments
	}
	if dto.CommentAudit != nil {
		updates["comment_audit"] = *dto.CommentAudit
	}
	if len(updates) == 0 {
		return current, nil
	}

	if err := s.db.Model(&models.SettingModel{}).
		Where("id = ?", current.ID).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	s.Invalidate()
	return s.Get()
}

// Invalidate clears the in-memory cache, forcing a DB reload on next Get.
func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = nil
}
