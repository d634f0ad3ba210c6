package comment

import (
	"errors"

	"github.com/vueblog/blog-backend/internal/models"
	"github.com/vueblog/blog-backend/internal/pkg/pagination"
	"github.com/vueblog/blog-backend/internal/pkg/response"
	"gorm.io/gorm"
)

var (
	ErrCommentNotFound  = errors.New("comment not found")
	ErrArticleNotFound  = errors.New("article not found")
	ErrCommentsDisabled = errors.New("comments are disabled")
	ErrInvalidStatus    = errors.New("invalid comment status")
)

type CreateCommentDTO struct {
	ArticleID uint   `json:"articleId" binding:"required"`
	Content   string `json:"content"   binding:"required"`
	Author    string `json:"author"    binding:"required"`
	Email     string `json:"email"`
}

// SettingSource supplies the site settings that gate comment creation.
type SettingSource interface {
	Get() (*models.SettingModel, error)
}

type Service struct {
	db       *gorm.DB
	settings SettingSource
}

func NewService(db *gorm.DB, settings SettingSource) *Service {
	return &Service{db: db, settings: settings}
}

// Create stores a visitor comment. When comment audit is enabled the
// comment starts PENDING, otherwise it is approved immediately.
func (s *Service) Create(dto *CreateCommentDTO) (*models.CommentModel, error) {
	setting, err := s.settings.Get()
	if err != nil {
		return nil, err
	}
	if !setting.AllowComments {
		return nil, ErrCommentsDisabled
	}

	var articleCount int64
	if err := s.db.Model(&models.ArticleModel{}).
		Where("id = ?", dto.ArticleID).
		Count(&articleCount).Error; err != nil {
		return nil, err
	}
	if articleCount == 0 {
		return nil, ErrArticleNotFound
	}

	status := models.CommentStatusApproved
	if setting.CommentAudit {
		status = models.CommentStatusPending
	}

	comment := models.CommentModel{
		ArticleID: dto.ArticleID,
		Content:   dto.Content,
		Author:    dto.Author,
		Email:     dto.Email,
		Status:    status,
	}
	return &comment, s.db.Create(&comment).Error
}

// ListByArticle returns approved comments for an article, newest first.
func (s *Service) ListByArticle(articleID uint, pq pagination.Query) (response.PageResult, error) {
	tx := s.db.Model(&models.CommentModel{}).
		Where("article_id = ? AND status = ?", articleID, models.CommentStatusApproved).
		Order("created_at DESC")

	var comments []models.CommentModel
	return pagination.Paginate(tx, pq, &comments)
}

// ListAdmin returns comments for moderation, optionally filtered by status.
func (s *Service) ListAdmin(status string, pq pagination.Query) (response.PageResult, error) {
	tx := s.db.Model(&models.CommentModel{}).Order("created_at DESC")
	if status != "" {
		if !validStatus(status) {
			return response.PageResult{}, ErrInvalidStatus
		}
		tx = tx.Where("status = ?", status)
	}

	var comments []models.CommentModel
	return pagination.Paginate(tx, pq, &comments)
}

// Approve marks a pending comment as approved.
func (s *Service) Approve(id uint) error {
	return s.updateStatus(id, models.CommentStatusApproved)
}

// Reject marks a comment as rejected.
func (s *Service) Reject(id uint) error {
	return s.updateStatus(id, models.CommentStatusRejected)
}

func (s *Service) updateStatus(id uint, status string) error {
	res := s.db.Model(&models.CommentModel{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func (s *Service) Delete(id uint) error {
	res := s.db.Delete(&models.CommentModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

// Counts returns the pending and total comment counts.
func (s *Service) Counts() (pending, total int64, err error) {
	if err = s.db.Model(&models.CommentModel{}).
		Where("status = ?", models.CommentStatusPending).
		Count(&pending).Error; err != nil {
		return 0, 0, err
	}
	if err = s.db.Model(&models.CommentModel{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	return pending, total, nil
}

func validStatus(status string) bool {
	switch status {
	case models.CommentStatusPending, models.CommentStatusApproved, models.CommentStatusRejected:
		return true
	}
	return false
}
