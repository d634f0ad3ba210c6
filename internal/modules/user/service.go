package user

import (
	"errors"

	"github.com/vueblog/blog-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailTaken    = errors.New("email already in use")
	ErrWrongPassword = errors.New("old password is incorrect")
)

type UpdateProfileDTO struct {
	Nickname *string `json:"nickname"`
	Avatar   *string `json:"avatar"`
	Email    *string `json:"email"`
}

type ChangePasswordDTO struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// GetByID returns the user or (nil, nil) when absent.
func (s *Service) GetByID(id uint) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (s *Service) UpdateProfile(id uint, dto *UpdateProfileDTO) (*models.UserModel, error) {
	u, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	updates := map[string]interface{}{}
	if dto.Nickname != nil {
		updates["nickname"] = *dto.Nickname
		u.Nickname = *dto.Nickname
	}
	if dto.Avatar != nil {
		updates["avatar"] = *dto.Avatar
		u.Avatar = *dto.Avatar
	}
	if dto.Email != nil && *dto.Email != u.Email {
		var count int64
		if err := s.db.Model(&models.UserModel{}).
			Where("email = ? AND id <> ?", *dto.Email, id).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrEmailTaken
		}
		updates["email"] = *dto.Email
		u.Email = *dto.Email
	}
	if len(updates) == 0 {
		return u, nil
	}
	return u, s.db.Model(u).Updates(updates).Error
}

func (s *Service) ChangePassword(id uint, dto *ChangePasswordDTO) error {
	u, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(dto.OldPassword)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(dto.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.db.Model(u).Update("password", string(hashed)).Error
}
