package auth

import (
	"errors"
	"time"

	"github.com/vueblog/blog-backend/internal/models"
	jwtpkg "github.com/vueblog/blog-backend/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials covers unknown user, wrong password and disabled
// account alike, so login failures never reveal which part was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginVO is the login response payload.
type LoginVO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

const defaultFailDelay = 3 * time.Second

type Service struct {
	db        *gorm.DB
	tokenTTL  time.Duration
	failDelay time.Duration
}

func NewService(db *gorm.DB, tokenTTL time.Duration) *Service {
	return &Service{db: db, tokenTTL: tokenTTL, failDelay: defaultFailDelay}
}

// Login verifies credentials and issues a JWT for the user.
func (s *Service) Login(username, password string) (*LoginVO, error) {
	var u models.UserModel
	if err := s.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.fail()
		}
		return nil, err
	}
	if u.Status != models.UserStatusEnabled {
		return nil, s.fail()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, s.fail()
	}

	token, err := jwtpkg.Sign(u.ID, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &LoginVO{
		ID:       u.ID,
		Username: u.Username,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
		Email:    u.Email,
		Token:    token,
	}, nil
}

// fail delays every rejected login by the same amount so response timing
// does not reveal which check failed.
func (s *Service) fail() error {
	time.Sleep(s.failDelay)
	return ErrInvalidCredentials
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
