package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vueblog/blog-backend/internal/models"
	"github.com/vueblog/blog-backend/internal/pkg/jwt"
	"github.com/vueblog/blog-backend/internal/pkg/response"
	"gorm.io/gorm"
)

const ContextKeyUserID = "user_id"

var (
	errTokenRequired = errors.New("token is required")
	errUserDisabled  = errors.New("account is disabled")
)

// Auth returns a middleware that enforces JWT authentication. The token's
// user is re-resolved on every request so that a disabled account is shut
// out even while its token is still unexpired.
func Auth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := resolveUser(db, extractToken(c))
		if err != nil {
			response.Unauthorized(c, "")
			return
		}
		c.Set(ContextKeyUserID, userID)
		c.Next()
	}
}

// OptionalAuth sets the user ID if a valid token is present, but does not block the request.
func OptionalAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, err := resolveUser(db, extractToken(c)); err == nil {
			c.Set(ContextKeyUserID, userID)
		}
		c.Next()
	}
}

func resolveUser(db *gorm.DB, rawToken string) (uint, error) {
	token := NormalizeToken(rawToken)
	if token == "" {
		return 0, errTokenRequired
	}

	claims, err := jwt.Parse(token)
	if err != nil {
		return 0, err
	}

	var u models.UserModel
	if err := db.Select("id, status").First(&u, "id = ?", claims.UserID).Error; err != nil {
		return 0, err
	}
	if u.Status != models.UserStatusEnabled {
		return 0, errUserDisabled
	}
	return u.ID, nil
}

// CurrentUserID extracts the authenticated user ID from context.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(uint)
	return id
}

// IsAuthenticated returns true if the request has a valid auth token.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentUserID(c) != 0
}

func extractToken(c *gin.Context) string {
	return NormalizeToken(c.GetHeader("Authorization"))
}

// NormalizeToken trims spaces and strips the optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
