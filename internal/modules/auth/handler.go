package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/vueblog/blog-backend/internal/middleware"
	"github.com/vueblog/blog-backend/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	a := rg.Group("/auth")
	a.POST("/login", h.login)
	a.GET("/me", authMW, h.me)
	a.POST("/logout", authMW, h.logout)
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	vo, err := h.svc.Login(dto.Username, dto.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Unauthorized(c, "invalid username or password")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, vo)
}

func (h *Handler) me(c *gin.Context) {
	u, err := h.svc.GetByID(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if u == nil {
		response.NotFound(c, "user not found")
		return
	}
	response.OK(c, u)
}

// logout exists for client symmetry. Tokens are stateless, so the client
// simply discards its copy.
func (h *Handler) logout(c *gin.Context) {
	response.OKMsg(c, "logged out")
}
