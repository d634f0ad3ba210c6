package user

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
	users := rg.Group("/users", authMW)
	users.GET("/me", h.me)
	users.PUT("/me", h.updateProfile)
	users.PUT("/me/password", h.changePassword)
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

func (h *Handler) updateProfile(c *gin.Context) {
	var dto UpdateProfileDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.svc.UpdateProfile(middleware.CurrentUserID(c), &dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			response.BadRequest(c, err.Error())
		case errors.Is(err, ErrUserNotFound):
			response.NotFound(c, "user not found")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, u)
}

func (h *Handler) changePassword(c *gin.Context) {
	var dto ChangePasswordDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.svc.ChangePassword(middleware.CurrentUserID(c), &dto); err != nil {
		switch {
		case errors.Is(err, ErrWrongPassword):
			response.BadRequest(c, err.Error())
		case errors.Is(err, ErrUserNotFound):
			response.NotFound(c, "user not found")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OKMsg(c, "password updated")
}
