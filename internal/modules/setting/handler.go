package setting

import (
	"github.com/gin-gonic/gin"
	"github.com/vueblog/blog-backend/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	settings := rg.Group("/settings")
	settings.GET("", h.get)
	settings.PUT("", authMW, h.update)
}

func (h *Handler) get(c *gin.Context) {
	setting, err := h.svc.Get()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, setting)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateSettingDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	setting, err := h.svc.Update(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, setting)
}
