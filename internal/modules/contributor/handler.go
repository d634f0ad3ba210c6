package contributor

import (
	"errors"
	"strconv"

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
	contributors := rg.Group("/contributors")
	contributors.GET("", h.list)
	contributors.GET("/:id", h.get)

	authed := contributors.Group("", authMW)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	contributors, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, contributors)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	contributor, err := h.svc.GetByID(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if contributor == nil {
		response.NotFound(c, "contributor not found")
		return
	}
	response.OK(c, contributor)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateContributorDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	contributor, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, ErrNameTaken) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, contributor)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var dto UpdateContributorDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	contributor, err := h.svc.Update(id, &dto)
	if err != nil {
		if errors.Is(err, ErrNameTaken) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if contributor == nil {
		response.NotFound(c, "contributor not found")
		return
	}
	response.OK(c, contributor)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		if errors.Is(err, ErrContributorNotFound) {
			response.NotFound(c, "contributor not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OKMsg(c, "deleted")
}

func parseID(c *gin.Context) (uint, bool) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || v == 0 {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(v), true
}
