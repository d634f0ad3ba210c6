package comment

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vueblog/blog-backend/internal/pkg/pagination"
	"github.com/vueblog/blog-backend/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	comments := rg.Group("/comments")
	comments.POST("", h.create)
	comments.GET("/article/:articleId", h.listByArticle)

	authed := comments.Group("", authMW)
	authed.GET("", h.listAdmin)
	authed.GET("/counts", h.counts)
	authed.PUT("/:id/approve", h.approve)
	authed.PUT("/:id/reject", h.reject)
	authed.DELETE("/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateCommentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	comment, err := h.svc.Create(&dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrCommentsDisabled):
			response.BadRequest(c, "comments are disabled")
		case errors.Is(err, ErrArticleNotFound):
			response.BadRequest(c, "article not found")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, comment)
}

func (h *Handler) listByArticle(c *gin.Context) {
	v, err := strconv.ParseUint(c.Param("articleId"), 10, 64)
	if err != nil || v == 0 {
		response.BadRequest(c, "invalid articleId")
		return
	}
	page, err := h.svc.ListByArticle(uint(v), pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, page)
}

func (h *Handler) listAdmin(c *gin.Context) {
	page, err := h.svc.ListAdmin(c.Query("status"), pagination.FromContext(c))
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.BadRequest(c, "status must be PENDING, APPROVED or REJECTED")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Paged(c, page)
}

func (h *Handler) counts(c *gin.Context) {
	pending, total, err := h.svc.Counts()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"pending": pending, "total": total})
}

func (h *Handler) approve(c *gin.Context) {
	h.moderate(c, h.svc.Approve)
}

func (h *Handler) reject(c *gin.Context) {
	h.moderate(c, h.svc.Reject)
}

func (h *Handler) moderate(c *gin.Context, action func(uint) error) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := action(id); err != nil {
		if errors.Is(err, ErrCommentNotFound) {
			response.NotFound(c, "comment not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OKMsg(c, "updated")
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		if errors.Is(err, ErrCommentNotFound) {
			response.NotFound(c, "comment not found")
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
