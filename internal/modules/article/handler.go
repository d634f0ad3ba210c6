package article

import (
	"errors"
	"strconv"
	"strings"

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
	articles := rg.Group("/articles")
	articles.GET("", h.list)
	articles.GET("/latest", h.latest)
	articles.GET("/popular", h.popular)
	articles.GET("/search", h.search)
	articles.GET("/search/suggestions", h.suggestions)
	articles.GET("/search/hot", h.hotKeywords)
	articles.GET("/:id", h.get)

	authed := articles.Group("", authMW)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	var q ListArticlesQuery
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "invalid status")
			return
		}
		q.Status = &v
	}
	if raw := strings.TrimSpace(c.Query("category")); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "invalid category")
			return
		}
		id := uint(v)
		q.CategoryID = &id
	}
	q.Keyword = c.Query("keyword")

	page, err := h.svc.List(&q, pagination.FromContext(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, page)
}

func (h *Handler) search(c *gin.Context) {
	q := SearchArticlesQuery{
		Keyword: c.Query("keyword"),
		Tag:     c.Query("tag"),
		SortBy:  c.Query("sortBy"),
		SortDir: c.Query("sortDir"),
	}
	page, err := h.svc.Search(&q, pagination.FromContext(c))
	if err != nil {
		if errors.Is(err, ErrInvalidSortField) {
			response.BadRequest(c, "sortBy must be one of createTime, viewCount, title")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Paged(c, page)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	a, err := h.svc.GetByID(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if a == nil {
		response.NotFound(c, "article not found")
		return
	}
	response.OK(c, a)
}

func (h *Handler) latest(c *gin.Context) {
	articles, err := h.svc.Latest(parseLimit(c, defaultTopLimit))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, articles)
}

func (h *Handler) popular(c *gin.Context) {
	articles, err := h.svc.Popular(c.Request.Context(), parseLimit(c, defaultTopLimit))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, articles)
}

func (h *Handler) suggestions(c *gin.Context) {
	titles, err := h.svc.Suggestions(c.Request.Context(), c.Query("keyword"), parseLimit(c, defaultSuggestLimit))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, titles)
}

func (h *Handler) hotKeywords(c *gin.Context) {
	titles, err := h.svc.HotKeywords(c.Request.Context(), parseLimit(c, defaultHotLimit))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, titles)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateArticleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	a, err := h.svc.Create(c.Request.Context(), &dto)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			response.BadRequest(c, "category not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, a)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var dto UpdateArticleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	a, err := h.svc.Update(c.Request.Context(), id, &dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrArticleNotFound):
			response.NotFound(c, "article not found")
		case errors.Is(err, ErrCategoryNotFound):
			response.BadRequest(c, "category not found")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.OK(c, a)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrArticleNotFound) {
			response.NotFound(c, "article not found")
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

func parseLimit(c *gin.Context, def int) int {
	v, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		return def
	}
	return v
}
