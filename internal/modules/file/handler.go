package file

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/vueblog/blog-backend/internal/config"
	"github.com/vueblog/blog-backend/internal/pkg/response"
)

type Handler struct {
	cfg *config.AppConfig
}

func NewHandler(cfg *config.AppConfig) *Handler {
	return &Handler{cfg: cfg}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	files := rg.Group("/files", authMW)
	files.POST("/images", h.uploadImage)
	files.POST("", h.uploadFile)
}

func (h *Handler) uploadImage(c *gin.Context) {
	h.save(c, "images", allowedImage)
}

func (h *Handler) uploadFile(c *gin.Context) {
	h.save(c, "files", allowedFile)
}

func (h *Handler) save(c *gin.Context, subdir string, allowed func(string) bool) {
	header, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, ErrMissingFile.Error())
		return
	}
	if header.Size > h.maxSize() {
		response.BadRequest(c, ErrFileTooLarge.Error())
		return
	}
	if !allowed(header.Header.Get("Content-Type")) {
		response.BadRequest(c, ErrTypeNotAllowed.Error())
		return
	}

	name, err := buildFileName(header)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dir := filepath.Join(h.cfg.Upload.Dir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		response.InternalError(c, err)
		return
	}
	if err := c.SaveUploadedFile(header, filepath.Join(dir, name)); err != nil {
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{
		"url":  "/uploads/" + subdir + "/" + name,
		"name": header.Filename,
	})
}

func (h *Handler) maxSize() int64 {
	return int64(h.cfg.Upload.MaxSizeMB) << 20
}
