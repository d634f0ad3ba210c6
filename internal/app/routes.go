package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vueblog/blog-backend/internal/middleware"
	"github.com/vueblog/blog-backend/internal/modules/article"
	"github.com/vueblog/blog-backend/internal/modules/auth"
	"github.com/vueblog/blog-backend/internal/modules/category"
	"github.com/vueblog/blog-backend/internal/modules/comment"
	"github.com/vueblog/blog-backend/internal/modules/contributor"
	"github.com/vueblog/blog-backend/internal/modules/file"
	"github.com/vueblog/blog-backend/internal/modules/setting"
	"github.com/vueblog/blog-backend/internal/modules/user"
	"github.com/vueblog/blog-backend/internal/pkg/cache"
	pkgredis "github.com/vueblog/blog-backend/internal/pkg/redis"
	"github.com/vueblog/blog-backend/internal/pkg/response"
)

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	db := a.db
	authMW := middleware.Auth(db)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "")
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	r.Static("/uploads", a.cfg.Upload.Dir)

	api := r.Group("/api")
	api.Use(middleware.OptionalAuth(db))
	api.Use(middleware.RateLimit(rc.Raw()))

	// Shared services
	settingSvc := setting.NewService(db)
	tokenTTL := time.Duration(a.cfg.JWT.ExpireHours) * time.Hour

	auth.NewHandler(auth.NewService(db, tokenTTL)).RegisterRoutes(api, authMW)
	user.NewHandler(user.NewService(db)).RegisterRoutes(api, authMW)

	article.NewHandler(article.NewService(db, cache.New(rc))).RegisterRoutes(api, authMW)
	category.NewHandler(category.NewService(db)).RegisterRoutes(api, authMW)
	comment.NewHandler(comment.NewService(db, settingSvc)).RegisterRoutes(api, authMW)
	contributor.NewHandler(contributor.NewService(db)).RegisterRoutes(api, authMW)

	setting.NewHandler(settingSvc).RegisterRoutes(api, authMW)
	file.NewHandler(a.cfg).RegisterRoutes(api, authMW)
}
