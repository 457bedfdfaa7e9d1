package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httpAdapter "github.com/khoahotran/portfolio/adapters/http"
	"github.com/khoahotran/portfolio/pkg/logger"
)

func NewRouter(h *SiteHandler, metrics *httpAdapter.Metrics, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(httpAdapter.RequestLogger(log))
	if metrics != nil {
		router.Use(metrics.Middleware())
		router.GET("/metrics", metrics.Handler())
	}

	router.GET("/", h.Index)
	router.POST("/contact", h.SubmitContact)
	router.POST("/theme/toggle", h.ToggleTheme)
	router.POST("/visibility/:section", h.Visibility)
	router.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

	return router
}
