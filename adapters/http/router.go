package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio/pkg/logger"
)

type RouterDeps struct {
	AppName        string
	AllowedOrigins []string
	Profile        *ProfileHandler
	Project        *ProjectHandler
	Technology     *TechnologyHandler
	Contact        *ContactHandler
	Feed           *FeedHandler
	Metrics        *Metrics
	Logger         logger.Logger
}

func NewRouter(d RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(d.Logger))
	if d.Metrics != nil {
		router.Use(d.Metrics.Middleware())
		router.GET("/metrics", d.Metrics.Handler())
	}
	router.Use(CORSMiddleware(d.AllowedOrigins))
	router.Use(ErrorMiddleware(d.Logger))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": d.AppName, "status": "active"})
	})

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
		api.GET("/profile", d.Profile.GetProfile)
		api.GET("/projects", d.Project.ListProjects)
		api.GET("/projects/:id", d.Project.GetProject)
		api.GET("/technologies", d.Technology.ListTechnologies)
		api.POST("/contact", d.Contact.SubmitContact)
		api.GET("/feed.rss", d.Feed.ProjectsRSS)
	}

	return router
}
