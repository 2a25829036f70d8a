package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dongdio/OpenBlog/internal/conf"
	"github.com/dongdio/OpenBlog/server/handles"
)

func Init(e *gin.Engine, snapshots handles.Snapshots, themes handles.ThemeNamer, readmes handles.Readmes) {
	Cors(e)
	e.GET("/ping", func(c *gin.Context) {
		c.String(200, "pong")
	})

	blog := handles.NewBlog(snapshots, themes, readmes)
	api := e.Group("/api")
	api.GET("/themes", blog.ListThemes)
	api.GET("/themes/:id", blog.GetTheme)
	api.GET("/themes/:id/readme", blog.ThemeReadme)
	api.GET("/emoji", blog.Emoji)
	api.GET("/options/active_theme", blog.ActiveTheme)
}

func Cors(r *gin.Engine) {
	config := cors.DefaultConfig()
	if conf.Conf != nil {
		config.AllowOrigins = conf.Conf.Cors.AllowOrigins
		config.AllowHeaders = conf.Conf.Cors.AllowHeaders
		config.AllowMethods = conf.Conf.Cors.AllowMethods
	} else {
		config.AllowAllOrigins = true
	}
	r.Use(cors.New(config))
}
