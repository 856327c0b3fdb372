package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youcan-kampfsport/website/assets"
)

// SetupAssets serves the embedded static files under /assets.
func SetupAssets(r *gin.Engine) {
	r.StaticFS("/assets", http.FS(assets.Assets))
	r.GET("/robots.txt", func(c *gin.Context) {
		c.FileFromFS("static/robots.txt", http.FS(assets.Assets))
	})
}
