package route

import (
	"embed"
	"net/http"
	"strings"

	"mediavault/backend/common"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

func setWebRouter(router *gin.Engine, buildFS embed.FS, indexPage []byte) {
	router.Use(static.Serve("/", common.EmbedFolder(buildFS, "public")))
	// Uploaded bytes are public static assets: any holder of the URL can
	// read them regardless of ownership.
	router.Use(static.Serve("/uploads", static.LocalFile(common.UploadPath, false)))
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			common.RespError(c, http.StatusNotFound, "API route not found")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
	})
}
