package route

import (
	"embed"

	"mediavault/backend/api/handler"
	"mediavault/backend/service"

	"github.com/gin-gonic/gin"
)

// SetRouter wires the API routes, the embedded frontend and the public
// uploads prefix onto the engine.
func SetRouter(router *gin.Engine, buildFS embed.FS, indexPage []byte, auth *service.AuthService, users *handler.UserHandler, files *handler.FileHandler) {
	SetApiRouter(router, auth, users, files)
	setWebRouter(router, buildFS, indexPage)
}
