package main

import (
	"embed"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"mediavault/backend/api/handler"
	"mediavault/backend/api/route"
	"mediavault/backend/common"
	"mediavault/backend/model"
	"mediavault/backend/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

//go:embed public
var buildFS embed.FS

//go:embed public/index.html
var indexPage []byte

func main() {
	configPath := flag.String("config", "data/config.ini", "path to the config file")
	flag.Parse()

	if err := common.LoadConfig(*configPath); err != nil {
		common.FatalLog(err)
	}
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	common.SysLog("MediaVault started")

	users, err := model.NewUserStore(common.UsersFile)
	if err != nil {
		common.FatalLog(err)
	}
	fileIndex, err := model.NewFileStore(common.StorageFile)
	if err != nil {
		common.FatalLog(err)
	}

	authService := service.NewAuthService(users, common.JWTSecret)
	fileService, err := service.NewFileService(fileIndex, common.UploadPath)
	if err != nil {
		common.FatalLog(err)
	}

	server := gin.Default()
	server.Use(cors.Default())
	route.SetRouter(server, buildFS, indexPage,
		authService,
		handler.NewUserHandler(authService),
		handler.NewFileHandler(fileService))

	setupGracefulShutdown()

	port := strconv.Itoa(common.Port)
	common.SysLog("Server listening on port: " + port)
	if err := server.Run(":" + port); err != nil {
		log.Fatal("failed to start server: " + err.Error())
	}
}

// setupGracefulShutdown registers signal handlers to ensure clean shutdown
func setupGracefulShutdown() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		common.SysLog("Shutting down...")
		os.Exit(0)
	}()
}
