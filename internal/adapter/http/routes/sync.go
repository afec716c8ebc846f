package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hsl-mateusbolsoni/Personal-SaaS-sub000/internal/adapter/http/handlers"
)

const (
	PathSync = "/sync"
)

func addSyncRoutes(rg *gin.RouterGroup, syncHandler *handlers.SyncHandler) {
	sync := rg.Group(PathSync)
	{
		sync.POST("/login", syncHandler.Login)
		sync.POST("/logout", syncHandler.Logout)
		sync.POST("/flush", syncHandler.Flush)
		sync.GET("/status", syncHandler.Status)
		sync.GET("/errors", syncHandler.ListErrors)
		sync.DELETE("/errors", syncHandler.ClearErrors)
		sync.DELETE("/errors/:index", syncHandler.DismissError)
	}
}
