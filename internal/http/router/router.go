package router

import (
	"github.com/gin-gonic/gin"

	"unibridge.app/compass/internal/catalog"
	"unibridge.app/compass/internal/http/handler"
	"unibridge.app/compass/internal/service"
)

type RouterConfig struct {
	TopN int
}

func SetupRoutes(router *gin.Engine, services *service.Services, source catalog.Source, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		matchHandler := handler.NewMatchHandler(services.Match(), source, cfg.TopN)
		v1.POST("/ai/match", matchHandler.Match)

		checkinHandler := handler.NewCheckinHandler(services.Wellness())
		v1.POST("/ai/checkin", checkinHandler.Checkin)
	}
}
