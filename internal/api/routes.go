package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"resumetex/internal/compiler"
	"resumetex/internal/storage"
)

// RegisterRoutes 注册 API 路由，不包含 /api 前缀。
func RegisterRoutes(
	router *gin.Engine,
	db *gorm.DB,
	asynqClient *asynq.Client,
	redisClient *redis.Client,
	logger *slog.Logger,
	storageClient *storage.Client,
	comp compiler.Compiler,
) {
	draftHandler := NewDraftHandler(db, asynqClient, storageClient)
	templateHandler := NewTemplateHandler(db)
	generateHandler := NewGenerateHandler(comp, logger)
	wsHandler := NewWsHandler(redisClient, logger, nil)

	v1 := router.Group("/v1")
	{
		v1.GET("/ws", wsHandler.HandleConnection)

		resumeGroup := v1.Group("/resume")
		{
			resumeGroup.GET("", draftHandler.GetDraft)
			resumeGroup.PUT("", draftHandler.SaveDraft)
			resumeGroup.POST("/compile", draftHandler.CompileDraft)
			resumeGroup.GET("/download-link", draftHandler.GetDownloadLink)
		}

		templateGroup := v1.Group("/templates")
		{
			templateGroup.GET("", templateHandler.ListTemplates)
			templateGroup.POST("", templateHandler.CreateTemplate)
			templateGroup.DELETE("/:id", templateHandler.DeleteTemplate)
		}

		v1.POST("/generate", generateHandler.Generate)
	}
}
