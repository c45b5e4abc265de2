package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/plan2code/backend/config"
	"github.com/plan2code/backend/internal/handler"
)

func Setup(
	cfg *config.Config,
	planHandler *handler.PlanHandler,
	ticketHandler *handler.TicketHandler,
	devTaskHandler *handler.DevTaskHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	api := r.Group("/api")
	{
		api.POST("/generate-project-plan", planHandler.Generate)
		api.POST("/refine-project-plan", planHandler.Refine)

		api.POST("/generate-jira-tickets-from-plan", ticketHandler.GenerateFromPlan)
		api.POST("/push-finalized-tickets", ticketHandler.Push)

		api.POST("/get-suggested-dev-tasks", devTaskHandler.SuggestedTasks)
		api.POST("/get-dev-categories", devTaskHandler.Categories)
		api.POST("/get-tasks-by-category", devTaskHandler.TasksByCategory)
		api.POST("/generate-code-snippet", devTaskHandler.CodeSnippet)

		// 历史记录
		plans := api.Group("/plans")
		{
			plans.GET("", planHandler.List)
			plans.GET("/:id", planHandler.Get)
			plans.DELETE("/:id", planHandler.Delete)
		}
		api.GET("/tickets", ticketHandler.ListRecords)
	}

	return r
}
