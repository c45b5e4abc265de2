package main

import (
	"flag"
	"log"
	"os"

	"k8s.io/klog/v2"

	"github.com/plan2code/backend/config"
	"github.com/plan2code/backend/internal/eventbus"
	"github.com/plan2code/backend/internal/eventsubscriber"
	"github.com/plan2code/backend/internal/handler"
	"github.com/plan2code/backend/internal/pkg/database"
	"github.com/plan2code/backend/internal/pkg/llm"
	"github.com/plan2code/backend/internal/repository"
	"github.com/plan2code/backend/internal/router"
	"github.com/plan2code/backend/internal/service/devtasks"
	"github.com/plan2code/backend/internal/service/intake"
	"github.com/plan2code/backend/internal/service/pipeline"
	"github.com/plan2code/backend/internal/service/planner"
	"github.com/plan2code/backend/internal/service/tracker"
)

func main() {
	// 初始化 klog
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	klog.V(6).Info("服务启动中...")

	cfg := config.GetConfig()

	if err := os.MkdirAll(cfg.Data.Dir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	// 初始化数据库
	db, err := database.InitDB(cfg.Database.Type, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// 初始化 Repository
	planRepo := repository.NewPlanRepository(db)
	ticketRepo := repository.NewTicketRepository(db)

	// 初始化事件总线与订阅者
	planBus := eventbus.NewPlanEventBus()
	ticketBus := eventbus.NewTicketEventBus()
	defer eventsubscriber.NewPlanActivityLogger().Register(planBus)()
	defer eventsubscriber.NewTicketRecorder(ticketRepo).Register(ticketBus)()

	// LLM 客户端在进程内共享，只读配置
	llmClient := llm.NewClient(cfg)

	// 初始化 Service
	intakeService := intake.NewService(llmClient)
	runner := pipeline.NewRunner(llmClient)
	synthesizer := pipeline.NewSynthesizer(llmClient)
	plannerService := planner.NewService(intakeService, runner, synthesizer, llmClient, planRepo, planBus)
	devTaskService := devtasks.NewService(llmClient)

	ticketStore := tracker.NewStore(cfg.Data.TicketStorePath)
	pushService := tracker.NewService(tracker.NewJiraClient(cfg), ticketStore, ticketBus)

	// 初始化 Handler
	planHandler := handler.NewPlanHandler(plannerService)
	ticketHandler := handler.NewTicketHandler(devTaskService, pushService, ticketRepo)
	devTaskHandler := handler.NewDevTaskHandler(devTaskService)

	// 设置路由
	r := router.Setup(cfg, planHandler, ticketHandler, devTaskHandler)

	log.Printf("Server starting on port %s...", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
