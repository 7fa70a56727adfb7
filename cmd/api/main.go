package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/bookhaven/bookhaven/docs"
	appcatalog "github.com/bookhaven/bookhaven/internal/application/catalog"
	appevent "github.com/bookhaven/bookhaven/internal/application/event"
	appsubscriber "github.com/bookhaven/bookhaven/internal/application/subscriber"
	"github.com/bookhaven/bookhaven/internal/domain/catalog"
	"github.com/bookhaven/bookhaven/internal/domain/event"
	"github.com/bookhaven/bookhaven/internal/domain/subscriber"
	"github.com/bookhaven/bookhaven/internal/infrastructure/config"
	"github.com/bookhaven/bookhaven/internal/infrastructure/persistence/mysql"
	"github.com/bookhaven/bookhaven/internal/infrastructure/persistence/redis"
	"github.com/bookhaven/bookhaven/internal/interface/http/handler"
	"github.com/bookhaven/bookhaven/internal/interface/http/middleware"
	"github.com/bookhaven/bookhaven/pkg/logger"
	"github.com/bookhaven/bookhaven/pkg/metrics"
	"github.com/bookhaven/bookhaven/pkg/response"
)

// @title        BookHaven API
// @version      1.0
// @description  书店目录、活动报名与邮件订阅API
// @BasePath     /api/v1

// main 主程序入口(手动依赖注入,wire.go提供等价的生成式注入)
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志
	if err := logger.Init(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		EnableCaller: cfg.Log.EnableCaller,
	}); err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer logger.Sync()

	// 3. 初始化指标
	metrics.InitMetrics()

	// 4. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		logger.L().Fatal("初始化数据库失败", zap.Error(err))
	}

	// 5. 初始化Redis缓存(可选,关闭时直查数据库)
	var (
		categoryCache  appcatalog.CategoryCache
		eventTypeCache appevent.EventTypeCache
		countCache     appsubscriber.CountCache
	)
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(cfg)
		if err != nil {
			logger.L().Fatal("初始化Redis失败", zap.Error(err))
		}
		cache := redis.NewCatalogCache(redisClient, cfg.Cache)
		categoryCache, eventTypeCache, countCache = cache, cache, cache
	}

	// 6. 依赖注入(手动组装)
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层
	itemRepo := mysql.NewSellItemRepository(db)
	authorRepo := mysql.NewAuthorRepository(db)
	itemTypeRepo := mysql.NewItemTypeRepository(db)
	eventRepo := mysql.NewEventRepository(db)
	registrationRepo := mysql.NewRegistrationRepository(db)
	subscriberRepo := mysql.NewSubscriberRepository(db)
	txManager := mysql.NewTxManager(db)

	// 领域层
	catalogService := catalog.NewService(itemRepo, authorRepo, itemTypeRepo)
	eventService := event.NewService(eventRepo, registrationRepo, txManager)
	subscriberService := subscriber.NewService(subscriberRepo)

	// 应用层
	listItemsUseCase := appcatalog.NewListItemsUseCase(catalogService)
	searchItemsUseCase := appcatalog.NewSearchItemsUseCase(catalogService)
	listCategoriesUseCase := appcatalog.NewListCategoriesUseCase(catalogService, categoryCache)
	itemCRUDUseCase := appcatalog.NewItemCRUDUseCase(catalogService)
	authorCRUDUseCase := appcatalog.NewAuthorCRUDUseCase(catalogService)
	itemTypeCRUDUseCase := appcatalog.NewItemTypeCRUDUseCase(catalogService)
	manageEventsUseCase := appevent.NewManageEventsUseCase(eventService, eventTypeCache)
	registerUseCase := appevent.NewRegisterUseCase(eventService)
	subscribeUseCase := appsubscriber.NewSubscribeUseCase(subscriberService, countCache)

	// 接口层
	catalogHandler := handler.NewCatalogHandler(
		listItemsUseCase, searchItemsUseCase, listCategoriesUseCase, itemCRUDUseCase)
	authorHandler := handler.NewAuthorHandler(authorCRUDUseCase)
	itemTypeHandler := handler.NewItemTypeHandler(itemTypeCRUDUseCase)
	eventHandler := handler.NewEventHandler(manageEventsUseCase, registerUseCase)
	subscriberHandler := handler.NewSubscriberHandler(subscribeUseCase)

	// 7. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.AccessLog())
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.Metrics())

	registerRoutes(r, catalogHandler, authorHandler, itemTypeHandler, eventHandler, subscriberHandler)

	// 8. 启动服务(优雅停机)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.L().Info("服务启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("启动服务失败", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.L().Info("收到停止信号,开始优雅停机")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.L().Error("停机超时", zap.Error(err))
	}
	logger.L().Info("服务已停止")
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	catalogHandler *handler.CatalogHandler,
	authorHandler *handler.AuthorHandler,
	itemTypeHandler *handler.ItemTypeHandler,
	eventHandler *handler.EventHandler,
	subscriberHandler *handler.SubscriberHandler,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.OK(c, gin.H{"message": "pong", "status": "healthy"})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// API版本
		v1.GET("/version", func(c *gin.Context) {
			response.OK(c, gin.H{"version": "Version 1.0"})
		})

		// 商品目录
		items := v1.Group("/items")
		{
			items.GET("", catalogHandler.ListItems)
			items.GET("/search", catalogHandler.SearchItems)
			items.GET("/categories", catalogHandler.ListCategories)
			items.GET("/:id", catalogHandler.GetItem)
			items.POST("", catalogHandler.CreateItem)
			items.PUT("/:id", catalogHandler.UpdateItem)
			items.DELETE("/:id", catalogHandler.DeleteItem)
		}

		// 作者
		authors := v1.Group("/authors")
		{
			authors.GET("", authorHandler.ListAuthors)
			authors.GET("/:id", authorHandler.GetAuthor)
			authors.POST("", authorHandler.CreateAuthor)
			authors.PUT("/:id", authorHandler.UpdateAuthor)
			authors.DELETE("/:id", authorHandler.DeleteAuthor)
		}

		// 商品类别
		itemTypes := v1.Group("/item-types")
		{
			itemTypes.GET("", itemTypeHandler.ListItemTypes)
			itemTypes.GET("/:id", itemTypeHandler.GetItemType)
			itemTypes.POST("", itemTypeHandler.CreateItemType)
			itemTypes.PUT("/:id", itemTypeHandler.UpdateItemType)
			itemTypes.DELETE("/:id", itemTypeHandler.DeleteItemType)
		}

		// 活动与报名
		events := v1.Group("/events")
		{
			events.GET("", eventHandler.ListEvents)
			events.GET("/types/all", eventHandler.ListEventTypes)
			events.GET("/:id", eventHandler.GetEvent)
			events.POST("", eventHandler.CreateEvent)
			events.PUT("/:id", eventHandler.UpdateEvent)
			events.DELETE("/:id", eventHandler.CancelEvent)
			events.POST("/:id/register", eventHandler.Register)
			events.POST("/:id/unregister", eventHandler.Unregister)
			events.GET("/:id/registrations", eventHandler.ListRegistrations)
		}

		// 邮件订阅
		subscribers := v1.Group("/subscribers")
		{
			subscribers.POST("", subscriberHandler.Subscribe)
			subscribers.POST("/unsubscribe", subscriberHandler.Unsubscribe)
			subscribers.GET("/count", subscriberHandler.Count)
		}
	}
}
