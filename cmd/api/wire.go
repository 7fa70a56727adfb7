//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 使用方式:
// Step 1: 运行 `wire gen ./cmd/api`
// Step 2: Wire生成wire_gen.go,包含完整的依赖创建代码
// Step 3: 用InitializeApp()替换main.go中的手动组装
//
// 核心概念:
// - Provider: 提供依赖的构造函数(如NewSellItemRepository)
// - Injector: 声明最终要构造的目标类型(*gin.Engine)

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

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
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewSellItemRepository,
	mysql.NewAuthorRepository,
	mysql.NewItemTypeRepository,
	mysql.NewEventRepository,
	mysql.NewRegistrationRepository,
	mysql.NewSubscriberRepository,
	mysql.NewTxManager,
	wire.Bind(new(event.Transactor), new(*mysql.TxManager)),
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	catalog.NewService,
	event.NewService,
	subscriber.NewService,
)

// cacheSet 缓存依赖
// 三个缓存接口都由同一个CatalogCache实现
var cacheSet = wire.NewSet(
	provideCatalogCache,
	wire.Bind(new(appcatalog.CategoryCache), new(*redis.CatalogCache)),
	wire.Bind(new(appevent.EventTypeCache), new(*redis.CatalogCache)),
	wire.Bind(new(appsubscriber.CountCache), new(*redis.CatalogCache)),
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appcatalog.NewListItemsUseCase,
	appcatalog.NewSearchItemsUseCase,
	appcatalog.NewListCategoriesUseCase,
	appcatalog.NewItemCRUDUseCase,
	appcatalog.NewAuthorCRUDUseCase,
	appcatalog.NewItemTypeCRUDUseCase,
	appevent.NewManageEventsUseCase,
	appevent.NewRegisterUseCase,
	appsubscriber.NewSubscribeUseCase,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewCatalogHandler,
	handler.NewAuthorHandler,
	handler.NewItemTypeHandler,
	handler.NewEventHandler,
	handler.NewSubscriberHandler,
)

// provideCatalogCache 从Redis客户端与缓存配置创建目录缓存
func provideCatalogCache(client *goredis.Client, cfg *config.Config) *redis.CatalogCache {
	return redis.NewCatalogCache(client, cfg.Cache)
}

// provideGinEngine 创建并配置Gin引擎(中间件+路由)
func provideGinEngine(
	cfg *config.Config,
	catalogHandler *handler.CatalogHandler,
	authorHandler *handler.AuthorHandler,
	itemTypeHandler *handler.ItemTypeHandler,
	eventHandler *handler.EventHandler,
	subscriberHandler *handler.SubscriberHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.AccessLog())
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.Metrics())

	registerRoutes(r, catalogHandler, authorHandler, itemTypeHandler, eventHandler, subscriberHandler)
	return r
}

// InitializeApp 初始化整个应用(Wire Injector)
// 依赖链: *gin.Engine ← Handler ← UseCase ← Service ← Repository ← *gorm.DB ← *config.Config
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		cacheSet,
		applicationSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
