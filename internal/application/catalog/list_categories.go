package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/bookhaven/bookhaven/internal/domain/catalog"
	"github.com/bookhaven/bookhaven/pkg/logger"
)

// CategoryCache 类别列表缓存抽象
// 由infrastructure层的Redis缓存实现;miss返回false
type CategoryCache interface {
	GetCategories(ctx context.Context) ([]catalog.Category, bool)
	SetCategories(ctx context.Context, categories []catalog.Category)
}

// ListCategoriesUseCase 类别列表查询用例
// 设计说明:
// 1. cache-aside:先查Redis,miss回源数据库并回填
// 2. 缓存故障降级为直查数据库,绝不因缓存挂掉影响主链路
// 3. cache可为nil(本地开发不起Redis)
type ListCategoriesUseCase struct {
	catalogService catalog.Service
	cache          CategoryCache
}

// NewListCategoriesUseCase 创建类别查询用例
func NewListCategoriesUseCase(catalogService catalog.Service, cache CategoryCache) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		catalogService: catalogService,
		cache:          cache,
	}
}

// Execute 执行类别查询
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]catalog.Category, error) {
	if uc.cache != nil {
		if categories, ok := uc.cache.GetCategories(ctx); ok {
			return categories, nil
		}
	}

	categories, err := uc.catalogService.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.SetCategories(ctx, categories)
		logger.L().Debug("category cache refilled", zap.Int("count", len(categories)))
	}
	return categories, nil
}
