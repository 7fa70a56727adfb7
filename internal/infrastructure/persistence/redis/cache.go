package redis

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/bookhaven/bookhaven/internal/domain/catalog"
	"github.com/bookhaven/bookhaven/internal/infrastructure/config"
	"github.com/bookhaven/bookhaven/pkg/logger"
)

// 缓存键
const (
	keyCategories      = "bookhaven:categories"
	keyEventTypes      = "bookhaven:event_types"
	keySubscriberCount = "bookhaven:subscriber_count"
)

// CatalogCache 聚合查询的Redis缓存(cache-aside)
// 设计说明:
// 1. 类别/活动类型/订阅数都是低频变更的聚合查询,TTL短缓存
// 2. 任何Redis错误都按miss处理并记日志,主链路永远走得通
// 3. 同时实现application层三个缓存接口
type CatalogCache struct {
	client *redis.Client
	cfg    config.CacheConfig
}

// NewCatalogCache 创建目录缓存
func NewCatalogCache(client *redis.Client, cfg config.CacheConfig) *CatalogCache {
	return &CatalogCache{client: client, cfg: cfg}
}

// GetCategories 读类别列表缓存
func (c *CatalogCache) GetCategories(ctx context.Context) ([]catalog.Category, bool) {
	data, err := c.client.Get(ctx, keyCategories).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.L().Warn("读取类别缓存失败", zap.Error(err))
		}
		return nil, false
	}
	var categories []catalog.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		logger.L().Warn("类别缓存反序列化失败", zap.Error(err))
		return nil, false
	}
	return categories, true
}

// SetCategories 写类别列表缓存
func (c *CatalogCache) SetCategories(ctx context.Context, categories []catalog.Category) {
	data, err := json.Marshal(categories)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, keyCategories, data, c.cfg.CategoriesTTL).Err(); err != nil {
		logger.L().Warn("写入类别缓存失败", zap.Error(err))
	}
}

// GetEventTypes 读活动类型缓存
func (c *CatalogCache) GetEventTypes(ctx context.Context) ([]string, bool) {
	data, err := c.client.Get(ctx, keyEventTypes).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.L().Warn("读取活动类型缓存失败", zap.Error(err))
		}
		return nil, false
	}
	var types []string
	if err := json.Unmarshal(data, &types); err != nil {
		return nil, false
	}
	return types, true
}

// SetEventTypes 写活动类型缓存
func (c *CatalogCache) SetEventTypes(ctx context.Context, types []string) {
	data, err := json.Marshal(types)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, keyEventTypes, data, c.cfg.EventTypesTTL).Err(); err != nil {
		logger.L().Warn("写入活动类型缓存失败", zap.Error(err))
	}
}

// InvalidateEventTypes 活动写操作后失效活动类型缓存
func (c *CatalogCache) InvalidateEventTypes(ctx context.Context) {
	if err := c.client.Del(ctx, keyEventTypes).Err(); err != nil {
		logger.L().Warn("失效活动类型缓存失败", zap.Error(err))
	}
}

// GetActiveCount 读活跃订阅数缓存
func (c *CatalogCache) GetActiveCount(ctx context.Context) (int64, bool) {
	val, err := c.client.Get(ctx, keySubscriberCount).Result()
	if err != nil {
		if err != redis.Nil {
			logger.L().Warn("读取订阅数缓存失败", zap.Error(err))
		}
		return 0, false
	}
	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return count, true
}

// SetActiveCount 写活跃订阅数缓存
func (c *CatalogCache) SetActiveCount(ctx context.Context, count int64) {
	if err := c.client.Set(ctx, keySubscriberCount, count, c.cfg.SubscriberCountTTL).Err(); err != nil {
		logger.L().Warn("写入订阅数缓存失败", zap.Error(err))
	}
}

// InvalidateActiveCount 订阅/退订后失效订阅数缓存
func (c *CatalogCache) InvalidateActiveCount(ctx context.Context) {
	if err := c.client.Del(ctx, keySubscriberCount).Err(); err != nil {
		logger.L().Warn("失效订阅数缓存失败", zap.Error(err))
	}
}
