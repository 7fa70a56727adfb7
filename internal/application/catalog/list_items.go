package catalog

import (
	"context"

	"github.com/bookhaven/bookhaven/internal/domain/catalog"
	"github.com/bookhaven/bookhaven/pkg/metrics"
)

// ListItemsUseCase 商品目录分页查询用例
// 设计说明:
// 1. 分页参数的钳位在领域服务完成,这里只做透传
// 2. search参数为空时退化为纯分页浏览
type ListItemsUseCase struct {
	catalogService catalog.Service
}

// NewListItemsUseCase 创建目录查询用例
func NewListItemsUseCase(catalogService catalog.Service) *ListItemsUseCase {
	return &ListItemsUseCase{
		catalogService: catalogService,
	}
}

// ListItemsRequest 目录查询请求
type ListItemsRequest struct {
	PageNumber int    // 页码(从1开始)
	PageSize   int    // 每页数量(默认6,最大50)
	Search     string // 过滤词(标题/描述/ISBN子串匹配)
}

// Execute 执行目录分页查询
func (uc *ListItemsUseCase) Execute(ctx context.Context, req ListItemsRequest) (*catalog.ItemPage, error) {
	page, err := uc.catalogService.ListItems(ctx, req.PageNumber, req.PageSize, req.Search)
	if err != nil {
		return nil, err
	}

	if req.Search != "" {
		metrics.CatalogSearchesTotal.WithLabelValues("filter").Inc()
	}
	return page, nil
}
