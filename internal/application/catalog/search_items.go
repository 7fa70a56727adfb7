package catalog

import (
	"context"

	"github.com/bookhaven/bookhaven/internal/domain/catalog"
	"github.com/bookhaven/bookhaven/pkg/metrics"
)

// SearchItemsUseCase 专用搜索用例
// 与列表过滤的区别:
// 1. 搜索词必填(空白 → 参数错误)
// 2. 匹配范围扩展到作者名和商品类别名
type SearchItemsUseCase struct {
	catalogService catalog.Service
}

// NewSearchItemsUseCase 创建搜索用例
func NewSearchItemsUseCase(catalogService catalog.Service) *SearchItemsUseCase {
	return &SearchItemsUseCase{
		catalogService: catalogService,
	}
}

// SearchItemsRequest 搜索请求
type SearchItemsRequest struct {
	Query      string // 搜索词(必填)
	PageNumber int
	PageSize   int
}

// Execute 执行搜索
func (uc *SearchItemsUseCase) Execute(ctx context.Context, req SearchItemsRequest) (*catalog.ItemPage, error) {
	page, err := uc.catalogService.SearchItems(ctx, req.Query, req.PageNumber, req.PageSize)
	if err != nil {
		return nil, err
	}

	metrics.CatalogSearchesTotal.WithLabelValues("search").Inc()
	return page, nil
}
