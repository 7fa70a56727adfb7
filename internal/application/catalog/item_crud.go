package catalog

import (
	"context"
	"time"

	"github.com/bookhaven/bookhaven/internal/domain/catalog"
)

// ItemCRUDUseCase 商品增删改查用例
// 设计说明:四个写操作共享一个用例结构,
// 字段校验与全量覆盖语义都在领域服务内,这里只做DTO装配
type ItemCRUDUseCase struct {
	catalogService catalog.Service
}

// NewItemCRUDUseCase 创建商品CRUD用例
func NewItemCRUDUseCase(catalogService catalog.Service) *ItemCRUDUseCase {
	return &ItemCRUDUseCase{
		catalogService: catalogService,
	}
}

// ItemInput 商品写入参数(创建与全量更新共用)
type ItemInput struct {
	Title         string
	AuthorID      uint
	ItemTypeID    uint
	PublishedDate time.Time
	Description   string
	Price         int64 // 价格(分)
	ISBN          string
	StockQuantity int
	CoverImage    string
}

func (in ItemInput) toEntity() *catalog.SellItem {
	return &catalog.SellItem{
		Title:         in.Title,
		AuthorID:      in.AuthorID,
		ItemTypeID:    in.ItemTypeID,
		PublishedDate: in.PublishedDate,
		Description:   in.Description,
		Price:         in.Price,
		ISBN:          in.ISBN,
		StockQuantity: in.StockQuantity,
		CoverImage:    in.CoverImage,
	}
}

// Get 根据ID获取商品
func (uc *ItemCRUDUseCase) Get(ctx context.Context, id uint) (*catalog.SellItem, error) {
	return uc.catalogService.GetItem(ctx, id)
}

// Create 创建商品
func (uc *ItemCRUDUseCase) Create(ctx context.Context, in ItemInput) (*catalog.SellItem, error) {
	return uc.catalogService.CreateItem(ctx, in.toEntity())
}

// Update 全量更新商品
func (uc *ItemCRUDUseCase) Update(ctx context.Context, id uint, in ItemInput) (*catalog.SellItem, error) {
	return uc.catalogService.UpdateItem(ctx, id, in.toEntity())
}

// Delete 删除商品
func (uc *ItemCRUDUseCase) Delete(ctx context.Context, id uint) error {
	return uc.catalogService.DeleteItem(ctx, id)
}
