package catalog

import (
	"context"

	"github.com/bookhaven/bookhaven/internal/domain/catalog"
)

// ItemTypeCRUDUseCase 商品类别增删改查用例
type ItemTypeCRUDUseCase struct {
	catalogService catalog.Service
}

// NewItemTypeCRUDUseCase 创建类别CRUD用例
func NewItemTypeCRUDUseCase(catalogService catalog.Service) *ItemTypeCRUDUseCase {
	return &ItemTypeCRUDUseCase{
		catalogService: catalogService,
	}
}

// ItemTypeInput 类别写入参数
type ItemTypeInput struct {
	Name        string
	Description string
}

func (in ItemTypeInput) toEntity() *catalog.ItemType {
	return &catalog.ItemType{
		Name:        in.Name,
		Description: in.Description,
	}
}

func (uc *ItemTypeCRUDUseCase) Get(ctx context.Context, id uint) (*catalog.ItemType, error) {
	return uc.catalogService.GetItemType(ctx, id)
}

func (uc *ItemTypeCRUDUseCase) List(ctx context.Context) ([]*catalog.ItemType, error) {
	return uc.catalogService.ListItemTypes(ctx)
}

func (uc *ItemTypeCRUDUseCase) Create(ctx context.Context, in ItemTypeInput) (*catalog.ItemType, error) {
	return uc.catalogService.CreateItemType(ctx, in.toEntity())
}

func (uc *ItemTypeCRUDUseCase) Update(ctx context.Context, id uint, in ItemTypeInput) (*catalog.ItemType, error) {
	return uc.catalogService.UpdateItemType(ctx, id, in.toEntity())
}

func (uc *ItemTypeCRUDUseCase) Delete(ctx context.Context, id uint) error {
	return uc.catalogService.DeleteItemType(ctx, id)
}
