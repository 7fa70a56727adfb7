package catalog

import (
	"context"
	"time"

	"github.com/bookhaven/bookhaven/internal/domain/catalog"
)

// AuthorCRUDUseCase 作者增删改查用例
type AuthorCRUDUseCase struct {
	catalogService catalog.Service
}

// NewAuthorCRUDUseCase 创建作者CRUD用例
func NewAuthorCRUDUseCase(catalogService catalog.Service) *AuthorCRUDUseCase {
	return &AuthorCRUDUseCase{
		catalogService: catalogService,
	}
}

// AuthorInput 作者写入参数
type AuthorInput struct {
	Name       string
	BirthDate  time.Time
	Biography  string
	CoverImage string
}

func (in AuthorInput) toEntity() *catalog.Author {
	return &catalog.Author{
		Name:       in.Name,
		BirthDate:  in.BirthDate,
		Biography:  in.Biography,
		CoverImage: in.CoverImage,
	}
}

func (uc *AuthorCRUDUseCase) Get(ctx context.Context, id uint) (*catalog.Author, error) {
	return uc.catalogService.GetAuthor(ctx, id)
}

func (uc *AuthorCRUDUseCase) List(ctx context.Context) ([]*catalog.Author, error) {
	return uc.catalogService.ListAuthors(ctx)
}

func (uc *AuthorCRUDUseCase) Create(ctx context.Context, in AuthorInput) (*catalog.Author, error) {
	return uc.catalogService.CreateAuthor(ctx, in.toEntity())
}

func (uc *AuthorCRUDUseCase) Update(ctx context.Context, id uint, in AuthorInput) (*catalog.Author, error) {
	return uc.catalogService.UpdateAuthor(ctx, id, in.toEntity())
}

// Delete 删除作者
// 不级联商品,商品侧悬挂引用由目录查询补"Unknown"容错
func (uc *AuthorCRUDUseCase) Delete(ctx context.Context, id uint) error {
	return uc.catalogService.DeleteAuthor(ctx, id)
}
