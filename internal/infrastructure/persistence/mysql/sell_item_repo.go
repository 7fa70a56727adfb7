package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bookhaven/bookhaven/internal/domain/catalog"
	apperrors "github.com/bookhaven/bookhaven/pkg/errors"
)

// sellItemRepository 商品仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/catalog/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 搜索用LOWER(...) LIKE实现不区分大小写的子串匹配
type sellItemRepository struct {
	db *gorm.DB
}

// NewSellItemRepository 创建商品仓储
func NewSellItemRepository(db *gorm.DB) catalog.SellItemRepository {
	return &sellItemRepository{db: db}
}

// Create 创建商品
func (r *sellItemRepository) Create(ctx context.Context, item *catalog.SellItem) error {
	model := toSellItemModel(item)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "An error occurred while creating the item.")
	}
	item.ID = model.ID
	item.CreatedAt = model.CreatedAt
	item.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找商品
func (r *sellItemRepository) FindByID(ctx context.Context, id uint) (*catalog.SellItem, error) {
	var model SellItemModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.NewItemNotFound(id)
		}
		return nil, apperrors.Wrap(err, "An error occurred while retrieving the item.")
	}
	return toSellItemEntity(&model), nil
}

// Update 全量更新商品
func (r *sellItemRepository) Update(ctx context.Context, item *catalog.SellItem) error {
	model := toSellItemModel(item)
	model.ID = item.ID
	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "An error occurred while updating the item.")
	}
	item.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除商品(硬删除)
func (r *sellItemRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&SellItemModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "An error occurred while deleting the item.")
	}
	if result.RowsAffected == 0 {
		return catalog.NewItemNotFound(id)
	}
	return nil
}

// List 分页查询商品列表
// 设计说明:
// 1. 搜索词已由service规整为小写,LOWER(列) LIKE保证不区分大小写
// 2. Count在分页前执行(totalCount是过滤后全集的数量)
// 3. 按id升序保证稳定分页(插入序)
func (r *sellItemRepository) List(ctx context.Context, params catalog.ListParams) ([]*catalog.SellItem, int64, error) {
	query := getDB(ctx, r.db).Model(&SellItemModel{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(isbn) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "An error occurred while retrieving items.")
	}

	var models []SellItemModel
	offset := (params.Page - 1) * params.PageSize
	err := query.Order("id ASC").Limit(params.PageSize).Offset(offset).Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "An error occurred while retrieving items.")
	}

	return toSellItemEntities(models), total, nil
}

// Search 扩展搜索
// 自身字段命中 OR 作者ID命中 OR 类别ID命中,其余语义与List一致
func (r *sellItemRepository) Search(ctx context.Context, params catalog.SearchParams) ([]*catalog.SellItem, int64, error) {
	pattern := "%" + params.Term + "%"
	cond := getDB(ctx, r.db).
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(isbn) LIKE ?",
			pattern, pattern, pattern)
	if len(params.AuthorIDs) > 0 {
		cond = cond.Or("author_id IN ?", params.AuthorIDs)
	}
	if len(params.ItemTypeIDs) > 0 {
		cond = cond.Or("item_type_id IN ?", params.ItemTypeIDs)
	}

	query := getDB(ctx, r.db).Model(&SellItemModel{}).Where(cond)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "An error occurred while searching items.")
	}

	var models []SellItemModel
	offset := (params.Page - 1) * params.PageSize
	err := query.Order("id ASC").Limit(params.PageSize).Offset(offset).Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "An error occurred while searching items.")
	}

	return toSellItemEntities(models), total, nil
}

// DistinctItemTypeIDs 商品出现过的类别ID去重集合,ID升序
func (r *sellItemRepository) DistinctItemTypeIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	err := getDB(ctx, r.db).Model(&SellItemModel{}).
		Distinct("item_type_id").
		Order("item_type_id ASC").
		Pluck("item_type_id", &ids).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "An error occurred while retrieving categories.")
	}
	return ids, nil
}

// =========================================
// 模型转换
// =========================================

func toSellItemModel(item *catalog.SellItem) *SellItemModel {
	return &SellItemModel{
		Title:         item.Title,
		AuthorID:      item.AuthorID,
		ItemTypeID:    item.ItemTypeID,
		PublishedDate: item.PublishedDate,
		Description:   item.Description,
		Price:         item.Price,
		ISBN:          item.ISBN,
		StockQuantity: item.StockQuantity,
		CoverImage:    item.CoverImage,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

func toSellItemEntity(model *SellItemModel) *catalog.SellItem {
	return &catalog.SellItem{
		ID:            model.ID,
		Title:         model.Title,
		AuthorID:      model.AuthorID,
		ItemTypeID:    model.ItemTypeID,
		PublishedDate: model.PublishedDate,
		Description:   model.Description,
		Price:         model.Price,
		ISBN:          model.ISBN,
		StockQuantity: model.StockQuantity,
		CoverImage:    model.CoverImage,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func toSellItemEntities(models []SellItemModel) []*catalog.SellItem {
	items := make([]*catalog.SellItem, len(models))
	for i := range models {
		items[i] = toSellItemEntity(&models[i])
	}
	return items
}
