package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bookhaven/bookhaven/internal/domain/catalog"
	apperrors "github.com/bookhaven/bookhaven/pkg/errors"
)

// itemTypeRepository 商品类别仓储实现(MySQL)
type itemTypeRepository struct {
	db *gorm.DB
}

// NewItemTypeRepository 创建类别仓储
func NewItemTypeRepository(db *gorm.DB) catalog.ItemTypeRepository {
	return &itemTypeRepository{db: db}
}

func (r *itemTypeRepository) Create(ctx context.Context, itemType *catalog.ItemType) error {
	model := &ItemTypeModel{Name: itemType.Name, Description: itemType.Description}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "An error occurred while creating the item type.")
	}
	itemType.ID = model.ID
	return nil
}

func (r *itemTypeRepository) FindByID(ctx context.Context, id uint) (*catalog.ItemType, error) {
	var model ItemTypeModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.NewItemTypeNotFound(id)
		}
		return nil, apperrors.Wrap(err, "An error occurred while retrieving the item type.")
	}
	return toItemTypeEntity(&model), nil
}

func (r *itemTypeRepository) FindByIDs(ctx context.Context, ids []uint) ([]*catalog.ItemType, error) {
	if len(ids) == 0 {
		return []*catalog.ItemType{}, nil
	}
	var models []ItemTypeModel
	err := getDB(ctx, r.db).Where("id IN ?", ids).Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "An error occurred while retrieving item types.")
	}
	return toItemTypeEntities(models), nil
}

// FindIDsByNameLike 类别名包含term(不区分大小写)的类别ID集合
func (r *itemTypeRepository) FindIDsByNameLike(ctx context.Context, term string) ([]uint, error) {
	var ids []uint
	err := getDB(ctx, r.db).Model(&ItemTypeModel{}).
		Where("LOWER(name) LIKE ?", "%"+term+"%").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "An error occurred while searching item types.")
	}
	return ids, nil
}

func (r *itemTypeRepository) FindAll(ctx context.Context) ([]*catalog.ItemType, error) {
	var models []ItemTypeModel
	err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "An error occurred while retrieving item types.")
	}
	return toItemTypeEntities(models), nil
}

func (r *itemTypeRepository) Update(ctx context.Context, itemType *catalog.ItemType) error {
	model := &ItemTypeModel{ID: itemType.ID, Name: itemType.Name, Description: itemType.Description}
	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "An error occurred while updating the item type.")
	}
	return nil
}

func (r *itemTypeRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&ItemTypeModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "An error occurred while deleting the item type.")
	}
	if result.RowsAffected == 0 {
		return catalog.NewItemTypeNotFound(id)
	}
	return nil
}

func toItemTypeEntity(model *ItemTypeModel) *catalog.ItemType {
	return &catalog.ItemType{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
	}
}

func toItemTypeEntities(models []ItemTypeModel) []*catalog.ItemType {
	types := make([]*catalog.ItemType, len(models))
	for i := range models {
		types[i] = toItemTypeEntity(&models[i])
	}
	return types
}
