package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bookhaven/bookhaven/internal/domain/catalog"
	apperrors "github.com/bookhaven/bookhaven/pkg/errors"
)

// authorRepository 作者仓储实现(MySQL)
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) catalog.AuthorRepository {
	return &authorRepository{db: db}
}

func (r *authorRepository) Create(ctx context.Context, author *catalog.Author) error {
	model := toAuthorModel(author)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "An error occurred while creating the author.")
	}
	author.ID = model.ID
	return nil
}

func (r *authorRepository) FindByID(ctx context.Context, id uint) (*catalog.Author, error) {
	var model AuthorModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.NewAuthorNotFound(id)
		}
		return nil, apperrors.Wrap(err, "An error occurred while retrieving the author.")
	}
	return toAuthorEntity(&model), nil
}

// FindByIDs 批量查找(页内补齐用)
// 缺失的ID缺席于返回值,调用方自行补"Unknown"
func (r *authorRepository) FindByIDs(ctx context.Context, ids []uint) ([]*catalog.Author, error) {
	if len(ids) == 0 {
		return []*catalog.Author{}, nil
	}
	var models []AuthorModel
	err := getDB(ctx, r.db).Where("id IN ?", ids).Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "An error occurred while retrieving authors.")
	}
	return toAuthorEntities(models), nil
}

// FindIDsByNameLike 姓名包含term(不区分大小写)的作者ID集合
func (r *authorRepository) FindIDsByNameLike(ctx context.Context, term string) ([]uint, error) {
	var ids []uint
	err := getDB(ctx, r.db).Model(&AuthorModel{}).
		Where("LOWER(name) LIKE ?", "%"+term+"%").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "An error occurred while searching authors.")
	}
	return ids, nil
}

func (r *authorRepository) FindAll(ctx context.Context) ([]*catalog.Author, error) {
	var models []AuthorModel
	err := getDB(ctx, r.db).Order("id ASC").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "An error occurred while retrieving authors.")
	}
	return toAuthorEntities(models), nil
}

func (r *authorRepository) Update(ctx context.Context, author *catalog.Author) error {
	model := toAuthorModel(author)
	model.ID = author.ID
	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "An error occurred while updating the author.")
	}
	return nil
}

func (r *authorRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&AuthorModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "An error occurred while deleting the author.")
	}
	if result.RowsAffected == 0 {
		return catalog.NewAuthorNotFound(id)
	}
	return nil
}

func toAuthorModel(author *catalog.Author) *AuthorModel {
	return &AuthorModel{
		Name:       author.Name,
		BirthDate:  author.BirthDate,
		Biography:  author.Biography,
		CoverImage: author.CoverImage,
	}
}

func toAuthorEntity(model *AuthorModel) *catalog.Author {
	return &catalog.Author{
		ID:         model.ID,
		Name:       model.Name,
		BirthDate:  model.BirthDate,
		Biography:  model.Biography,
		CoverImage: model.CoverImage,
	}
}

func toAuthorEntities(models []AuthorModel) []*catalog.Author {
	authors := make([]*catalog.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors
}
