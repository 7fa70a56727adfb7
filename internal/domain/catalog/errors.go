package catalog

import (
	apperrors "github.com/bookhaven/bookhaven/pkg/errors"
)

// 目录领域错误定义
// 注意:Message即对外响应体的message字段,保持与站点文案一致
var (
	// ErrItemNotFound 商品不存在(格式化消息见NewItemNotFound)
	ErrItemNotFound = apperrors.New(apperrors.ErrCodeItemNotFound, "Item not found.")

	// ErrAuthorNotFound 作者不存在
	ErrAuthorNotFound = apperrors.New(apperrors.ErrCodeAuthorNotFound, "Author not found.")

	// ErrItemTypeNotFound 商品类别不存在
	ErrItemTypeNotFound = apperrors.New(apperrors.ErrCodeItemTypeNotFound, "Item type not found.")

	// ErrQueryRequired 搜索词为空
	ErrQueryRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "Search query is required.")

	// 字段校验错误
	ErrTitleRequired      = apperrors.New(apperrors.ErrCodeInvalidParams, "The Title field is required.")
	ErrAuthorIDRequired   = apperrors.New(apperrors.ErrCodeInvalidParams, "The AuthorId field is required.")
	ErrItemTypeIDRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "The ItemTypeId field is required.")
	ErrNameRequired       = apperrors.New(apperrors.ErrCodeInvalidParams, "The Name field is required.")
	ErrInvalidPrice       = apperrors.New(apperrors.ErrCodeInvalidParams, "Price must not be negative.")
	ErrInvalidStock       = apperrors.New(apperrors.ErrCodeInvalidParams, "Stock quantity must not be negative.")
	ErrInvalidISBN        = apperrors.New(apperrors.ErrCodeInvalidParams, "ISBN must be at most 13 characters.")
)

// NewItemNotFound 带ID的商品不存在错误
func NewItemNotFound(id uint) *apperrors.AppError {
	return apperrors.Newf(apperrors.ErrCodeItemNotFound, "Item with ID %d not found.", id)
}

// NewAuthorNotFound 带ID的作者不存在错误
func NewAuthorNotFound(id uint) *apperrors.AppError {
	return apperrors.Newf(apperrors.ErrCodeAuthorNotFound, "Author with ID %d not found.", id)
}

// NewItemTypeNotFound 带ID的类别不存在错误
func NewItemTypeNotFound(id uint) *apperrors.AppError {
	return apperrors.Newf(apperrors.ErrCodeItemTypeNotFound, "Item type with ID %d not found.", id)
}
