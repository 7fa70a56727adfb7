package dto

import (
	"time"

	"github.com/bookhaven/bookhaven/internal/domain/catalog"
)

// ItemResponse HTTP商品响应
// 字段名与站点端约定一致(camelCase)
type ItemResponse struct {
	ID            uint      `json:"id" example:"1"`
	Title         string    `json:"title" example:"The Great Gatsby"`
	AuthorID      uint      `json:"authorId" example:"1"`
	ItemTypeID    uint      `json:"itemTypeId" example:"1"`
	PublishedDate time.Time `json:"publishedDate"`
	Description   string    `json:"description" example:"A classic novel"`
	Price         int64     `json:"price" example:"1299"` // 价格(分)
	ISBN          string    `json:"isbn" example:"9780743273565"`
	StockQuantity int       `json:"stockQuantity" example:"25"`
	CoverImage    string    `json:"coverImage"`
}

// EnrichedItemResponse 补齐了作者名/类别名的商品响应(列表与搜索用)
type EnrichedItemResponse struct {
	ItemResponse
	AuthorName   string `json:"authorName" example:"F. Scott Fitzgerald"`
	ItemTypeName string `json:"itemTypeName" example:"Books"`
}

// ListItemsResponse HTTP目录分页响应
// 键名是站点端契约,totalBooks/searchTerm不能改
type ListItemsResponse struct {
	PageNumber int                    `json:"pageNumber" example:"1"`
	PageSize   int                    `json:"pageSize" example:"6"`
	TotalBooks int64                  `json:"totalBooks" example:"42"`
	TotalPages int                    `json:"totalPages" example:"7"`
	SearchTerm string                 `json:"searchTerm" example:"gatsby"`
	Data       []EnrichedItemResponse `json:"data"`
}

// SearchItemsResponse HTTP搜索分页响应
// 与列表响应的唯一区别:searchTerm → searchQuery
type SearchItemsResponse struct {
	PageNumber  int                    `json:"pageNumber" example:"1"`
	PageSize    int                    `json:"pageSize" example:"6"`
	TotalBooks  int64                  `json:"totalBooks" example:"3"`
	TotalPages  int                    `json:"totalPages" example:"1"`
	SearchQuery string                 `json:"searchQuery" example:"fitzgerald"`
	Data        []EnrichedItemResponse `json:"data"`
}

// ItemRequest HTTP商品写入请求(创建与全量更新共用)
type ItemRequest struct {
	Title         string    `json:"title" binding:"required,max=200" example:"The Great Gatsby"`
	AuthorID      uint      `json:"authorId" binding:"required" example:"1"`
	ItemTypeID    uint      `json:"itemTypeId" binding:"required" example:"1"`
	PublishedDate time.Time `json:"publishedDate"`
	Description   string    `json:"description" binding:"max=5000"`
	Price         int64     `json:"price" binding:"min=0" example:"1299"`
	ISBN          string    `json:"isbn" binding:"max=13" example:"9780743273565"`
	StockQuantity int       `json:"stockQuantity" binding:"min=0" example:"25"`
	CoverImage    string    `json:"coverImage"`
}

// UpdateItemResponse 更新商品响应({message, item})
type UpdateItemResponse struct {
	Message string       `json:"message" example:"Item updated successfully."`
	Item    ItemResponse `json:"item"`
}

// CategoryResponse 类别聚合项
type CategoryResponse struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"Books"`
}

// AuthorResponse HTTP作者响应
type AuthorResponse struct {
	ID         uint      `json:"id" example:"1"`
	Name       string    `json:"name" example:"F. Scott Fitzgerald"`
	BirthDate  time.Time `json:"birthDate"`
	Biography  string    `json:"biography"`
	CoverImage string    `json:"coverImage"`
}

// AuthorRequest HTTP作者写入请求
type AuthorRequest struct {
	Name       string    `json:"name" binding:"required,max=100" example:"F. Scott Fitzgerald"`
	BirthDate  time.Time `json:"birthDate"`
	Biography  string    `json:"biography"`
	CoverImage string    `json:"coverImage"`
}

// ItemTypeResponse HTTP商品类别响应
type ItemTypeResponse struct {
	ID          uint   `json:"id" example:"1"`
	Name        string `json:"name" example:"Books"`
	Description string `json:"description"`
}

// ItemTypeRequest HTTP类别写入请求
type ItemTypeRequest struct {
	Name        string `json:"name" binding:"required,max=100" example:"Books"`
	Description string `json:"description"`
}

// =========================================
// 转换函数
// =========================================

// ToItemResponse 领域实体 → HTTP响应
func ToItemResponse(item *catalog.SellItem) ItemResponse {
	return ItemResponse{
		ID:            item.ID,
		Title:         item.Title,
		AuthorID:      item.AuthorID,
		ItemTypeID:    item.ItemTypeID,
		PublishedDate: item.PublishedDate,
		Description:   item.Description,
		Price:         item.Price,
		ISBN:          item.ISBN,
		StockQuantity: item.StockQuantity,
		CoverImage:    item.CoverImage,
	}
}

// ToEnrichedItemResponses 补齐视图 → HTTP响应列表
// 注意:空页也返回空数组而不是null,站点端直接遍历data
func ToEnrichedItemResponses(items []catalog.EnrichedItem) []EnrichedItemResponse {
	responses := make([]EnrichedItemResponse, len(items))
	for i, item := range items {
		responses[i] = EnrichedItemResponse{
			ItemResponse: ToItemResponse(&item.SellItem),
			AuthorName:   item.AuthorName,
			ItemTypeName: item.ItemTypeName,
		}
	}
	return responses
}

// ToAuthorResponse 作者实体 → HTTP响应
func ToAuthorResponse(author *catalog.Author) AuthorResponse {
	return AuthorResponse{
		ID:         author.ID,
		Name:       author.Name,
		BirthDate:  author.BirthDate,
		Biography:  author.Biography,
		CoverImage: author.CoverImage,
	}
}

// ToItemTypeResponse 类别实体 → HTTP响应
func ToItemTypeResponse(itemType *catalog.ItemType) ItemTypeResponse {
	return ItemTypeResponse{
		ID:          itemType.ID,
		Name:        itemType.Name,
		Description: itemType.Description,
	}
}

// ToCategoryResponses 类别聚合 → HTTP响应列表
func ToCategoryResponses(categories []catalog.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = CategoryResponse{ID: c.ID, Name: c.Name}
	}
	return responses
}
