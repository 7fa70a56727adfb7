package catalog

import (
	"strings"
	"time"
)

// SellItem 在售商品实体(聚合根)
// 设计说明:
// 1. 书店在售条目的统一模型(图书/杂志/周边都走这一张表)
// 2. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 3. AuthorID/ItemTypeID是弱外键:引用方被删除后允许悬挂,
//    查询侧做容错补齐(见service.go的enrich)
type SellItem struct {
	ID            uint
	Title         string    // 标题
	AuthorID      uint      // 作者ID
	ItemTypeID    uint      // 商品类别ID
	PublishedDate time.Time // 出版/发行日期
	Description   string    // 描述(可为空)
	Price         int64     // 价格(单位:分)
	ISBN          string    // ISBN号(可为空,最长13位)
	StockQuantity int       // 库存数量
	CoverImage    string    // 封面(不透明字符串,通常是data URI)
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate 校验商品必填字段
// 业务规则:
// - 标题必填且非空白
// - 作者ID、类别ID必填(非0)
// - 价格、库存不能为负
// - ISBN最长13位(允许为空)
func (i *SellItem) Validate() error {
	if strings.TrimSpace(i.Title) == "" {
		return ErrTitleRequired
	}
	if i.AuthorID == 0 {
		return ErrAuthorIDRequired
	}
	if i.ItemTypeID == 0 {
		return ErrItemTypeIDRequired
	}
	if i.Price < 0 {
		return ErrInvalidPrice
	}
	if i.StockQuantity < 0 {
		return ErrInvalidStock
	}
	if len(i.ISBN) > 13 {
		return ErrInvalidISBN
	}
	return nil
}

// Overwrite 全量覆盖可变字段(PUT语义,无partial-patch)
func (i *SellItem) Overwrite(src *SellItem) {
	i.Title = src.Title
	i.AuthorID = src.AuthorID
	i.ItemTypeID = src.ItemTypeID
	i.PublishedDate = src.PublishedDate
	i.Description = src.Description
	i.Price = src.Price
	i.ISBN = src.ISBN
	i.StockQuantity = src.StockQuantity
	i.CoverImage = src.CoverImage
	i.UpdatedAt = time.Now()
}

// Author 作者实体
type Author struct {
	ID         uint
	Name       string    // 姓名
	BirthDate  time.Time // 出生日期
	Biography  string    // 简介
	CoverImage string    // 头像(不透明字符串)
}

// Validate 校验作者必填字段
func (a *Author) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

// ItemType 商品类别实体(如Books/Magazines/Products)
type ItemType struct {
	ID          uint
	Name        string // 类别名
	Description string // 描述
}

// Validate 校验类别必填字段
func (t *ItemType) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

// EnrichedItem 补齐了作者名与类别名的商品视图
// 查询引擎对外返回的展示模型,AuthorName/ItemTypeName
// 在引用悬挂时取字面量"Unknown"
type EnrichedItem struct {
	SellItem
	AuthorName   string
	ItemTypeName string
}

// Category 类别聚合项(目录筛选用)
type Category struct {
	ID   uint
	Name string
}
