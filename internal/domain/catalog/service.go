package catalog

import (
	"context"
	"strings"
	"time"
)

// 分页规则
// 业务规则:
// - 页码最小为1,非法值重置为1
// - 每页数量默认6,小于1重置为默认,大于50钳位到50
const (
	DefaultPageSize = 6
	MaxPageSize     = 50
)

// ItemPage 分页查询结果
// TotalCount在分页前统计,TotalPages=ceil(TotalCount/PageSize)
type ItemPage struct {
	PageNumber int
	PageSize   int
	TotalCount int64
	TotalPages int
	Items      []EnrichedItem
}

// Service 目录查询引擎(领域服务)
// 职责:
// 1. 商品的分页/搜索视图构建,含页内作者名/类别名补齐
// 2. 商品/作者/类别的CRUD与字段校验
// 设计说明:补齐是应用层的best-effort左外连接,
// 悬挂外键不报错,替换为字面量"Unknown"
type Service interface {
	// GetItem 根据ID获取商品原始记录
	GetItem(ctx context.Context, id uint) (*SellItem, error)

	// ListItems 分页查询商品
	// search非空(去空白后)时按小写子串OR匹配标题/描述/ISBN
	ListItems(ctx context.Context, pageNumber, pageSize int, search string) (*ItemPage, error)

	// SearchItems 扩展搜索
	// 除自身字段外,作者名或类别名命中搜索词的商品也计入结果,
	// 用户可以直接搜作者或类别
	// 业务规则:query为空(去空白后)报参数错误
	SearchItems(ctx context.Context, query string, pageNumber, pageSize int) (*ItemPage, error)

	// ListCategories 商品实际出现过的类别集合,ID升序
	ListCategories(ctx context.Context) ([]Category, error)

	CreateItem(ctx context.Context, item *SellItem) (*SellItem, error)
	// UpdateItem 全量覆盖可变字段(无partial-patch语义)
	UpdateItem(ctx context.Context, id uint, item *SellItem) (*SellItem, error)
	DeleteItem(ctx context.Context, id uint) error

	GetAuthor(ctx context.Context, id uint) (*Author, error)
	ListAuthors(ctx context.Context) ([]*Author, error)
	CreateAuthor(ctx context.Context, author *Author) (*Author, error)
	UpdateAuthor(ctx context.Context, id uint, author *Author) (*Author, error)
	DeleteAuthor(ctx context.Context, id uint) error

	GetItemType(ctx context.Context, id uint) (*ItemType, error)
	ListItemTypes(ctx context.Context) ([]*ItemType, error)
	CreateItemType(ctx context.Context, itemType *ItemType) (*ItemType, error)
	UpdateItemType(ctx context.Context, id uint, itemType *ItemType) (*ItemType, error)
	DeleteItemType(ctx context.Context, id uint) error
}

// UnknownName 引用悬挂时的补齐占位名
// 站点端依赖这个字面量做展示,不能改
const UnknownName = "Unknown"

type service struct {
	itemRepo     SellItemRepository
	authorRepo   AuthorRepository
	itemTypeRepo ItemTypeRepository
}

// NewService 创建目录领域服务
func NewService(itemRepo SellItemRepository, authorRepo AuthorRepository, itemTypeRepo ItemTypeRepository) Service {
	return &service{
		itemRepo:     itemRepo,
		authorRepo:   authorRepo,
		itemTypeRepo: itemTypeRepo,
	}
}

// GetItem 根据ID获取商品
func (s *service) GetItem(ctx context.Context, id uint) (*SellItem, error) {
	return s.itemRepo.FindByID(ctx, id)
}

// ListItems 分页查询商品
func (s *service) ListItems(ctx context.Context, pageNumber, pageSize int, search string) (*ItemPage, error) {
	pageNumber, pageSize = normalizePaging(pageNumber, pageSize)

	// 搜索词规整:去首尾空白、转小写
	term := strings.ToLower(strings.TrimSpace(search))

	items, total, err := s.itemRepo.List(ctx, ListParams{
		Page:     pageNumber,
		PageSize: pageSize,
		Search:   term,
	})
	if err != nil {
		return nil, err
	}

	// 只对当前页补齐,不碰整个过滤集
	enriched, err := s.enrich(ctx, items)
	if err != nil {
		return nil, err
	}

	return &ItemPage{
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: totalPages(total, pageSize),
		Items:      enriched,
	}, nil
}

// SearchItems 扩展搜索
func (s *service) SearchItems(ctx context.Context, query string, pageNumber, pageSize int) (*ItemPage, error) {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil, ErrQueryRequired
	}

	pageNumber, pageSize = normalizePaging(pageNumber, pageSize)

	// 1. 先用搜索词反查命中的作者/类别ID集合
	authorIDs, err := s.authorRepo.FindIDsByNameLike(ctx, term)
	if err != nil {
		return nil, err
	}
	itemTypeIDs, err := s.itemTypeRepo.FindIDsByNameLike(ctx, term)
	if err != nil {
		return nil, err
	}

	// 2. 自身字段 OR 作者ID OR 类别ID,计数在分页前
	items, total, err := s.itemRepo.Search(ctx, SearchParams{
		Term:        term,
		AuthorIDs:   authorIDs,
		ItemTypeIDs: itemTypeIDs,
		Page:        pageNumber,
		PageSize:    pageSize,
	})
	if err != nil {
		return nil, err
	}

	enriched, err := s.enrich(ctx, items)
	if err != nil {
		return nil, err
	}

	return &ItemPage{
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: totalPages(total, pageSize),
		Items:      enriched,
	}, nil
}

// ListCategories 商品出现过的类别集合
// 类别名从ItemType表补齐,悬挂ID取"Unknown"
func (s *service) ListCategories(ctx context.Context) ([]Category, error) {
	ids, err := s.itemRepo.DistinctItemTypeIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []Category{}, nil
	}

	types, err := s.itemTypeRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(types))
	for _, t := range types {
		names[t.ID] = t.Name
	}

	categories := make([]Category, len(ids))
	for i, id := range ids {
		name, ok := names[id]
		if !ok {
			name = UnknownName
		}
		categories[i] = Category{ID: id, Name: name}
	}
	return categories, nil
}

// CreateItem 创建商品
func (s *service) CreateItem(ctx context.Context, item *SellItem) (*SellItem, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem 全量更新商品
func (s *service) UpdateItem(ctx context.Context, id uint, item *SellItem) (*SellItem, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Overwrite(item)
	if err := s.itemRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteItem 删除商品
func (s *service) DeleteItem(ctx context.Context, id uint) error {
	return s.itemRepo.Delete(ctx, id)
}

// =========================================
// 作者CRUD
// =========================================

func (s *service) GetAuthor(ctx context.Context, id uint) (*Author, error) {
	return s.authorRepo.FindByID(ctx, id)
}

func (s *service) ListAuthors(ctx context.Context) ([]*Author, error) {
	return s.authorRepo.FindAll(ctx)
}

func (s *service) CreateAuthor(ctx context.Context, author *Author) (*Author, error) {
	if err := author.Validate(); err != nil {
		return nil, err
	}
	if err := s.authorRepo.Create(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}

func (s *service) UpdateAuthor(ctx context.Context, id uint, author *Author) (*Author, error) {
	if err := author.Validate(); err != nil {
		return nil, err
	}
	existing, err := s.authorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = author.Name
	existing.BirthDate = author.BirthDate
	existing.Biography = author.Biography
	existing.CoverImage = author.CoverImage
	if err := s.authorRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteAuthor 删除作者
// 注意:不校验是否仍被商品引用,悬挂引用由查询侧容错(补"Unknown")
func (s *service) DeleteAuthor(ctx context.Context, id uint) error {
	return s.authorRepo.Delete(ctx, id)
}

// =========================================
// 商品类别CRUD
// =========================================

func (s *service) GetItemType(ctx context.Context, id uint) (*ItemType, error) {
	return s.itemTypeRepo.FindByID(ctx, id)
}

func (s *service) ListItemTypes(ctx context.Context) ([]*ItemType, error) {
	return s.itemTypeRepo.FindAll(ctx)
}

func (s *service) CreateItemType(ctx context.Context, itemType *ItemType) (*ItemType, error) {
	if err := itemType.Validate(); err != nil {
		return nil, err
	}
	if err := s.itemTypeRepo.Create(ctx, itemType); err != nil {
		return nil, err
	}
	return itemType, nil
}

func (s *service) UpdateItemType(ctx context.Context, id uint, itemType *ItemType) (*ItemType, error) {
	if err := itemType.Validate(); err != nil {
		return nil, err
	}
	existing, err := s.itemTypeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.Name = itemType.Name
	existing.Description = itemType.Description
	if err := s.itemTypeRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *service) DeleteItemType(ctx context.Context, id uint) error {
	return s.itemTypeRepo.Delete(ctx, id)
}

// =========================================
// 辅助函数
// =========================================

// enrich 页内批量补齐作者名与类别名
// 设计说明:
// 1. 只按当前页出现的ID集合批量查,上限受页大小约束
// 2. 查不到的ID补"Unknown",绝不让整个请求失败
func (s *service) enrich(ctx context.Context, items []*SellItem) ([]EnrichedItem, error) {
	if len(items) == 0 {
		return []EnrichedItem{}, nil
	}

	authorIDSet := make(map[uint]struct{}, len(items))
	typeIDSet := make(map[uint]struct{}, len(items))
	for _, item := range items {
		authorIDSet[item.AuthorID] = struct{}{}
		typeIDSet[item.ItemTypeID] = struct{}{}
	}

	authors, err := s.authorRepo.FindByIDs(ctx, keys(authorIDSet))
	if err != nil {
		return nil, err
	}
	types, err := s.itemTypeRepo.FindByIDs(ctx, keys(typeIDSet))
	if err != nil {
		return nil, err
	}

	authorNames := make(map[uint]string, len(authors))
	for _, a := range authors {
		authorNames[a.ID] = a.Name
	}
	typeNames := make(map[uint]string, len(types))
	for _, t := range types {
		typeNames[t.ID] = t.Name
	}

	enriched := make([]EnrichedItem, len(items))
	for i, item := range items {
		authorName, ok := authorNames[item.AuthorID]
		if !ok {
			authorName = UnknownName
		}
		typeName, ok := typeNames[item.ItemTypeID]
		if !ok {
			typeName = UnknownName
		}
		enriched[i] = EnrichedItem{
			SellItem:     *item,
			AuthorName:   authorName,
			ItemTypeName: typeName,
		}
	}
	return enriched, nil
}

// normalizePaging 分页参数钳位
func normalizePaging(pageNumber, pageSize int) (int, int) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return pageNumber, pageSize
}

// totalPages 总页数,totalCount为0时为0
func totalPages(total int64, pageSize int) int {
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

func keys(set map[uint]struct{}) []uint {
	ids := make([]uint, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}
