package catalog

import (
	"context"
)

// ListParams 分页列表查询参数
// Search为空时不过滤;非空时按小写子串匹配标题/描述/ISBN
type ListParams struct {
	Page     int    // 页码(从1开始,调用前已钳位)
	PageSize int    // 每页数量(调用前已钳位到[1,50])
	Search   string // 规整后的搜索词(小写、去首尾空白)
}

// SearchParams 扩展搜索参数
// 除商品自身字段外,还按作者ID集合、类别ID集合匹配
// (ID集合由service先用搜索词查作者名/类别名得到)
type SearchParams struct {
	Term        string // 规整后的搜索词
	AuthorIDs   []uint // 名字命中搜索词的作者ID
	ItemTypeIDs []uint // 名字命中搜索词的类别ID
	Page        int
	PageSize    int
}

// SellItemRepository 商品仓储接口(依赖倒置)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于用内存伪实现做单元测试
// 3. List/Search的计数在分页前完成,结果按ID升序(稳定插入序)
type SellItemRepository interface {
	// Create 创建商品,回填自增ID
	Create(ctx context.Context, item *SellItem) error

	// FindByID 根据ID查找商品,不存在返回ItemNotFound类错误
	FindByID(ctx context.Context, id uint) (*SellItem, error)

	// Update 全量更新商品
	Update(ctx context.Context, item *SellItem) error

	// Delete 根据ID删除,不存在返回ItemNotFound类错误
	Delete(ctx context.Context, id uint) error

	// List 分页查询,返回当前页数据与过滤后总数
	List(ctx context.Context, params ListParams) ([]*SellItem, int64, error)

	// Search 扩展搜索(自身字段 OR 作者ID OR 类别ID),返回当前页与总数
	Search(ctx context.Context, params SearchParams) ([]*SellItem, int64, error)

	// DistinctItemTypeIDs 所有商品出现过的类别ID去重集合,ID升序
	DistinctItemTypeIDs(ctx context.Context) ([]uint, error)
}

// AuthorRepository 作者仓储接口
type AuthorRepository interface {
	Create(ctx context.Context, author *Author) error
	FindByID(ctx context.Context, id uint) (*Author, error)
	// FindByIDs 批量查找(用于页内补齐,入参按页大小有界)
	// 缺失的ID直接缺席于返回值,不报错
	FindByIDs(ctx context.Context, ids []uint) ([]*Author, error)
	// FindIDsByNameLike 姓名包含term(不区分大小写)的作者ID集合
	FindIDsByNameLike(ctx context.Context, term string) ([]uint, error)
	FindAll(ctx context.Context) ([]*Author, error)
	Update(ctx context.Context, author *Author) error
	Delete(ctx context.Context, id uint) error
}

// ItemTypeRepository 商品类别仓储接口
type ItemTypeRepository interface {
	Create(ctx context.Context, itemType *ItemType) error
	FindByID(ctx context.Context, id uint) (*ItemType, error)
	FindByIDs(ctx context.Context, ids []uint) ([]*ItemType, error)
	FindIDsByNameLike(ctx context.Context, term string) ([]uint, error)
	FindAll(ctx context.Context) ([]*ItemType, error)
	Update(ctx context.Context, itemType *ItemType) error
	Delete(ctx context.Context, id uint) error
}
