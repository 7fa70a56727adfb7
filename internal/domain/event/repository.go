package event

import (
	"context"
	"time"
)

// ListParams 活动列表查询参数
type ListParams struct {
	EventType string    // 类型过滤(子串匹配),空串不过滤
	Page      int       // 页码(从1开始,调用前已钳位)
	PageSize  int       // 每页数量(调用前已钳位)
	Now       time.Time // 只列出该时刻之后的活动
}

// Repository 活动仓储接口
// 设计说明:
// 1. 列表只含活跃且未过期的活动,按活动日期升序
// 2. 计数器的增减必须是条件原子UPDATE,防止并发下超过容量
//    (两个并发报名都通过容量预检的竞态窗口,由此兜底关闭)
type Repository interface {
	Create(ctx context.Context, event *Event) error

	// FindByID 根据ID查找活动,不存在返回ErrEventNotFound
	FindByID(ctx context.Context, id uint) (*Event, error)

	Update(ctx context.Context, event *Event) error

	// Cancel 取消活动(软删除,IsActive=false)
	Cancel(ctx context.Context, id uint) error

	// List 活跃且未过期的活动,按EventDate升序,返回当前页与总数
	List(ctx context.Context, params ListParams) ([]*Event, int64, error)

	// DistinctEventTypes 活跃活动的类型去重集合,字典序升序
	DistinctEventTypes(ctx context.Context) ([]string, error)

	// IncrementRegistrations 原子条件递增计数器
	// 仅当current_registrations < capacity时生效;
	// 条件不满足返回ErrEventFull,活动不存在返回ErrEventNotFound
	IncrementRegistrations(ctx context.Context, id uint) error

	// DecrementRegistrations 原子递减计数器,下限0(防御重复递减)
	DecrementRegistrations(ctx context.Context, id uint) error
}

// RegistrationRepository 报名记录仓储接口
type RegistrationRepository interface {
	// Create 插入报名记录
	// (event_id, email)唯一索引冲突时返回ErrAlreadyRegistered
	Create(ctx context.Context, registration *Registration) error

	// FindByEventAndEmail 查找报名记录,不存在返回ErrRegistrationNotFound
	FindByEventAndEmail(ctx context.Context, eventID uint, email string) (*Registration, error)

	// Delete 删除报名记录
	Delete(ctx context.Context, id uint) error

	// ListByEvent 某活动的全部报名记录,按报名时间升序
	ListByEvent(ctx context.Context, eventID uint) ([]*Registration, error)
}

// Transactor 事务边界抽象
// 由infrastructure层的TxManager实现;fn内的仓储操作共享同一事务,
// fn返回error时回滚,返回nil时提交
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
