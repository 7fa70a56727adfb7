package subscriber

import (
	"context"
)

// Repository 订阅者仓储接口
type Repository interface {
	// Create 插入订阅记录,email唯一索引冲突时返回ErrAlreadySubscribed
	Create(ctx context.Context, sub *Subscriber) error

	// FindByEmail 根据邮箱查找订阅者(含已退订的),
	// 不存在返回ErrSubscriberNotFound
	FindByEmail(ctx context.Context, email string) (*Subscriber, error)

	Update(ctx context.Context, sub *Subscriber) error

	// CountActive 活跃订阅者数量
	CountActive(ctx context.Context) (int64, error)
}
