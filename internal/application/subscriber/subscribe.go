package subscriber

import (
	"context"

	"github.com/bookhaven/bookhaven/internal/domain/subscriber"
	"github.com/bookhaven/bookhaven/pkg/metrics"
)

// CountCache 活跃订阅数缓存抽象
// 订阅/退订后失效,下次查询回源重算
type CountCache interface {
	GetActiveCount(ctx context.Context) (int64, bool)
	SetActiveCount(ctx context.Context, count int64)
	InvalidateActiveCount(ctx context.Context)
}

// SubscribeUseCase 邮件订阅用例
type SubscribeUseCase struct {
	subscriberService subscriber.Service
	cache             CountCache
}

// NewSubscribeUseCase 创建订阅用例
func NewSubscribeUseCase(subscriberService subscriber.Service, cache CountCache) *SubscribeUseCase {
	return &SubscribeUseCase{
		subscriberService: subscriberService,
		cache:             cache,
	}
}

// Execute 订阅邮件通讯,返回是否为重新激活
func (uc *SubscribeUseCase) Execute(ctx context.Context, email, name string) (subscriber.SubscribeResult, error) {
	result, err := uc.subscriberService.Subscribe(ctx, email, name)
	if err != nil {
		metrics.SubscriptionsTotal.WithLabelValues("rejected").Inc()
		return 0, err
	}

	uc.invalidateCount(ctx)
	if result == subscriber.ResultReactivated {
		metrics.SubscriptionsTotal.WithLabelValues("reactivated").Inc()
	} else {
		metrics.SubscriptionsTotal.WithLabelValues("subscribed").Inc()
	}
	return result, nil
}

// Unsubscribe 退订
func (uc *SubscribeUseCase) Unsubscribe(ctx context.Context, email string) error {
	if err := uc.subscriberService.Unsubscribe(ctx, email); err != nil {
		return err
	}
	uc.invalidateCount(ctx)
	metrics.SubscriptionsTotal.WithLabelValues("unsubscribed").Inc()
	return nil
}

// ActiveCount 活跃订阅数(cache-aside)
func (uc *SubscribeUseCase) ActiveCount(ctx context.Context) (int64, error) {
	if uc.cache != nil {
		if count, ok := uc.cache.GetActiveCount(ctx); ok {
			return count, nil
		}
	}

	count, err := uc.subscriberService.ActiveCount(ctx)
	if err != nil {
		return 0, err
	}

	if uc.cache != nil {
		uc.cache.SetActiveCount(ctx, count)
	}
	return count, nil
}

func (uc *SubscribeUseCase) invalidateCount(ctx context.Context) {
	if uc.cache != nil {
		uc.cache.InvalidateActiveCount(ctx)
	}
}
