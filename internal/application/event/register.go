package event

import (
	"context"

	"github.com/bookhaven/bookhaven/internal/domain/event"
	"github.com/bookhaven/bookhaven/pkg/metrics"
)

// RegisterUseCase 活动报名/取消报名用例
// 状态机校验与事务边界都在领域服务,这里只补业务指标
type RegisterUseCase struct {
	eventService event.Service
}

// NewRegisterUseCase 创建报名用例
func NewRegisterUseCase(eventService event.Service) *RegisterUseCase {
	return &RegisterUseCase{
		eventService: eventService,
	}
}

// RegisterRequest 报名请求
type RegisterRequest struct {
	EventID uint
	Email   string
	Name    string
}

// Execute 执行报名
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*event.Registration, error) {
	registration, err := uc.eventService.Register(ctx, req.EventID, req.Email, req.Name)
	if err != nil {
		metrics.EventRegistrationsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}
	metrics.EventRegistrationsTotal.WithLabelValues("registered").Inc()
	return registration, nil
}

// Unregister 取消报名
func (uc *RegisterUseCase) Unregister(ctx context.Context, eventID uint, email string) error {
	if err := uc.eventService.Unregister(ctx, eventID, email); err != nil {
		return err
	}
	metrics.EventRegistrationsTotal.WithLabelValues("unregistered").Inc()
	return nil
}
