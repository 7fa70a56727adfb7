package event

import (
	"context"
	"time"

	"github.com/bookhaven/bookhaven/internal/domain/event"
)

// EventTypeCache 活动类型列表缓存抽象
type EventTypeCache interface {
	GetEventTypes(ctx context.Context) ([]string, bool)
	SetEventTypes(ctx context.Context, types []string)
	// InvalidateEventTypes 活动写操作后失效
	InvalidateEventTypes(ctx context.Context)
}

// ManageEventsUseCase 活动查询与管理用例
type ManageEventsUseCase struct {
	eventService event.Service
	cache        EventTypeCache
}

// NewManageEventsUseCase 创建活动管理用例
func NewManageEventsUseCase(eventService event.Service, cache EventTypeCache) *ManageEventsUseCase {
	return &ManageEventsUseCase{
		eventService: eventService,
		cache:        cache,
	}
}

// ListEventsRequest 活动列表请求
type ListEventsRequest struct {
	EventType  string // 类型过滤(子串匹配),空串不过滤
	PageNumber int
	PageSize   int
}

// List 分页查询活跃且未过期的活动
func (uc *ManageEventsUseCase) List(ctx context.Context, req ListEventsRequest) (*event.EventPage, error) {
	return uc.eventService.ListEvents(ctx, req.EventType, req.PageNumber, req.PageSize)
}

// Get 根据ID获取活动
func (uc *ManageEventsUseCase) Get(ctx context.Context, id uint) (*event.Event, error) {
	return uc.eventService.GetEvent(ctx, id)
}

// EventInput 活动创建参数
type EventInput struct {
	Name        string
	Description string
	EventType   string
	EventDate   time.Time
	Location    string
	Capacity    int
	ImageUrl    string
	CardImage   string
}

// Create 创建活动
func (uc *ManageEventsUseCase) Create(ctx context.Context, in EventInput) (*event.Event, error) {
	created, err := uc.eventService.CreateEvent(ctx, &event.Event{
		Name:        in.Name,
		Description: in.Description,
		EventType:   in.EventType,
		EventDate:   in.EventDate,
		Location:    in.Location,
		Capacity:    in.Capacity,
		ImageUrl:    in.ImageUrl,
		CardImage:   in.CardImage,
	})
	if err != nil {
		return nil, err
	}
	uc.invalidateTypes(ctx)
	return created, nil
}

// Update 部分更新活动(nil字段保留原值)
func (uc *ManageEventsUseCase) Update(ctx context.Context, id uint, params event.UpdateParams) (*event.Event, error) {
	updated, err := uc.eventService.UpdateEvent(ctx, id, params)
	if err != nil {
		return nil, err
	}
	uc.invalidateTypes(ctx)
	return updated, nil
}

// Cancel 取消活动(软删除)
func (uc *ManageEventsUseCase) Cancel(ctx context.Context, id uint) error {
	if err := uc.eventService.CancelEvent(ctx, id); err != nil {
		return err
	}
	uc.invalidateTypes(ctx)
	return nil
}

// ListRegistrations 某活动的报名记录
func (uc *ManageEventsUseCase) ListRegistrations(ctx context.Context, eventID uint) ([]*event.Registration, error) {
	return uc.eventService.ListRegistrations(ctx, eventID)
}

// ListEventTypes 活跃活动的类型集合(cache-aside)
func (uc *ManageEventsUseCase) ListEventTypes(ctx context.Context) ([]string, error) {
	if uc.cache != nil {
		if types, ok := uc.cache.GetEventTypes(ctx); ok {
			return types, nil
		}
	}

	types, err := uc.eventService.ListEventTypes(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.SetEventTypes(ctx, types)
	}
	return types, nil
}

func (uc *ManageEventsUseCase) invalidateTypes(ctx context.Context) {
	if uc.cache != nil {
		uc.cache.InvalidateEventTypes(ctx)
	}
}
