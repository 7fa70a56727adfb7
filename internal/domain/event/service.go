package event

import (
	"context"
	"strings"
	"time"

	apperrors "github.com/bookhaven/bookhaven/pkg/errors"
)

// 活动列表分页规则(默认10,钳位[1,50])
const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// EventPage 活动分页查询结果
type EventPage struct {
	TotalCount int64
	PageNumber int
	PageSize   int
	Events     []*Event
}

// UpdateParams 活动部分更新参数
// nil字段保留原值(与全量覆盖的商品更新不同,活动更新是patch语义)
type UpdateParams struct {
	Name        *string
	Description *string
	EventType   *string
	EventDate   *time.Time
	Location    *string
	Capacity    *int
	ImageUrl    *string
	CardImage   *string
}

// Service 活动与报名领域服务
// 业务规则(报名状态机,按序校验):
// 活动存在 → 未取消 → 未过期 → 未重复报名 → 未满员
// 成功时插入报名记录并递增计数器,两者在同一事务中提交
type Service interface {
	ListEvents(ctx context.Context, eventType string, pageNumber, pageSize int) (*EventPage, error)
	GetEvent(ctx context.Context, id uint) (*Event, error)
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	UpdateEvent(ctx context.Context, id uint, params UpdateParams) (*Event, error)
	// CancelEvent 软删除(IsActive=false)
	CancelEvent(ctx context.Context, id uint) error

	// Register 报名活动
	// 计数器递增是条件原子UPDATE(<容量才生效),与记录插入同事务,
	// 并发场景下不可能出现current_registrations > capacity
	Register(ctx context.Context, eventID uint, email, name string) (*Registration, error)

	// Unregister 取消报名,计数器递减下限0
	Unregister(ctx context.Context, eventID uint, email string) error

	// ListRegistrations 某活动的报名记录,按报名时间升序
	ListRegistrations(ctx context.Context, eventID uint) ([]*Registration, error)

	// ListEventTypes 活跃活动的类型集合(筛选器用)
	ListEventTypes(ctx context.Context) ([]string, error)
}

type service struct {
	eventRepo Repository
	regRepo   RegistrationRepository
	tx        Transactor
	now       func() time.Time
}

// NewService 创建活动领域服务
func NewService(eventRepo Repository, regRepo RegistrationRepository, tx Transactor) Service {
	return &service{
		eventRepo: eventRepo,
		regRepo:   regRepo,
		tx:        tx,
		now:       time.Now,
	}
}

// ListEvents 分页查询活跃且未过期的活动
func (s *service) ListEvents(ctx context.Context, eventType string, pageNumber, pageSize int) (*EventPage, error) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	events, total, err := s.eventRepo.List(ctx, ListParams{
		EventType: strings.TrimSpace(eventType),
		Page:      pageNumber,
		PageSize:  pageSize,
		Now:       s.now(),
	})
	if err != nil {
		return nil, err
	}

	return &EventPage{
		TotalCount: total,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		Events:     events,
	}, nil
}

func (s *service) GetEvent(ctx context.Context, id uint) (*Event, error) {
	return s.eventRepo.FindByID(ctx, id)
}

func (s *service) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}
	event.IsActive = true
	event.CurrentRegistrations = 0
	event.CreatedDate = s.now()
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// UpdateEvent 部分更新,nil字段保留原值
func (s *service) UpdateEvent(ctx context.Context, id uint, params UpdateParams) (*Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		event.Name = *params.Name
	}
	if params.Description != nil {
		event.Description = *params.Description
	}
	if params.EventType != nil {
		event.EventType = *params.EventType
	}
	if params.EventDate != nil {
		event.EventDate = *params.EventDate
	}
	if params.Location != nil {
		event.Location = *params.Location
	}
	if params.Capacity != nil && *params.Capacity > 0 {
		event.Capacity = *params.Capacity
	}
	if params.ImageUrl != nil {
		event.ImageUrl = *params.ImageUrl
	}
	if params.CardImage != nil {
		event.CardImage = *params.CardImage
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *service) CancelEvent(ctx context.Context, id uint) error {
	return s.eventRepo.Cancel(ctx, id)
}

// Register 报名活动
func (s *service) Register(ctx context.Context, eventID uint, email, name string) (*Registration, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}

	// 前置校验,顺序固定:存在 → 活跃 → 未过期 → 未重复 → 未满
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsActive {
		return nil, ErrEventCancelled
	}
	if event.HasPassed(s.now()) {
		return nil, ErrEventPassed
	}

	if _, err := s.regRepo.FindByEventAndEmail(ctx, eventID, email); err == nil {
		return nil, ErrAlreadyRegistered
	} else if !apperrors.IsCode(err, apperrors.ErrCodeRegistrationNotFound) {
		return nil, err
	}

	if event.CurrentRegistrations >= event.Capacity {
		return nil, ErrEventFull
	}

	// 预检通过后进入事务:条件递增计数器 + 插入报名记录
	// 条件UPDATE在并发下兜底容量不变式,唯一索引兜底重复报名,
	// 任一失败整体回滚
	registration := &Registration{
		EventID:        eventID,
		Email:          email,
		Name:           name,
		RegisteredDate: s.now(),
		IsAttended:     false,
	}
	err = s.tx.Transaction(ctx, func(txCtx context.Context) error {
		if err := s.eventRepo.IncrementRegistrations(txCtx, eventID); err != nil {
			return err
		}
		return s.regRepo.Create(txCtx, registration)
	})
	if err != nil {
		return nil, err
	}
	return registration, nil
}

// Unregister 取消报名
func (s *service) Unregister(ctx context.Context, eventID uint, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}

	registration, err := s.regRepo.FindByEventAndEmail(ctx, eventID, email)
	if err != nil {
		return err
	}

	return s.tx.Transaction(ctx, func(txCtx context.Context) error {
		if err := s.regRepo.Delete(txCtx, registration.ID); err != nil {
			return err
		}
		return s.eventRepo.DecrementRegistrations(txCtx, eventID)
	})
}

// ListRegistrations 某活动的报名记录
func (s *service) ListRegistrations(ctx context.Context, eventID uint) ([]*Registration, error) {
	// 活动必须存在(与报名记录为空是两种不同的结果)
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.regRepo.ListByEvent(ctx, eventID)
}

func (s *service) ListEventTypes(ctx context.Context) ([]string, error) {
	return s.eventRepo.DistinctEventTypes(ctx)
}
