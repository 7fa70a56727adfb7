package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bookhaven/bookhaven/internal/domain/event"
	apperrors "github.com/bookhaven/bookhaven/pkg/errors"
)

// eventRepository 活动仓储实现(MySQL)
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository 创建活动仓储
func NewEventRepository(db *gorm.DB) event.Repository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, e *event.Event) error {
	model := toEventModel(e)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "An error occurred while creating the event.")
	}
	e.ID = model.ID
	return nil
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (*event.Event, error) {
	var model EventModel
	err := getDB(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, event.ErrEventNotFound
		}
		return nil, apperrors.Wrap(err, "An error occurred while retrieving the event.")
	}
	return toEventEntity(&model), nil
}

func (r *eventRepository) Update(ctx context.Context, e *event.Event) error {
	model := toEventModel(e)
	model.ID = e.ID
	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "An error occurred while updating the event.")
	}
	return nil
}

// Cancel 取消活动(软删除,is_active=false)
func (r *eventRepository) Cancel(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Model(&EventModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "An error occurred while cancelling the event.")
	}
	if result.RowsAffected == 0 {
		// 0行可能是不存在,也可能是已取消;查一次区分
		var model EventModel
		if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return event.ErrEventNotFound
			}
			return apperrors.Wrap(err, "An error occurred while cancelling the event.")
		}
	}
	return nil
}

// List 分页查询活跃且未过期的活动,按活动日期升序
func (r *eventRepository) List(ctx context.Context, params event.ListParams) ([]*event.Event, int64, error) {
	query := getDB(ctx, r.db).Model(&EventModel{}).
		Where("is_active = ?", true).
		Where("event_date >= ?", params.Now)

	if params.EventType != "" {
		query = query.Where("event_type LIKE ?", "%"+params.EventType+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "An error occurred while retrieving events.")
	}

	var models []EventModel
	offset := (params.Page - 1) * params.PageSize
	err := query.Order("event_date ASC").Limit(params.PageSize).Offset(offset).Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "An error occurred while retrieving events.")
	}

	events := make([]*event.Event, len(models))
	for i := range models {
		events[i] = toEventEntity(&models[i])
	}
	return events, total, nil
}

// DistinctEventTypes 活跃活动的类型去重集合,字典序升序
func (r *eventRepository) DistinctEventTypes(ctx context.Context) ([]string, error) {
	var types []string
	err := getDB(ctx, r.db).Model(&EventModel{}).
		Where("is_active = ?", true).
		Distinct("event_type").
		Order("event_type ASC").
		Pluck("event_type", &types).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "An error occurred while retrieving event types.")
	}
	return types, nil
}

// IncrementRegistrations 原子条件递增报名计数器
// UPDATE events SET current_registrations = current_registrations + 1
// WHERE id = ? AND current_registrations < capacity
// 两个并发报名都通过容量预检时,只有一个UPDATE能命中条件,
// 另一个0行受影响 → ErrEventFull,容量不变式由数据库兜底
func (r *eventRepository) IncrementRegistrations(ctx context.Context, id uint) error {
	db := getDB(ctx, r.db)
	result := db.Model(&EventModel{}).
		Where("id = ?", id).
		Where("current_registrations < capacity").
		Update("current_registrations", gorm.Expr("current_registrations + 1"))

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "An error occurred while registering for the event.")
	}

	if result.RowsAffected == 0 {
		// 可能是活动不存在,或者已满员;再查一次区分
		var model EventModel
		if err := db.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return event.ErrEventNotFound
			}
			return apperrors.Wrap(err, "An error occurred while registering for the event.")
		}
		return event.ErrEventFull
	}
	return nil
}

// DecrementRegistrations 原子递减报名计数器,下限0
func (r *eventRepository) DecrementRegistrations(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Model(&EventModel{}).
		Where("id = ?", id).
		Where("current_registrations > 0").
		Update("current_registrations", gorm.Expr("current_registrations - 1"))

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "An error occurred while unregistering from the event.")
	}
	// 0行受影响说明计数器已是0(计数失配的防御场景),静默通过
	return nil
}

func toEventModel(e *event.Event) *EventModel {
	return &EventModel{
		Name:                 e.Name,
		Description:          e.Description,
		EventType:            e.EventType,
		EventDate:            e.EventDate,
		Location:             e.Location,
		Capacity:             e.Capacity,
		CurrentRegistrations: e.CurrentRegistrations,
		ImageUrl:             e.ImageUrl,
		CardImage:            e.CardImage,
		IsActive:             e.IsActive,
		CreatedDate:          e.CreatedDate,
	}
}

func toEventEntity(model *EventModel) *event.Event {
	return &event.Event{
		ID:                   model.ID,
		Name:                 model.Name,
		Description:          model.Description,
		EventType:            model.EventType,
		EventDate:            model.EventDate,
		Location:             model.Location,
		Capacity:             model.Capacity,
		CurrentRegistrations: model.CurrentRegistrations,
		ImageUrl:             model.ImageUrl,
		CardImage:            model.CardImage,
		IsActive:             model.IsActive,
		CreatedDate:          model.CreatedDate,
	}
}
