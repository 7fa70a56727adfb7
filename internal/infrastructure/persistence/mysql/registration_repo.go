package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bookhaven/bookhaven/internal/domain/event"
	apperrors "github.com/bookhaven/bookhaven/pkg/errors"
)

// registrationRepository 活动报名仓储实现(MySQL)
type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository 创建报名仓储
func NewRegistrationRepository(db *gorm.DB) event.RegistrationRepository {
	return &registrationRepository{db: db}
}

// Create 插入报名记录
// (event_id, email)复合唯一索引冲突 → ErrAlreadyRegistered
// (service层已做过重复预检,这里是并发下的最后防线)
func (r *registrationRepository) Create(ctx context.Context, reg *event.Registration) error {
	model := &EventRegistrationModel{
		EventID:        reg.EventID,
		Email:          reg.Email,
		Name:           reg.Name,
		RegisteredDate: reg.RegisteredDate,
		IsAttended:     reg.IsAttended,
	}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return event.ErrAlreadyRegistered
		}
		return apperrors.Wrap(err, "An error occurred while registering for the event.")
	}
	reg.ID = model.ID
	return nil
}

func (r *registrationRepository) FindByEventAndEmail(ctx context.Context, eventID uint, email string) (*event.Registration, error) {
	var model EventRegistrationModel
	err := getDB(ctx, r.db).
		Where("event_id = ? AND email = ?", eventID, email).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, event.ErrRegistrationNotFound
		}
		return nil, apperrors.Wrap(err, "An error occurred while retrieving the registration.")
	}
	return toRegistrationEntity(&model), nil
}

func (r *registrationRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Delete(&EventRegistrationModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "An error occurred while unregistering from the event.")
	}
	if result.RowsAffected == 0 {
		return event.ErrRegistrationNotFound
	}
	return nil
}

// ListByEvent 某活动的全部报名记录,按报名时间升序
func (r *registrationRepository) ListByEvent(ctx context.Context, eventID uint) ([]*event.Registration, error) {
	var models []EventRegistrationModel
	err := getDB(ctx, r.db).
		Where("event_id = ?", eventID).
		Order("registered_date ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "An error occurred while retrieving registrations.")
	}

	regs := make([]*event.Registration, len(models))
	for i := range models {
		regs[i] = toRegistrationEntity(&models[i])
	}
	return regs, nil
}

func toRegistrationEntity(model *EventRegistrationModel) *event.Registration {
	return &event.Registration{
		ID:             model.ID,
		EventID:        model.EventID,
		Email:          model.Email,
		Name:           model.Name,
		RegisteredDate: model.RegisteredDate,
		IsAttended:     model.IsAttended,
	}
}
