package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bookhaven/bookhaven/internal/domain/subscriber"
	apperrors "github.com/bookhaven/bookhaven/pkg/errors"
)

// subscriberRepository 订阅者仓储实现(MySQL)
type subscriberRepository struct {
	db *gorm.DB
}

// NewSubscriberRepository 创建订阅者仓储
func NewSubscriberRepository(db *gorm.DB) subscriber.Repository {
	return &subscriberRepository{db: db}
}

// Create 插入订阅记录
// email唯一索引冲突 → ErrAlreadySubscribed(并发下的最后防线)
func (r *subscriberRepository) Create(ctx context.Context, sub *subscriber.Subscriber) error {
	model := &SubscriberModel{
		Email:          sub.Email,
		Name:           sub.Name,
		SubscribedDate: sub.SubscribedDate,
		IsActive:       sub.IsActive,
	}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return subscriber.ErrAlreadySubscribed
		}
		return apperrors.Wrap(err, "An error occurred while subscribing.")
	}
	sub.ID = model.ID
	return nil
}

// FindByEmail 根据邮箱查找订阅者(含已退订的)
func (r *subscriberRepository) FindByEmail(ctx context.Context, email string) (*subscriber.Subscriber, error) {
	var model SubscriberModel
	err := getDB(ctx, r.db).Where("email = ?", email).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, subscriber.ErrSubscriberNotFound
		}
		return nil, apperrors.Wrap(err, "An error occurred while retrieving the subscriber.")
	}
	return &subscriber.Subscriber{
		ID:             model.ID,
		Email:          model.Email,
		Name:           model.Name,
		SubscribedDate: model.SubscribedDate,
		IsActive:       model.IsActive,
	}, nil
}

func (r *subscriberRepository) Update(ctx context.Context, sub *subscriber.Subscriber) error {
	model := &SubscriberModel{
		ID:             sub.ID,
		Email:          sub.Email,
		Name:           sub.Name,
		SubscribedDate: sub.SubscribedDate,
		IsActive:       sub.IsActive,
	}
	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "An error occurred while updating the subscriber.")
	}
	return nil
}

// CountActive 活跃订阅者数量
func (r *subscriberRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&SubscriberModel{}).
		Where("is_active = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "An error occurred while counting subscribers.")
	}
	return count, nil
}
