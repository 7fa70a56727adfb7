package subscriber

import (
	"context"
	"strings"
	"time"

	apperrors "github.com/bookhaven/bookhaven/pkg/errors"
)

// SubscribeResult 订阅操作的结果区分(新订阅 / 重新激活)
type SubscribeResult int

const (
	// ResultSubscribed 首次订阅
	ResultSubscribed SubscribeResult = iota
	// ResultReactivated 已退订邮箱重新激活
	ResultReactivated
)

// Service 邮件订阅领域服务
// 业务规则:
// 1. 活跃邮箱重复订阅 → 冲突
// 2. 已退订邮箱再订阅 → 复用原记录重新激活(不插入新行)
// 3. 退订是软删除,计数只统计活跃订阅者
type Service interface {
	Subscribe(ctx context.Context, email, name string) (SubscribeResult, error)
	Unsubscribe(ctx context.Context, email string) error
	ActiveCount(ctx context.Context) (int64, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService 创建订阅领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// Subscribe 订阅邮件通讯
func (s *service) Subscribe(ctx context.Context, email, name string) (SubscribeResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return 0, ErrEmailRequired
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil && existing.IsActive:
		return 0, ErrAlreadySubscribed
	case err == nil:
		// 重新激活:翻转状态并刷新订阅时间,保留原记录
		existing.IsActive = true
		existing.SubscribedDate = s.now()
		if name != "" {
			existing.Name = name
		}
		if err := s.repo.Update(ctx, existing); err != nil {
			return 0, err
		}
		return ResultReactivated, nil
	case !apperrors.IsCode(err, apperrors.ErrCodeSubscriberNotFound):
		return 0, err
	}

	sub := &Subscriber{
		Email:          email,
		Name:           name,
		SubscribedDate: s.now(),
		IsActive:       true,
	}
	if err := sub.Validate(); err != nil {
		return 0, err
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return 0, err
	}
	return ResultSubscribed, nil
}

// Unsubscribe 退订(软删除)
func (s *service) Unsubscribe(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}

	sub, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !sub.IsActive {
		return ErrSubscriberNotFound
	}

	sub.IsActive = false
	return s.repo.Update(ctx, sub)
}

// ActiveCount 活跃订阅者数量
func (s *service) ActiveCount(ctx context.Context) (int64, error) {
	return s.repo.CountActive(ctx)
}
