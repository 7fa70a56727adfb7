package event

import (
	apperrors "github.com/bookhaven/bookhaven/pkg/errors"
)

// 活动领域错误定义
var (
	// ErrEventNotFound 活动不存在
	ErrEventNotFound = apperrors.New(apperrors.ErrCodeEventNotFound, "Event not found.")

	// ErrEventCancelled 活动已取消
	ErrEventCancelled = apperrors.New(apperrors.ErrCodeEventCancelled, "This event has been cancelled.")

	// ErrEventPassed 活动已结束
	ErrEventPassed = apperrors.New(apperrors.ErrCodeEventPassed, "This event has already passed.")

	// ErrAlreadyRegistered 该邮箱已报名此活动
	ErrAlreadyRegistered = apperrors.New(apperrors.ErrCodeAlreadyRegistered, "You are already registered for this event.")

	// ErrEventFull 活动满员
	ErrEventFull = apperrors.New(apperrors.ErrCodeEventFull, "This event is at full capacity.")

	// ErrRegistrationNotFound 报名记录不存在
	ErrRegistrationNotFound = apperrors.New(apperrors.ErrCodeRegistrationNotFound, "Registration not found.")

	// 字段校验错误
	ErrNameRequired    = apperrors.New(apperrors.ErrCodeInvalidParams, "The Name field is required.")
	ErrEmailRequired   = apperrors.New(apperrors.ErrCodeInvalidParams, "The Email field is required.")
	ErrInvalidCapacity = apperrors.New(apperrors.ErrCodeInvalidParams, "Capacity must not be negative.")
)
