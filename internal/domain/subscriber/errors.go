package subscriber

import (
	apperrors "github.com/bookhaven/bookhaven/pkg/errors"
)

// 订阅领域错误定义
var (
	// ErrAlreadySubscribed 该邮箱已是活跃订阅者
	ErrAlreadySubscribed = apperrors.New(apperrors.ErrCodeAlreadySubscribed, "This email is already subscribed.")

	// ErrSubscriberNotFound 订阅者不存在
	ErrSubscriberNotFound = apperrors.New(apperrors.ErrCodeSubscriberNotFound, "Subscriber not found.")

	// ErrEmailRequired 邮箱必填
	ErrEmailRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "The Email field is required.")
)
