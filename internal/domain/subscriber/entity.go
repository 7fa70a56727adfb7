package subscriber

import (
	"strings"
	"time"
)

// Subscriber 邮件订阅者实体
// 设计说明:
// 1. Email全局唯一,退订是软删除(IsActive=false),记录保留
// 2. 重新订阅复用原记录:翻转IsActive并刷新SubscribedDate
type Subscriber struct {
	ID             uint
	Email          string
	Name           string
	SubscribedDate time.Time
	IsActive       bool
}

// Validate 校验订阅必填字段
func (s *Subscriber) Validate() error {
	if strings.TrimSpace(s.Email) == "" {
		return ErrEmailRequired
	}
	return nil
}
