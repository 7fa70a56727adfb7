package event

import (
	"strings"
	"time"
)

// Event 活动实体(聚合根)
// 设计说明:
// 1. CurrentRegistrations是冗余计数器,不变式:0 ≤ 当前报名数 ≤ 容量
// 2. 取消是软删除(IsActive=false),报名记录级联归属于活动
// 3. CardImage是不透明字符串(通常是data URI),不做解析
type Event struct {
	ID                   uint
	Name                 string
	Description          string
	EventType            string // 活动类型(读书会/签售会等,自由文本)
	EventDate            time.Time
	Location             string
	Capacity             int // 容量
	CurrentRegistrations int // 当前报名数(冗余计数器)
	ImageUrl             string
	CardImage            string
	IsActive             bool
	CreatedDate          time.Time
}

// Validate 校验活动必填字段
func (e *Event) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return ErrNameRequired
	}
	if e.Capacity < 0 {
		return ErrInvalidCapacity
	}
	return nil
}

// HasPassed 活动日期是否已过
func (e *Event) HasPassed(now time.Time) bool {
	return e.EventDate.Before(now)
}

// Registration 活动报名记录
// 不变式:(EventID, Email)二元组唯一,一个邮箱对一个活动至多报名一次
type Registration struct {
	ID             uint
	EventID        uint
	Email          string
	Name           string
	RegisteredDate time.Time
	IsAttended     bool
}
