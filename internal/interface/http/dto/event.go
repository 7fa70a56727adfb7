package dto

import (
	"time"

	"github.com/bookhaven/bookhaven/internal/domain/event"
)

// EventResponse HTTP活动响应
type EventResponse struct {
	ID                   uint      `json:"id" example:"1"`
	Name                 string    `json:"name" example:"Author Reading Night"`
	Description          string    `json:"description"`
	EventType            string    `json:"eventType" example:"Reading"`
	EventDate            time.Time `json:"eventDate"`
	Location             string    `json:"location" example:"Main store"`
	Capacity             int       `json:"capacity" example:"40"`
	CurrentRegistrations int       `json:"currentRegistrations" example:"12"`
	ImageUrl             string    `json:"imageUrl"`
	CardImage            string    `json:"cardImage"`
	IsActive             bool      `json:"isActive" example:"true"`
	CreatedDate          time.Time `json:"createdDate"`
}

// ListEventsResponse HTTP活动分页响应
type ListEventsResponse struct {
	TotalCount int64           `json:"totalCount" example:"5"`
	PageNumber int             `json:"pageNumber" example:"1"`
	PageSize   int             `json:"pageSize" example:"10"`
	Data       []EventResponse `json:"data"`
}

// CreateEventRequest HTTP活动创建请求
type CreateEventRequest struct {
	Name        string    `json:"name" binding:"required,max=200" example:"Author Reading Night"`
	Description string    `json:"description"`
	EventType   string    `json:"eventType" binding:"max=100" example:"Reading"`
	EventDate   time.Time `json:"eventDate" binding:"required"`
	Location    string    `json:"location" binding:"max=200"`
	Capacity    int       `json:"capacity" binding:"min=0" example:"40"`
	ImageUrl    string    `json:"imageUrl"`
	CardImage   string    `json:"cardImage"`
}

// UpdateEventRequest HTTP活动部分更新请求
// 指针字段:字段缺席时保留原值(patch语义)
type UpdateEventRequest struct {
	Name        *string    `json:"name" binding:"omitempty,max=200"`
	Description *string    `json:"description"`
	EventType   *string    `json:"eventType" binding:"omitempty,max=100"`
	EventDate   *time.Time `json:"eventDate"`
	Location    *string    `json:"location" binding:"omitempty,max=200"`
	Capacity    *int       `json:"capacity"`
	ImageUrl    *string    `json:"imageUrl"`
	CardImage   *string    `json:"cardImage"`
}

// RegisterRequest HTTP活动报名请求
type RegisterRequest struct {
	Email string `json:"email" binding:"required,email" example:"alice@example.com"`
	Name  string `json:"name" binding:"required,max=100" example:"Alice"`
}

// UnregisterRequest HTTP取消报名请求
type UnregisterRequest struct {
	Email string `json:"email" binding:"required,email" example:"alice@example.com"`
}

// RegistrationResponse HTTP报名记录响应
type RegistrationResponse struct {
	ID             uint      `json:"id" example:"1"`
	EventID        uint      `json:"eventId" example:"1"`
	Email          string    `json:"email" example:"alice@example.com"`
	Name           string    `json:"name" example:"Alice"`
	RegisteredDate time.Time `json:"registeredDate"`
	IsAttended     bool      `json:"isAttended" example:"false"`
}

// ToEventResponse 活动实体 → HTTP响应
func ToEventResponse(e *event.Event) EventResponse {
	return EventResponse{
		ID:                   e.ID,
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

// ToEventResponses 活动实体列表 → HTTP响应列表
func ToEventResponses(events []*event.Event) []EventResponse {
	responses := make([]EventResponse, len(events))
	for i, e := range events {
		responses[i] = ToEventResponse(e)
	}
	return responses
}

// ToRegistrationResponses 报名记录列表 → HTTP响应列表
func ToRegistrationResponses(regs []*event.Registration) []RegistrationResponse {
	responses := make([]RegistrationResponse, len(regs))
	for i, reg := range regs {
		responses[i] = RegistrationResponse{
			ID:             reg.ID,
			EventID:        reg.EventID,
			Email:          reg.Email,
			Name:           reg.Name,
			RegisteredDate: reg.RegisteredDate,
			IsAttended:     reg.IsAttended,
		}
	}
	return responses
}
