package handler

import (
	"github.com/gin-gonic/gin"

	appevent "github.com/bookhaven/bookhaven/internal/application/event"
	"github.com/bookhaven/bookhaven/internal/domain/event"
	"github.com/bookhaven/bookhaven/internal/interface/http/dto"
	"github.com/bookhaven/bookhaven/pkg/response"
)

// EventHandler 活动HTTP处理器
type EventHandler struct {
	manageEventsUseCase *appevent.ManageEventsUseCase
	registerUseCase     *appevent.RegisterUseCase
}

// NewEventHandler 创建活动处理器
func NewEventHandler(
	manageEventsUseCase *appevent.ManageEventsUseCase,
	registerUseCase *appevent.RegisterUseCase,
) *EventHandler {
	return &EventHandler{
		manageEventsUseCase: manageEventsUseCase,
		registerUseCase:     registerUseCase,
	}
}

// ListEvents 活动分页列表
// @Summary      活动分页列表
// @Description  活跃且未过期的活动,按活动日期升序,eventType子串过滤
// @Tags         活动
// @Produce      json
// @Param        eventType query string false "类型过滤"
// @Param        pageNumber query int false "页码(默认1)"
// @Param        pageSize query int false "每页数量(默认10,最大50)"
// @Success      200 {object} dto.ListEventsResponse
// @Router       /api/v1/events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	page, err := h.manageEventsUseCase.List(c.Request.Context(), appevent.ListEventsRequest{
		EventType:  c.Query("eventType"),
		PageNumber: queryInt(c, "pageNumber"),
		PageSize:   queryInt(c, "pageSize"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, &dto.ListEventsResponse{
		TotalCount: page.TotalCount,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		Data:       dto.ToEventResponses(page.Events),
	})
}

// GetEvent 活动详情
// @Summary      活动详情
// @Tags         活动
// @Produce      json
// @Param        id path int true "活动ID"
// @Success      200 {object} dto.EventResponse
// @Failure      404 {object} response.MessageBody
// @Router       /api/v1/events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	e, err := h.manageEventsUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToEventResponse(e))
}

// ListEventTypes 活动类型列表
// @Summary      活动类型列表
// @Description  活跃活动的类型去重集合,字典序升序
// @Tags         活动
// @Produce      json
// @Success      200 {array} string
// @Router       /api/v1/events/types/all [get]
func (h *EventHandler) ListEventTypes(c *gin.Context) {
	types, err := h.manageEventsUseCase.ListEventTypes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, types)
}

// CreateEvent 创建活动
// @Summary      创建活动
// @Tags         活动
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateEventRequest true "活动信息"
// @Success      201 {object} dto.EventResponse
// @Router       /api/v1/events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.manageEventsUseCase.Create(c.Request.Context(), appevent.EventInput{
		Name:        req.Name,
		Description: req.Description,
		EventType:   req.EventType,
		EventDate:   req.EventDate,
		Location:    req.Location,
		Capacity:    req.Capacity,
		ImageUrl:    req.ImageUrl,
		CardImage:   req.CardImage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToEventResponse(created))
}

// UpdateEvent 部分更新活动
// @Summary      更新活动
// @Description  patch语义:缺席的字段保留原值
// @Tags         活动
// @Accept       json
// @Produce      json
// @Param        id path int true "活动ID"
// @Param        request body dto.UpdateEventRequest true "活动信息"
// @Success      200 {object} dto.EventResponse
// @Failure      404 {object} response.MessageBody
// @Router       /api/v1/events/{id} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.manageEventsUseCase.Update(c.Request.Context(), id, event.UpdateParams{
		Name:        req.Name,
		Description: req.Description,
		EventType:   req.EventType,
		EventDate:   req.EventDate,
		Location:    req.Location,
		Capacity:    req.Capacity,
		ImageUrl:    req.ImageUrl,
		CardImage:   req.CardImage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToEventResponse(updated))
}

// CancelEvent 取消活动
// @Summary      取消活动
// @Description  软删除(isActive=false),报名记录保留
// @Tags         活动
// @Produce      json
// @Param        id path int true "活动ID"
// @Success      200 {object} response.MessageBody
// @Failure      404 {object} response.MessageBody
// @Router       /api/v1/events/{id} [delete]
func (h *EventHandler) CancelEvent(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.manageEventsUseCase.Cancel(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Event cancelled successfully.")
}

// Register 活动报名
// @Summary      活动报名
// @Description  校验顺序:活动存在→未取消→未过期→未重复报名→未满员
// @Tags         活动
// @Accept       json
// @Produce      json
// @Param        id path int true "活动ID"
// @Param        request body dto.RegisterRequest true "报名信息"
// @Success      200 {object} response.MessageBody
// @Failure      404 {object} response.MessageBody "活动不存在"
// @Failure      409 {object} response.MessageBody "已取消/已过期/重复报名/已满员"
// @Router       /api/v1/events/{id}/register [post]
func (h *EventHandler) Register(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	_, err := h.registerUseCase.Execute(c.Request.Context(), appevent.RegisterRequest{
		EventID: id,
		Email:   req.Email,
		Name:    req.Name,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Successfully registered for event!")
}

// Unregister 取消报名
// @Summary      取消报名
// @Tags         活动
// @Accept       json
// @Produce      json
// @Param        id path int true "活动ID"
// @Param        request body dto.UnregisterRequest true "报名邮箱"
// @Success      200 {object} response.MessageBody
// @Failure      404 {object} response.MessageBody "报名记录不存在"
// @Router       /api/v1/events/{id}/unregister [post]
func (h *EventHandler) Unregister(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.UnregisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.registerUseCase.Unregister(c.Request.Context(), id, req.Email); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Successfully unregistered from event.")
}

// ListRegistrations 活动报名记录
// @Summary      活动报名记录
// @Tags         活动
// @Produce      json
// @Param        id path int true "活动ID"
// @Success      200 {array} dto.RegistrationResponse
// @Failure      404 {object} response.MessageBody
// @Router       /api/v1/events/{id}/registrations [get]
func (h *EventHandler) ListRegistrations(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	regs, err := h.manageEventsUseCase.ListRegistrations(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToRegistrationResponses(regs))
}
