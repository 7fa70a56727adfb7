package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appsubscriber "github.com/bookhaven/bookhaven/internal/application/subscriber"
	"github.com/bookhaven/bookhaven/internal/domain/subscriber"
	"github.com/bookhaven/bookhaven/internal/interface/http/dto"
	"github.com/bookhaven/bookhaven/pkg/response"
)

// SubscriberHandler 邮件订阅HTTP处理器
type SubscriberHandler struct {
	subscribeUseCase *appsubscriber.SubscribeUseCase
}

// NewSubscriberHandler 创建订阅处理器
func NewSubscriberHandler(subscribeUseCase *appsubscriber.SubscribeUseCase) *SubscriberHandler {
	return &SubscriberHandler{subscribeUseCase: subscribeUseCase}
}

// Subscribe 订阅邮件通讯
// @Summary      订阅邮件通讯
// @Description  首次订阅201;已退订邮箱重新激活200;活跃邮箱重复订阅409
// @Tags         订阅
// @Accept       json
// @Produce      json
// @Param        request body dto.SubscribeRequest true "订阅信息"
// @Success      201 {object} response.MessageBody
// @Success      200 {object} response.MessageBody "重新激活"
// @Failure      409 {object} response.MessageBody "重复订阅"
// @Router       /api/v1/subscribers [post]
func (h *SubscriberHandler) Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.subscribeUseCase.Execute(c.Request.Context(), req.Email, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	if result == subscriber.ResultReactivated {
		response.Message(c, "Successfully reactivated subscription!")
		return
	}
	c.JSON(http.StatusCreated, response.MessageBody{Message: "Successfully subscribed to our newsletter!"})
}

// Unsubscribe 退订
// @Summary      退订邮件通讯
// @Tags         订阅
// @Accept       json
// @Produce      json
// @Param        request body dto.UnsubscribeRequest true "退订邮箱"
// @Success      200 {object} response.MessageBody
// @Failure      404 {object} response.MessageBody "订阅者不存在"
// @Router       /api/v1/subscribers/unsubscribe [post]
func (h *SubscriberHandler) Unsubscribe(c *gin.Context) {
	var req dto.UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.subscribeUseCase.Unsubscribe(c.Request.Context(), req.Email); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Successfully unsubscribed from newsletter.")
}

// Count 活跃订阅数
// @Summary      活跃订阅数
// @Tags         订阅
// @Produce      json
// @Success      200 {object} dto.SubscriberCountResponse
// @Router       /api/v1/subscribers/count [get]
func (h *SubscriberHandler) Count(c *gin.Context) {
	count, err := h.subscribeUseCase.ActiveCount(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SubscriberCountResponse{Count: count})
}
