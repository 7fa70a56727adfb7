package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/bookhaven/bookhaven/internal/application/catalog"
	"github.com/bookhaven/bookhaven/internal/interface/http/dto"
	"github.com/bookhaven/bookhaven/pkg/response"
)

// ItemTypeHandler 商品类别HTTP处理器
type ItemTypeHandler struct {
	itemTypeCRUDUseCase *appcatalog.ItemTypeCRUDUseCase
}

// NewItemTypeHandler 创建类别处理器
func NewItemTypeHandler(itemTypeCRUDUseCase *appcatalog.ItemTypeCRUDUseCase) *ItemTypeHandler {
	return &ItemTypeHandler{itemTypeCRUDUseCase: itemTypeCRUDUseCase}
}

// ListItemTypes 类别列表
// @Summary      类别列表
// @Tags         类别
// @Produce      json
// @Success      200 {array} dto.ItemTypeResponse
// @Router       /api/v1/item-types [get]
func (h *ItemTypeHandler) ListItemTypes(c *gin.Context) {
	types, err := h.itemTypeCRUDUseCase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	responses := make([]dto.ItemTypeResponse, len(types))
	for i, t := range types {
		responses[i] = dto.ToItemTypeResponse(t)
	}
	response.OK(c, responses)
}

// GetItemType 类别详情
// @Summary      类别详情
// @Tags         类别
// @Produce      json
// @Param        id path int true "类别ID"
// @Success      200 {object} dto.ItemTypeResponse
// @Failure      404 {object} response.MessageBody
// @Router       /api/v1/item-types/{id} [get]
func (h *ItemTypeHandler) GetItemType(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	itemType, err := h.itemTypeCRUDUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToItemTypeResponse(itemType))
}

// CreateItemType 创建类别
// @Summary      创建类别
// @Tags         类别
// @Accept       json
// @Produce      json
// @Param        request body dto.ItemTypeRequest true "类别信息"
// @Success      201 {object} dto.ItemTypeResponse
// @Router       /api/v1/item-types [post]
func (h *ItemTypeHandler) CreateItemType(c *gin.Context) {
	var req dto.ItemTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	itemType, err := h.itemTypeCRUDUseCase.Create(c.Request.Context(), appcatalog.ItemTypeInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToItemTypeResponse(itemType))
}

// UpdateItemType 更新类别
// @Summary      更新类别
// @Tags         类别
// @Accept       json
// @Produce      json
// @Param        id path int true "类别ID"
// @Param        request body dto.ItemTypeRequest true "类别信息"
// @Success      200 {object} dto.ItemTypeResponse
// @Failure      404 {object} response.MessageBody
// @Router       /api/v1/item-types/{id} [put]
func (h *ItemTypeHandler) UpdateItemType(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.ItemTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	itemType, err := h.itemTypeCRUDUseCase.Update(c.Request.Context(), id, appcatalog.ItemTypeInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToItemTypeResponse(itemType))
}

// DeleteItemType 删除类别
// @Summary      删除类别
// @Tags         类别
// @Produce      json
// @Param        id path int true "类别ID"
// @Success      200 {object} response.MessageBody
// @Failure      404 {object} response.MessageBody
// @Router       /api/v1/item-types/{id} [delete]
func (h *ItemTypeHandler) DeleteItemType(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.itemTypeCRUDUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Item type deleted successfully.")
}
