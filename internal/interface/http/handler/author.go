package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/bookhaven/bookhaven/internal/application/catalog"
	"github.com/bookhaven/bookhaven/internal/interface/http/dto"
	"github.com/bookhaven/bookhaven/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	authorCRUDUseCase *appcatalog.AuthorCRUDUseCase
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(authorCRUDUseCase *appcatalog.AuthorCRUDUseCase) *AuthorHandler {
	return &AuthorHandler{authorCRUDUseCase: authorCRUDUseCase}
}

// ListAuthors 作者列表
// @Summary      作者列表
// @Tags         作者
// @Produce      json
// @Success      200 {array} dto.AuthorResponse
// @Router       /api/v1/authors [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	authors, err := h.authorCRUDUseCase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	responses := make([]dto.AuthorResponse, len(authors))
	for i, a := range authors {
		responses[i] = dto.ToAuthorResponse(a)
	}
	response.OK(c, responses)
}

// GetAuthor 作者详情
// @Summary      作者详情
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} dto.AuthorResponse
// @Failure      404 {object} response.MessageBody
// @Router       /api/v1/authors/{id} [get]
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	author, err := h.authorCRUDUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToAuthorResponse(author))
}

// CreateAuthor 创建作者
// @Summary      创建作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Param        request body dto.AuthorRequest true "作者信息"
// @Success      201 {object} dto.AuthorResponse
// @Router       /api/v1/authors [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req dto.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	author, err := h.authorCRUDUseCase.Create(c.Request.Context(), toAuthorInput(req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToAuthorResponse(author))
}

// UpdateAuthor 更新作者
// @Summary      更新作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Param        id path int true "作者ID"
// @Param        request body dto.AuthorRequest true "作者信息"
// @Success      200 {object} dto.AuthorResponse
// @Failure      404 {object} response.MessageBody
// @Router       /api/v1/authors/{id} [put]
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.AuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	author, err := h.authorCRUDUseCase.Update(c.Request.Context(), id, toAuthorInput(req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToAuthorResponse(author))
}

// DeleteAuthor 删除作者
// @Summary      删除作者
// @Description  不级联商品,商品侧悬挂引用由目录查询补"Unknown"
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.MessageBody
// @Failure      404 {object} response.MessageBody
// @Router       /api/v1/authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.authorCRUDUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Author deleted successfully.")
}

func toAuthorInput(req dto.AuthorRequest) appcatalog.AuthorInput {
	return appcatalog.AuthorInput{
		Name:       req.Name,
		BirthDate:  req.BirthDate,
		Biography:  req.Biography,
		CoverImage: req.CoverImage,
	}
}
