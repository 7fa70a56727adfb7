package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appcatalog "github.com/bookhaven/bookhaven/internal/application/catalog"
	"github.com/bookhaven/bookhaven/internal/interface/http/dto"
	"github.com/bookhaven/bookhaven/pkg/response"
)

// CatalogHandler 商品目录HTTP处理器
type CatalogHandler struct {
	listItemsUseCase      *appcatalog.ListItemsUseCase
	searchItemsUseCase    *appcatalog.SearchItemsUseCase
	listCategoriesUseCase *appcatalog.ListCategoriesUseCase
	itemCRUDUseCase       *appcatalog.ItemCRUDUseCase
}

// NewCatalogHandler 创建目录处理器
func NewCatalogHandler(
	listItemsUseCase *appcatalog.ListItemsUseCase,
	searchItemsUseCase *appcatalog.SearchItemsUseCase,
	listCategoriesUseCase *appcatalog.ListCategoriesUseCase,
	itemCRUDUseCase *appcatalog.ItemCRUDUseCase,
) *CatalogHandler {
	return &CatalogHandler{
		listItemsUseCase:      listItemsUseCase,
		searchItemsUseCase:    searchItemsUseCase,
		listCategoriesUseCase: listCategoriesUseCase,
		itemCRUDUseCase:       itemCRUDUseCase,
	}
}

// ListItems 商品分页列表
// @Summary      商品分页列表
// @Description  分页查询商品,search按子串过滤标题/描述/ISBN
// @Tags         商品
// @Produce      json
// @Param        pageNumber query int false "页码(默认1)"
// @Param        pageSize query int false "每页数量(默认6,最大50)"
// @Param        search query string false "过滤词"
// @Success      200 {object} dto.ListItemsResponse
// @Router       /api/v1/items [get]
func (h *CatalogHandler) ListItems(c *gin.Context) {
	search := c.Query("search")

	page, err := h.listItemsUseCase.Execute(c.Request.Context(), appcatalog.ListItemsRequest{
		PageNumber: queryInt(c, "pageNumber"),
		PageSize:   queryInt(c, "pageSize"),
		Search:     search,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// searchTerm原样回显请求参数
	response.OK(c, &dto.ListItemsResponse{
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalBooks: page.TotalCount,
		TotalPages: page.TotalPages,
		SearchTerm: search,
		Data:       dto.ToEnrichedItemResponses(page.Items),
	})
}

// SearchItems 商品搜索
// @Summary      商品搜索
// @Description  搜索词必填,额外匹配作者名与类别名
// @Tags         商品
// @Produce      json
// @Param        query query string true "搜索词"
// @Param        pageNumber query int false "页码"
// @Param        pageSize query int false "每页数量"
// @Success      200 {object} dto.SearchItemsResponse
// @Failure      400 {object} response.MessageBody "搜索词为空"
// @Router       /api/v1/items/search [get]
func (h *CatalogHandler) SearchItems(c *gin.Context) {
	query := c.Query("query")

	page, err := h.searchItemsUseCase.Execute(c.Request.Context(), appcatalog.SearchItemsRequest{
		Query:      query,
		PageNumber: queryInt(c, "pageNumber"),
		PageSize:   queryInt(c, "pageSize"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, &dto.SearchItemsResponse{
		PageNumber:  page.PageNumber,
		PageSize:    page.PageSize,
		TotalBooks:  page.TotalCount,
		TotalPages:  page.TotalPages,
		SearchQuery: query,
		Data:        dto.ToEnrichedItemResponses(page.Items),
	})
}

// ListCategories 商品类别列表
// @Summary      商品类别列表
// @Description  商品实际出现过的类别集合,ID升序
// @Tags         商品
// @Produce      json
// @Success      200 {array} dto.CategoryResponse
// @Router       /api/v1/items/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.listCategoriesUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToCategoryResponses(categories))
}

// GetItem 商品详情
// @Summary      商品详情
// @Tags         商品
// @Produce      json
// @Param        id path int true "商品ID"
// @Success      200 {object} dto.ItemResponse
// @Failure      404 {object} response.MessageBody
// @Router       /api/v1/items/{id} [get]
func (h *CatalogHandler) GetItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	item, err := h.itemCRUDUseCase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToItemResponse(item))
}

// CreateItem 创建商品
// @Summary      创建商品
// @Tags         商品
// @Accept       json
// @Produce      json
// @Param        request body dto.ItemRequest true "商品信息"
// @Success      201 {object} dto.ItemResponse
// @Failure      400 {object} response.MessageBody "参数错误"
// @Router       /api/v1/items [post]
func (h *CatalogHandler) CreateItem(c *gin.Context) {
	var req dto.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.itemCRUDUseCase.Create(c.Request.Context(), toItemInput(req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToItemResponse(item))
}

// UpdateItem 全量更新商品
// @Summary      更新商品
// @Tags         商品
// @Accept       json
// @Produce      json
// @Param        id path int true "商品ID"
// @Param        request body dto.ItemRequest true "商品信息"
// @Success      200 {object} dto.UpdateItemResponse
// @Failure      404 {object} response.MessageBody
// @Router       /api/v1/items/{id} [put]
func (h *CatalogHandler) UpdateItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.itemCRUDUseCase.Update(c.Request.Context(), id, toItemInput(req))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, &dto.UpdateItemResponse{
		Message: "Item updated successfully.",
		Item:    dto.ToItemResponse(item),
	})
}

// DeleteItem 删除商品
// @Summary      删除商品
// @Tags         商品
// @Produce      json
// @Param        id path int true "商品ID"
// @Success      200 {object} response.MessageBody
// @Failure      404 {object} response.MessageBody
// @Router       /api/v1/items/{id} [delete]
func (h *CatalogHandler) DeleteItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.itemCRUDUseCase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Item deleted successfully.")
}

func toItemInput(req dto.ItemRequest) appcatalog.ItemInput {
	return appcatalog.ItemInput{
		Title:         req.Title,
		AuthorID:      req.AuthorID,
		ItemTypeID:    req.ItemTypeID,
		PublishedDate: req.PublishedDate,
		Description:   req.Description,
		Price:         req.Price,
		ISBN:          req.ISBN,
		StockQuantity: req.StockQuantity,
		CoverImage:    req.CoverImage,
	}
}

// queryInt 解析整型query参数,缺席或非法取0(由领域层钳位到默认值)
func queryInt(c *gin.Context, name string) int {
	val, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return val
}

// paramID 解析路径ID参数,非法时直接写400响应
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid ID.")
		return 0, false
	}
	return uint(id), true
}
