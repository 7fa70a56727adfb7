package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcatalog "github.com/bookhaven/bookhaven/internal/application/catalog"
	"github.com/bookhaven/bookhaven/internal/domain/catalog"
	"github.com/bookhaven/bookhaven/pkg/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
	metrics.InitMetrics()
}

// stubCatalogService 目录领域服务桩实现(只覆盖处理器测试用到的路径)
type stubCatalogService struct {
	page       *catalog.ItemPage
	item       *catalog.SellItem
	categories []catalog.Category
	err        error
}

func (s *stubCatalogService) GetItem(_ context.Context, _ uint) (*catalog.SellItem, error) {
	return s.item, s.err
}

func (s *stubCatalogService) ListItems(_ context.Context, pageNumber, pageSize int, _ string) (*catalog.ItemPage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.page, nil
}

func (s *stubCatalogService) SearchItems(_ context.Context, query string, _, _ int) (*catalog.ItemPage, error) {
	if strings.TrimSpace(query) == "" {
		return nil, catalog.ErrQueryRequired
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.page, nil
}

func (s *stubCatalogService) ListCategories(_ context.Context) ([]catalog.Category, error) {
	return s.categories, s.err
}

func (s *stubCatalogService) CreateItem(_ context.Context, item *catalog.SellItem) (*catalog.SellItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	item.ID = 1
	return item, nil
}

func (s *stubCatalogService) UpdateItem(_ context.Context, _ uint, item *catalog.SellItem) (*catalog.SellItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	return item, nil
}

func (s *stubCatalogService) DeleteItem(_ context.Context, _ uint) error { return s.err }

func (s *stubCatalogService) GetAuthor(_ context.Context, _ uint) (*catalog.Author, error) {
	return nil, s.err
}
func (s *stubCatalogService) ListAuthors(_ context.Context) ([]*catalog.Author, error) { return nil, s.err }
func (s *stubCatalogService) CreateAuthor(_ context.Context, a *catalog.Author) (*catalog.Author, error) {
	return a, s.err
}
func (s *stubCatalogService) UpdateAuthor(_ context.Context, _ uint, a *catalog.Author) (*catalog.Author, error) {
	return a, s.err
}
func (s *stubCatalogService) DeleteAuthor(_ context.Context, _ uint) error { return s.err }

func (s *stubCatalogService) GetItemType(_ context.Context, _ uint) (*catalog.ItemType, error) {
	return nil, s.err
}
func (s *stubCatalogService) ListItemTypes(_ context.Context) ([]*catalog.ItemType, error) {
	return nil, s.err
}
func (s *stubCatalogService) CreateItemType(_ context.Context, t *catalog.ItemType) (*catalog.ItemType, error) {
	return t, s.err
}
func (s *stubCatalogService) UpdateItemType(_ context.Context, _ uint, t *catalog.ItemType) (*catalog.ItemType, error) {
	return t, s.err
}
func (s *stubCatalogService) DeleteItemType(_ context.Context, _ uint) error { return s.err }

// newCatalogRouter 用桩服务装配目录路由
func newCatalogRouter(svc catalog.Service) *gin.Engine {
	h := NewCatalogHandler(
		appcatalog.NewListItemsUseCase(svc),
		appcatalog.NewSearchItemsUseCase(svc),
		appcatalog.NewListCategoriesUseCase(svc, nil),
		appcatalog.NewItemCRUDUseCase(svc),
	)

	r := gin.New()
	items := r.Group("/api/v1/items")
	items.GET("", h.ListItems)
	items.GET("/search", h.SearchItems)
	items.GET("/categories", h.ListCategories)
	items.GET("/:id", h.GetItem)
	items.POST("", h.CreateItem)
	items.PUT("/:id", h.UpdateItem)
	items.DELETE("/:id", h.DeleteItem)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListItems_Envelope(t *testing.T) {
	svc := &stubCatalogService{
		page: &catalog.ItemPage{
			PageNumber: 2,
			PageSize:   6,
			TotalCount: 13,
			TotalPages: 3,
			Items: []catalog.EnrichedItem{
				{
					SellItem:     catalog.SellItem{ID: 7, Title: "The Hobbit", AuthorID: 1, ItemTypeID: 2, Price: 1499},
					AuthorName:   "J.R.R. Tolkien",
					ItemTypeName: "Books",
				},
			},
		},
	}
	r := newCatalogRouter(svc)

	w := doRequest(t, r, http.MethodGet, "/api/v1/items?pageNumber=2&pageSize=6&search=hobbit", "")
	require.Equal(t, http.StatusOK, w.Code)

	// 信封键名是站点端契约,必须逐字匹配
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	for _, key := range []string{"pageNumber", "pageSize", "totalBooks", "totalPages", "searchTerm", "data"} {
		assert.Contains(t, body, key)
	}

	var resp struct {
		PageNumber int    `json:"pageNumber"`
		TotalBooks int64  `json:"totalBooks"`
		TotalPages int    `json:"totalPages"`
		SearchTerm string `json:"searchTerm"`
		Data       []struct {
			ID           uint   `json:"id"`
			AuthorName   string `json:"authorName"`
			ItemTypeName string `json:"itemTypeName"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.PageNumber)
	assert.Equal(t, int64(13), resp.TotalBooks)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, "hobbit", resp.SearchTerm)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "J.R.R. Tolkien", resp.Data[0].AuthorName)
	assert.Equal(t, "Books", resp.Data[0].ItemTypeName)
}

func TestSearchItems_Envelope(t *testing.T) {
	svc := &stubCatalogService{
		page: &catalog.ItemPage{PageNumber: 1, PageSize: 6, TotalCount: 0, TotalPages: 0, Items: []catalog.EnrichedItem{}},
	}
	r := newCatalogRouter(svc)

	w := doRequest(t, r, http.MethodGet, "/api/v1/items/search?query=tolkien", "")
	require.Equal(t, http.StatusOK, w.Code)

	// 搜索端点回显searchQuery而不是searchTerm
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "searchQuery")
	assert.NotContains(t, body, "searchTerm")
	assert.JSONEq(t, `"tolkien"`, string(body["searchQuery"]))
	assert.JSONEq(t, `[]`, string(body["data"]))
}

func TestSearchItems_BlankQuery(t *testing.T) {
	r := newCatalogRouter(&stubCatalogService{})

	w := doRequest(t, r, http.MethodGet, "/api/v1/items/search?query=++", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Search query is required."}`, w.Body.String())
}

func TestGetItem_NotFound(t *testing.T) {
	r := newCatalogRouter(&stubCatalogService{err: catalog.NewItemNotFound(42)})

	w := doRequest(t, r, http.MethodGet, "/api/v1/items/42", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Item with ID 42 not found."}`, w.Body.String())
}

func TestGetItem_InvalidID(t *testing.T) {
	r := newCatalogRouter(&stubCatalogService{})

	w := doRequest(t, r, http.MethodGet, "/api/v1/items/abc", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid ID."}`, w.Body.String())
}

func TestCreateItem(t *testing.T) {
	r := newCatalogRouter(&stubCatalogService{})

	body := `{"title":"The Hobbit","authorId":1,"itemTypeId":2,"price":1499,"stockQuantity":10}`
	w := doRequest(t, r, http.MethodPost, "/api/v1/items", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ID    uint   `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, "The Hobbit", resp.Title)
}

func TestCreateItem_BindError(t *testing.T) {
	r := newCatalogRouter(&stubCatalogService{})

	// title缺失触发binding错误
	w := doRequest(t, r, http.MethodPost, "/api/v1/items", `{"authorId":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateItem_MessageAndItem(t *testing.T) {
	r := newCatalogRouter(&stubCatalogService{})

	body := `{"title":"The Hobbit","authorId":1,"itemTypeId":2,"price":1499,"stockQuantity":10}`
	w := doRequest(t, r, http.MethodPut, "/api/v1/items/7", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string          `json:"message"`
		Item    json.RawMessage `json:"item"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Item updated successfully.", resp.Message)
	assert.NotEmpty(t, resp.Item)
}

func TestDeleteItem_Message(t *testing.T) {
	r := newCatalogRouter(&stubCatalogService{})

	w := doRequest(t, r, http.MethodDelete, "/api/v1/items/7", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Item deleted successfully."}`, w.Body.String())
}

func TestListCategories(t *testing.T) {
	r := newCatalogRouter(&stubCatalogService{
		categories: []catalog.Category{{ID: 1, Name: "Books"}, {ID: 3, Name: "Unknown"}},
	})

	w := doRequest(t, r, http.MethodGet, "/api/v1/items/categories", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Books"},{"id":3,"name":"Unknown"}]`, w.Body.String())
}
