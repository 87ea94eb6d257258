package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/inventory-api/internal/domain"
	"github.com/vietanh2810/inventory-api/internal/service"
)

type mockItemService struct {
	mock.Mock
}

func (m *mockItemService) CreateItem(ctx context.Context, raw domain.RawItemFields) (domain.Item, error) {
	args := m.Called(ctx, raw)
	return args.Get(0).(domain.Item), args.Error(1)
}

func (m *mockItemService) GetItem(ctx context.Context, id uint) (domain.Item, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Item), args.Error(1)
}

func (m *mockItemService) ListItems(ctx context.Context, search string) ([]domain.Item, error) {
	args := m.Called(ctx, search)
	items, _ := args.Get(0).([]domain.Item)
	return items, args.Error(1)
}

func (m *mockItemService) UpdateItem(ctx context.Context, id uint, raw domain.RawItemFields) (service.UpdateResult, error) {
	args := m.Called(ctx, id, raw)
	return args.Get(0).(service.UpdateResult), args.Error(1)
}

func (m *mockItemService) AdjustQuantity(ctx context.Context, id uint, adj domain.QuantityAdjustment) (service.QuantityResult, error) {
	args := m.Called(ctx, id, adj)
	return args.Get(0).(service.QuantityResult), args.Error(1)
}

func (m *mockItemService) DeleteItem(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockItemService) ValidateItem(ctx context.Context, rawID *string, raw domain.RawItemFields) (service.ValidationResult, error) {
	args := m.Called(ctx, rawID, raw)
	return args.Get(0).(service.ValidationResult), args.Error(1)
}

type envelope struct {
	Success       bool                      `json:"success"`
	Message       string                    `json:"message"`
	Errors        []*domain.ValidationError `json:"errors"`
	ID            uint                      `json:"id"`
	UpdatedFields []string                  `json:"updated_fields"`
	Mode          string                    `json:"mode"`
	Value         int                       `json:"value"`
	Quantity      int                       `json:"quantity"`
	Operation     string                    `json:"operation"`
	Data          map[string]interface{}    `json:"data"`
	Items         []domain.Item             `json:"items"`
}

func newTestRouter(svc ItemService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewItemHandler(svc)

	r.GET("/items", h.HandleListItems)
	r.POST("/items", h.HandleCreateItem)
	r.POST("/items/validate", h.HandleValidateItem)
	r.POST("/items/dispatch", h.HandleDispatch)
	r.POST("/items/update", h.HandleUpdateItem)
	r.POST("/items/quantity", h.HandleAdjustQuantity)
	r.POST("/items/delete", h.HandleDeleteItem)
	r.GET("/items/:id", h.HandleGetItem)
	r.PATCH("/items/:id", h.HandleUpdateItem)
	r.DELETE("/items/:id", h.HandleDeleteItem)
	r.POST("/items/:id/quantity", h.HandleAdjustQuantity)

	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	return serve(t, r, req)
}

func doForm(t *testing.T, r http.Handler, method, path string, form url.Values) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return serve(t, r, req)
}

func serve(t *testing.T, r http.Handler, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())

	return w, body
}

func str(s string) *string {
	return &s
}

func TestHandleCreateItem(t *testing.T) {
	svc := new(mockItemService)
	raw := domain.RawItemFields{ItemName: str("Rice"), Quantity: str("10"), Price: str("18.9")}
	svc.On("CreateItem", mock.Anything, raw).Return(domain.Item{ID: 5, ItemName: "Rice", Quantity: 10, Price: 18.9}, nil)

	w, body := doJSON(t, newTestRouter(svc), http.MethodPost, "/items", `{"item_name":"Rice","quantity":10,"price":18.9}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, body.Success)
	assert.Equal(t, "Item created.", body.Message)
	assert.Equal(t, uint(5), body.ID)
	svc.AssertExpectations(t)
}

func TestHandleCreateItemFromForm(t *testing.T) {
	svc := new(mockItemService)
	raw := domain.RawItemFields{ItemName: str("Rice"), Quantity: str("10"), Price: str("18.90"), Category: str("")}
	svc.On("CreateItem", mock.Anything, raw).Return(domain.Item{ID: 6}, nil)

	w, _ := doForm(t, newTestRouter(svc), http.MethodPost, "/items", url.Values{
		"item_name": {"Rice"},
		"quantity":  {"10"},
		"price":     {"18.90"},
		"category":  {""},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestHandleCreateItemValidationError(t *testing.T) {
	svc := new(mockItemService)
	svc.On("CreateItem", mock.Anything, mock.Anything).
		Return(domain.Item{}, domain.NewValidationError(domain.FieldPrice, domain.CodeNotNumeric))

	w, body := doJSON(t, newTestRouter(svc), http.MethodPost, "/items", `{"item_name":"Rice","quantity":1,"price":"abc"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "Price must be a number.", body.Message)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, domain.CodeNotNumeric, body.Errors[0].Code)
}

func TestHandleCreateItemRejectsObjects(t *testing.T) {
	svc := new(mockItemService)

	w, body := doJSON(t, newTestRouter(svc), http.MethodPost, "/items", `{"item_name":{"nested":true}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, body.Success)
	svc.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
}

func TestHandleCreateItemStoreFailureHidesCause(t *testing.T) {
	svc := new(mockItemService)
	svc.On("CreateItem", mock.Anything, mock.Anything).Return(domain.Item{}, errors.New("pq: connection refused"))

	w, body := doJSON(t, newTestRouter(svc), http.MethodPost, "/items", `{"item_name":"Rice","quantity":1,"price":1}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, body.Success)
	assert.NotContains(t, body.Message, "connection refused")
}

func TestHandleUpdateItem(t *testing.T) {
	svc := new(mockItemService)
	raw := domain.RawItemFields{Quantity: str("4"), Category: str("")}
	svc.On("UpdateItem", mock.Anything, uint(9), raw).Return(service.UpdateResult{
		UpdatedFields: []string{domain.FieldQuantity, domain.FieldCategory},
		Item:          domain.Item{ID: 9, Quantity: 4},
	}, nil)

	w, body := doJSON(t, newTestRouter(svc), http.MethodPatch, "/items/9", `{"quantity":"4","category":"","price":null}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Item updated.", body.Message)
	assert.Equal(t, []string{"quantity", "category"}, body.UpdatedFields)
	svc.AssertExpectations(t)
}

func TestHandleUpdateItemTakesIDFromBody(t *testing.T) {
	svc := new(mockItemService)
	raw := domain.RawItemFields{ItemName: str("Pear")}
	svc.On("UpdateItem", mock.Anything, uint(3), raw).Return(service.UpdateResult{UpdatedFields: []string{"item_name"}}, nil)

	w, _ := doForm(t, newTestRouter(svc), http.MethodPost, "/items/update", url.Values{
		"id":        {"3"},
		"item_name": {"Pear"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestHandleUpdateItemErrors(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		body        string
		svcErr      error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "non numeric id",
			path:        "/items/abc",
			body:        `{"quantity":1}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "A valid numeric item ID is required.",
		},
		{
			name:        "missing id in body",
			path:        "/items/update",
			body:        `{"quantity":1}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "A valid numeric item ID is required.",
		},
		{
			name:        "unknown item",
			path:        "/items/404",
			body:        `{"quantity":1}`,
			svcErr:      service.ErrItemNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Item not found.",
		},
		{
			name:        "no fields",
			path:        "/items/1",
			body:        `{}`,
			svcErr:      service.ErrNoFieldsProvided,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "No fields provided to update.",
		},
		{
			name:        "value beyond the column range",
			path:        "/items/1",
			body:        `{"quantity":"9223372036854775807"}`,
			svcErr:      fmt.Errorf("s.repo.Update -> %w", service.ErrItemOutOfRange),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Quantity or price is too large.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockItemService)
			if tt.svcErr != nil {
				svc.On("UpdateItem", mock.Anything, mock.Anything, mock.Anything).Return(service.UpdateResult{}, tt.svcErr)
			}

			method := http.MethodPatch
			if tt.path == "/items/update" {
				method = http.MethodPost
			}
			w, body := doJSON(t, newTestRouter(svc), method, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestHandleAdjustQuantity(t *testing.T) {
	svc := new(mockItemService)
	adj := domain.QuantityAdjustment{Mode: domain.QuantityModeDelta, Value: -3, Raw: "-3"}
	svc.On("AdjustQuantity", mock.Anything, uint(2), adj).Return(service.QuantityResult{
		Mode:     domain.QuantityModeDelta,
		Value:    -3,
		Input:    "-3",
		Quantity: 0,
	}, nil)

	w, body := doJSON(t, newTestRouter(svc), http.MethodPost, "/items/2/quantity", `{"delta":-3}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Quantity updated.", body.Message)
	assert.Equal(t, "delta", body.Mode)
	assert.Equal(t, -3, body.Value)
	assert.Equal(t, 0, body.Quantity)
	svc.AssertExpectations(t)
}

func TestHandleAdjustQuantityModeErrorsComeFirst(t *testing.T) {
	svc := new(mockItemService)
	r := newTestRouter(svc)

	w, body := doJSON(t, r, http.MethodPost, "/items/2/quantity", `{"delta":1,"quantity":5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Provide only one of delta or quantity.", body.Message)

	w, body = doForm(t, r, http.MethodPost, "/items/quantity", url.Values{"id": {"2"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Provide either delta (change) or quantity (absolute).", body.Message)

	svc.AssertNotCalled(t, "AdjustQuantity", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleDeleteItem(t *testing.T) {
	svc := new(mockItemService)
	svc.On("DeleteItem", mock.Anything, uint(7)).Return(nil).Once()
	svc.On("DeleteItem", mock.Anything, uint(7)).Return(service.ErrItemNotFound).Once()
	r := newTestRouter(svc)

	w, body := doJSON(t, r, http.MethodDelete, "/items/7", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Item deleted.", body.Message)

	w, body = doForm(t, r, http.MethodPost, "/items/delete", url.Values{"id": {"7"}})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Item not found or already deleted.", body.Message)

	svc.AssertExpectations(t)
}

func TestHandleDeleteItemBeyondBigint(t *testing.T) {
	svc := new(mockItemService)
	svc.On("DeleteItem", mock.Anything, uint(math.MaxUint64)).Return(service.ErrItemNotFound)

	w, body := doJSON(t, newTestRouter(svc), http.MethodDelete, "/items/18446744073709551615", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Item not found or already deleted.", body.Message)
	svc.AssertExpectations(t)
}

func TestHandleValidateItem(t *testing.T) {
	svc := new(mockItemService)
	raw := domain.RawItemFields{ItemName: str("Rice"), Quantity: str("2"), Price: str("1")}
	svc.On("ValidateItem", mock.Anything, (*string)(nil), raw).Return(service.ValidationResult{
		Operation: domain.OperationCreate,
		Data:      map[string]interface{}{"item_name": "Rice", "quantity": 2, "price": 1.0},
	}, nil)

	w, body := doJSON(t, newTestRouter(svc), http.MethodPost, "/items/validate", `{"item_name":"Rice","quantity":2,"price":1}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Validation passed for create.", body.Message)
	assert.Equal(t, "create", body.Operation)
	assert.Equal(t, "Rice", body.Data["item_name"])
}

func TestHandleValidateItemAggregatesErrors(t *testing.T) {
	svc := new(mockItemService)
	errs := domain.ValidationErrors{
		domain.NewValidationError(domain.FieldID, domain.CodeUnknownID),
		domain.NewValidationError(domain.FieldPrice, domain.CodeNegative),
	}
	svc.On("ValidateItem", mock.Anything, str("99"), mock.Anything).
		Return(service.ValidationResult{Operation: domain.OperationUpdate}, errs)

	w, body := doJSON(t, newTestRouter(svc), http.MethodPost, "/items/validate", `{"id":99,"price":"-1"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "Validation failed.", body.Message)
	require.Len(t, body.Errors, 2)
	assert.Equal(t, domain.CodeUnknownID, body.Errors[0].Code)
	assert.Equal(t, domain.CodeNegative, body.Errors[1].Code)
}

func TestHandleListItems(t *testing.T) {
	svc := new(mockItemService)
	svc.On("ListItems", mock.Anything, "rice").Return([]domain.Item{{ID: 2}, {ID: 1}}, nil)
	svc.On("ListItems", mock.Anything, "none").Return(nil, nil)
	r := newTestRouter(svc)

	w, body := doJSON(t, r, http.MethodGet, "/items?search=rice", "")
	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body.Items, 2)
	assert.Equal(t, uint(2), body.Items[0].ID)

	w, _ = doJSON(t, r, http.MethodGet, "/items?search=none", "")
	assert.Contains(t, w.Body.String(), `"items":[]`)
}

func TestHandleGetItem(t *testing.T) {
	svc := new(mockItemService)
	svc.On("GetItem", mock.Anything, uint(1)).Return(domain.Item{ID: 1, ItemName: "Rice"}, nil)
	svc.On("GetItem", mock.Anything, uint(2)).Return(domain.Item{}, service.ErrItemNotFound)
	r := newTestRouter(svc)

	w, _ := doJSON(t, r, http.MethodGet, "/items/1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, body := doJSON(t, r, http.MethodGet, "/items/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Item not found.", body.Message)
}

func TestHandleDispatchIsGone(t *testing.T) {
	w, body := doJSON(t, newTestRouter(new(mockItemService)), http.MethodPost, "/items/dispatch", `{"id":1}`)

	assert.Equal(t, http.StatusGone, w.Code)
	assert.False(t, body.Success)
	assert.Contains(t, body.Message, "Dispatch is not supported.")
}
