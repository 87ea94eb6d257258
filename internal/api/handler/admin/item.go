package admin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vietanh2810/inventory-api/internal/domain"
	"github.com/vietanh2810/inventory-api/internal/service"
)

const itemsPath = "/admin/items"

type ItemService interface {
	CreateItem(ctx context.Context, raw domain.RawItemFields) (domain.Item, error)
	GetItem(ctx context.Context, id uint) (domain.Item, error)
	ListItems(ctx context.Context, search string) ([]domain.Item, error)
	UpdateItem(ctx context.Context, id uint, raw domain.RawItemFields) (service.UpdateResult, error)
	DeleteItem(ctx context.Context, id uint) error
}

type ItemHandler struct {
	svc ItemService
}

func NewItemHandler(svc ItemService) *ItemHandler {
	return &ItemHandler{
		svc: svc,
	}
}

type page struct {
	Title   string
	Error   string
	Success string
}

type dashboardPage struct {
	page
	ItemCount     int
	TotalQuantity int
}

type itemsPage struct {
	page
	Search string
	Items  []domain.Item
}

type itemFormPage struct {
	page
	Action string
	Submit string
	Form   itemForm
}

type deletePage struct {
	page
	Item domain.Item
}

// itemForm holds what the user typed so a rejected form is shown back as sent.
type itemForm struct {
	ItemName string
	Quantity string
	Price    string
	Category string
}

func formFromItem(item domain.Item) itemForm {
	return itemForm{
		ItemName: item.ItemName,
		Quantity: strconv.Itoa(item.Quantity),
		Price:    fmt.Sprintf("%.2f", item.Price),
		Category: item.Category,
	}
}

func readForm(ctx *gin.Context) (itemForm, domain.RawItemFields) {
	var form itemForm
	var raw domain.RawItemFields

	bind := func(key string, dst *string) *string {
		value, ok := ctx.GetPostForm(key)
		if !ok {
			return nil
		}
		*dst = value

		return &value
	}
	raw.ItemName = bind(domain.FieldItemName, &form.ItemName)
	raw.Quantity = bind(domain.FieldQuantity, &form.Quantity)
	raw.Price = bind(domain.FieldPrice, &form.Price)
	raw.Category = bind(domain.FieldCategory, &form.Category)

	return form, raw
}

func (h *ItemHandler) HandleDashboard(ctx *gin.Context) {
	items, err := h.svc.ListItems(ctx.Request.Context(), "")
	if err != nil {
		renderFailure(ctx, fmt.Errorf("admin.HandleDashboard -> h.svc.ListItems -> %w", err))
		return
	}

	data := dashboardPage{page: page{Title: "Dashboard"}, ItemCount: len(items)}
	for _, item := range items {
		data.TotalQuantity += item.Quantity
	}

	ctx.HTML(http.StatusOK, pageDashboard, data)
}

func (h *ItemHandler) HandleListItems(ctx *gin.Context) {
	search := ctx.Query("search")

	items, err := h.svc.ListItems(ctx.Request.Context(), search)
	if err != nil {
		renderFailure(ctx, fmt.Errorf("admin.HandleListItems -> h.svc.ListItems -> %w", err))
		return
	}

	ctx.HTML(http.StatusOK, pageItems, itemsPage{
		page:   page{Title: "Item List"},
		Search: search,
		Items:  items,
	})
}

func (h *ItemHandler) HandleNewItemForm(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, pageItemForm, newItemPage(itemForm{}))
}

func (h *ItemHandler) HandleCreateItem(ctx *gin.Context) {
	form, raw := readForm(ctx)
	data := newItemPage(form)

	item, err := h.svc.CreateItem(ctx.Request.Context(), raw)
	if err != nil {
		if !service.IsClientError(err) {
			renderFailure(ctx, fmt.Errorf("admin.HandleCreateItem -> h.svc.CreateItem -> %w", err))
			return
		}

		data.Error = formError(err)
		ctx.HTML(http.StatusBadRequest, pageItemForm, data)
		return
	}

	data = newItemPage(itemForm{})
	data.Success = fmt.Sprintf("Item #%d added successfully.", item.ID)
	ctx.HTML(http.StatusCreated, pageItemForm, data)
}

func (h *ItemHandler) HandleEditItemForm(ctx *gin.Context) {
	item, ok := h.loadItem(ctx)
	if !ok {
		return
	}

	ctx.HTML(http.StatusOK, pageItemForm, editItemPage(item.ID, formFromItem(item)))
}

func (h *ItemHandler) HandleUpdateItem(ctx *gin.Context) {
	item, ok := h.loadItem(ctx)
	if !ok {
		return
	}

	form, raw := readForm(ctx)
	data := editItemPage(item.ID, form)

	result, err := h.svc.UpdateItem(ctx.Request.Context(), item.ID, raw)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			ctx.Redirect(http.StatusSeeOther, itemsPath)
			return
		}
		if !service.IsClientError(err) {
			renderFailure(ctx, fmt.Errorf("admin.HandleUpdateItem -> h.svc.UpdateItem -> %w", err))
			return
		}

		data.Error = formError(err)
		ctx.HTML(http.StatusBadRequest, pageItemForm, data)
		return
	}

	data = editItemPage(item.ID, formFromItem(result.Item))
	data.Success = "Item updated successfully."
	ctx.HTML(http.StatusOK, pageItemForm, data)
}

func (h *ItemHandler) HandleDeleteConfirm(ctx *gin.Context) {
	item, ok := h.loadItem(ctx)
	if !ok {
		return
	}

	ctx.HTML(http.StatusOK, pageDelete, deletePage{
		page: page{Title: "Delete Item"},
		Item: item,
	})
}

func (h *ItemHandler) HandleDeleteItem(ctx *gin.Context) {
	id, err := domain.ParseItemID(ctx.Param("id"))
	if err != nil {
		ctx.Redirect(http.StatusSeeOther, itemsPath)
		return
	}

	if err = h.svc.DeleteItem(ctx.Request.Context(), id); err != nil && !errors.Is(err, service.ErrItemNotFound) {
		renderFailure(ctx, fmt.Errorf("admin.HandleDeleteItem -> h.svc.DeleteItem -> %w", err))
		return
	}

	ctx.Redirect(http.StatusSeeOther, itemsPath)
}

// loadItem resolves the :id of the path. Unknown or malformed ids send the
// user back to the list.
func (h *ItemHandler) loadItem(ctx *gin.Context) (domain.Item, bool) {
	id, err := domain.ParseItemID(ctx.Param("id"))
	if err != nil {
		ctx.Redirect(http.StatusSeeOther, itemsPath)
		return domain.Item{}, false
	}

	item, err := h.svc.GetItem(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			ctx.Redirect(http.StatusSeeOther, itemsPath)
			return domain.Item{}, false
		}

		renderFailure(ctx, fmt.Errorf("admin.loadItem -> h.svc.GetItem -> %w", err))
		return domain.Item{}, false
	}

	return item, true
}

func newItemPage(form itemForm) itemFormPage {
	return itemFormPage{
		page:   page{Title: "Add Item"},
		Action: itemsPath + "/new",
		Submit: "Save Item",
		Form:   form,
	}
}

func editItemPage(id uint, form itemForm) itemFormPage {
	return itemFormPage{
		page:   page{Title: fmt.Sprintf("Edit Item #%d", id)},
		Action: fmt.Sprintf("%s/%d/edit", itemsPath, id),
		Submit: "Update Item",
		Form:   form,
	}
}

func formError(err error) string {
	if vErr, ok := domain.AsValidationError(err); ok {
		return vErr.Message
	}
	if errors.Is(err, service.ErrNoFieldsProvided) {
		return "Please fill in the form."
	}

	return "The item could not be saved."
}

func renderFailure(ctx *gin.Context, err error) {
	zap.L().Error("admin page failed",
		zap.String("request_id", requestid.Get(ctx)),
		zap.String("path", ctx.Request.URL.Path),
		zap.Error(err),
	)

	ctx.HTML(http.StatusInternalServerError, pageItems, itemsPage{
		page: page{Title: "Error", Error: "Something went wrong. Please try again later."},
	})
}
