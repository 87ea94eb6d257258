package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/inventory-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/inventory-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/inventory-api/internal/domain"
	"github.com/vietanh2810/inventory-api/internal/service"
)

const dispatchGoneMessage = "Dispatch is not supported. Use PATCH /api/v1/items/{id} or DELETE /api/v1/items/{id} instead."

var clientMessages = map[error]string{
	service.ErrNoFieldsProvided: "No fields provided to update.",
	service.ErrAmbiguousMode:    "Provide only one of delta or quantity.",
	service.ErrMissingMode:      "Provide either delta (change) or quantity (absolute).",
	service.ErrItemConstraint:   "Quantity and price must stay non-negative.",
	service.ErrItemOutOfRange:   "Quantity or price is too large.",
}

type ItemService interface {
	CreateItem(ctx context.Context, raw domain.RawItemFields) (domain.Item, error)
	GetItem(ctx context.Context, id uint) (domain.Item, error)
	ListItems(ctx context.Context, search string) ([]domain.Item, error)
	UpdateItem(ctx context.Context, id uint, raw domain.RawItemFields) (service.UpdateResult, error)
	AdjustQuantity(ctx context.Context, id uint, adj domain.QuantityAdjustment) (service.QuantityResult, error)
	DeleteItem(ctx context.Context, id uint) error
	ValidateItem(ctx context.Context, rawID *string, raw domain.RawItemFields) (service.ValidationResult, error)
}

type ItemHandler struct {
	svc ItemService
}

func NewItemHandler(svc ItemService) *ItemHandler {
	return &ItemHandler{
		svc: svc,
	}
}

// HandleListItems godoc
// @Summary      List items
// @Description  Lists items newest first, optionally filtered by a case-insensitive name search.
// @Tags         items
// @Produce      json
// @Param        search  query     string  false  "part of the item name"
// @Success      200     {object}  response.ItemsResponse
// @Failure      500     {object}  response.Err
// @Router       /items [get]
func (h *ItemHandler) HandleListItems(ctx *gin.Context) {
	items, err := h.svc.ListItems(ctx.Request.Context(), ctx.Query("search"))
	if err != nil {
		err = fmt.Errorf("v1.HandleListItems -> h.svc.ListItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if items == nil {
		items = []domain.Item{}
	}

	ctx.JSON(http.StatusOK, response.ItemsResponse{
		Success: true,
		Items:   items,
	})
}

// HandleGetItem godoc
// @Summary      Get an item
// @Tags         items
// @Produce      json
// @Param        id   path      int  true  "item ID"
// @Success      200  {object}  response.ItemResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /items/{id} [get]
func (h *ItemHandler) HandleGetItem(ctx *gin.Context) {
	id, err := domain.ParseItemID(ctx.Param("id"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	item, err := h.svc.GetItem(ctx.Request.Context(), id)
	if err != nil {
		renderItemErr(ctx, "HandleGetItem -> h.svc.GetItem", id, err)
		return
	}

	ctx.JSON(http.StatusOK, response.ItemResponse{
		Success: true,
		Item:    item,
	})
}

// HandleCreateItem godoc
// @Summary      Create an item
// @Description  item_name, quantity and price are required, category is optional.
// @Tags         items
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request  body      request.ItemRequest  true  "item fields"
// @Success      201      {object}  response.CreateItemResponse
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /items [post]
func (h *ItemHandler) HandleCreateItem(ctx *gin.Context) {
	req, err := request.BindItemRequest(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	item, err := h.svc.CreateItem(ctx.Request.Context(), req.Fields())
	if err != nil {
		renderItemErr(ctx, "HandleCreateItem -> h.svc.CreateItem", 0, err)
		return
	}

	ctx.JSON(http.StatusCreated, response.CreateItemResponse{
		Success: true,
		Message: "Item created.",
		ID:      item.ID,
		Item:    item,
	})
}

// HandleUpdateItem godoc
// @Summary      Update some fields of an item
// @Description  Only the fields sent are validated and written, all of them or none.
// @Tags         items
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        id       path      int                  true  "item ID"
// @Param        request  body      request.ItemRequest  true  "fields to update"
// @Success      200      {object}  response.UpdateItemResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /items/{id} [patch]
// @Router       /items/update [post]
func (h *ItemHandler) HandleUpdateItem(ctx *gin.Context) {
	req, err := request.BindItemRequest(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	id, err := itemID(ctx, &req)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.UpdateItem(ctx.Request.Context(), id, req.Fields())
	if err != nil {
		renderItemErr(ctx, "HandleUpdateItem -> h.svc.UpdateItem", id, err)
		return
	}

	ctx.JSON(http.StatusOK, response.UpdateItemResponse{
		Success:       true,
		Message:       "Item updated.",
		UpdatedFields: result.UpdatedFields,
		Item:          result.Item,
	})
}

// HandleAdjustQuantity godoc
// @Summary      Set or shift the quantity of an item
// @Description  Send exactly one of quantity (absolute, >= 0) or delta (signed change). The result never goes below zero.
// @Tags         items
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        id       path      int                  true  "item ID"
// @Param        request  body      request.ItemRequest  true  "quantity or delta"
// @Success      200      {object}  response.QuantityResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /items/{id}/quantity [post]
// @Router       /items/quantity [post]
func (h *ItemHandler) HandleAdjustQuantity(ctx *gin.Context) {
	req, err := request.BindItemRequest(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	id, err := itemID(ctx, &req)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	adj, err := req.Adjustment()
	if err != nil {
		renderItemErr(ctx, "HandleAdjustQuantity -> req.Adjustment", id, err)
		return
	}

	result, err := h.svc.AdjustQuantity(ctx.Request.Context(), id, adj)
	if err != nil {
		renderItemErr(ctx, "HandleAdjustQuantity -> h.svc.AdjustQuantity", id, err)
		return
	}

	ctx.JSON(http.StatusOK, response.QuantityResponse{
		Success:  true,
		Message:  "Quantity updated.",
		Mode:     result.Mode,
		Value:    result.Value,
		Input:    result.Input,
		Quantity: result.Quantity,
	})
}

// HandleDeleteItem godoc
// @Summary      Delete an item
// @Tags         items
// @Produce      json
// @Param        id   path      int  true  "item ID"
// @Success      200  {object}  response.MessageResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /items/{id} [delete]
// @Router       /items/delete [post]
func (h *ItemHandler) HandleDeleteItem(ctx *gin.Context) {
	req, err := request.BindItemRequest(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	id, err := itemID(ctx, &req)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = h.svc.DeleteItem(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("Item", "id", id).WithMessage("Item not found or already deleted."))
			return
		}

		renderItemErr(ctx, "HandleDeleteItem -> h.svc.DeleteItem", id, err)
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{
		Success: true,
		Message: "Item deleted.",
	})
}

// HandleValidateItem godoc
// @Summary      Validate item fields without saving
// @Description  Checks the fields as an update when id is sent and as a create otherwise. Every problem is reported at once.
// @Tags         items
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request  body      request.ItemRequest  true  "fields to check"
// @Success      200      {object}  response.ValidationResponse
// @Failure      400      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /items/validate [post]
func (h *ItemHandler) HandleValidateItem(ctx *gin.Context) {
	req, err := request.BindItemRequest(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.ValidateItem(ctx.Request.Context(), req.RawID(), req.Fields())
	if err != nil {
		if service.IsClientError(err) {
			response.RenderErr(ctx, response.ErrValidationFailed(err))
			return
		}

		err = fmt.Errorf("v1.HandleValidateItem -> h.svc.ValidateItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ValidationResponse{
		Success:   true,
		Message:   fmt.Sprintf("Validation passed for %s.", result.Operation),
		Operation: result.Operation,
		Data:      result.Data,
	})
}

// HandleDispatch godoc
// @Summary      Retired dispatch endpoint
// @Tags         items
// @Produce      json
// @Failure      410  {object}  response.Err
// @Router       /items/dispatch [post]
func (h *ItemHandler) HandleDispatch(ctx *gin.Context) {
	response.RenderErr(ctx, response.ErrGone(dispatchGoneMessage))
}

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Produce      json
// @Success      200  {object}  response.HealthcheckResponse
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.HealthcheckResponse{Status: "ok"})
}

// itemID prefers the id in the path and falls back to the one in the body.
func itemID(ctx *gin.Context, req *request.ItemRequest) (uint, error) {
	if raw := ctx.Param("id"); raw != "" {
		return domain.ParseItemID(raw)
	}

	return req.ItemID()
}

func renderItemErr(ctx *gin.Context, op string, id uint, err error) {
	if errors.Is(err, service.ErrItemNotFound) {
		response.RenderErr(ctx, response.ErrNotFound("Item", "id", id))
		return
	}

	if service.IsClientError(err) {
		e := response.ErrBadRequest(err)
		for target, message := range clientMessages {
			if errors.Is(err, target) {
				e.WithMessage(message)
				break
			}
		}
		response.RenderErr(ctx, e)
		return
	}

	err = fmt.Errorf("v1.%s -> %w", op, err)
	response.RenderErr(ctx, response.ErrInternalServerError(err))
}
