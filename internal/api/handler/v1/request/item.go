package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/inventory-api/internal/domain"
)

// Scalar is a field value sent either as a string or as a JSON number. It is
// kept as text so presence and the raw input reach the validators untouched.
type Scalar string

func (s *Scalar) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Scalar(str)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected a string or a number, got %s", bytes.TrimSpace(data))
	}
	*s = Scalar(n.String())

	return nil
}

func (s *Scalar) ptr() *string {
	if s == nil {
		return nil
	}
	str := string(*s)

	return &str
}

// ItemRequest is the body shared by every item endpoint. A nil field was not
// sent; JSON null counts as not sent.
type ItemRequest struct {
	ID       *Scalar `json:"id" form:"id" swaggertype:"string" example:"12"`
	ItemName *Scalar `json:"item_name" form:"item_name" swaggertype:"string" example:"Rice 5kg"`
	Quantity *Scalar `json:"quantity" form:"quantity" swaggertype:"string" example:"10"`
	Price    *Scalar `json:"price" form:"price" swaggertype:"string" example:"18.90"`
	Category *Scalar `json:"category" form:"category" swaggertype:"string" example:"Groceries"`
	Delta    *Scalar `json:"delta" form:"delta" swaggertype:"string" example:"-2"`
}

// BindItemRequest reads a form-encoded or JSON body. An empty body binds to a
// request with no field set.
func BindItemRequest(ctx *gin.Context) (ItemRequest, error) {
	var req ItemRequest
	if err := ctx.ShouldBind(&req); err != nil && !errors.Is(err, io.EOF) {
		return ItemRequest{}, err
	}

	return req, nil
}

func (req *ItemRequest) Fields() domain.RawItemFields {
	return domain.RawItemFields{
		ItemName: req.ItemName.ptr(),
		Quantity: req.Quantity.ptr(),
		Price:    req.Price.ptr(),
		Category: req.Category.ptr(),
	}
}

func (req *ItemRequest) RawID() *string {
	return req.ID.ptr()
}

// ItemID parses the id sent in the body. A missing id is invalid.
func (req *ItemRequest) ItemID() (uint, error) {
	if req.ID == nil {
		return domain.ParseItemID("")
	}

	return domain.ParseItemID(string(*req.ID))
}

func (req *ItemRequest) Adjustment() (domain.QuantityAdjustment, error) {
	return domain.ParseQuantityAdjustment(req.Quantity.ptr(), req.Delta.ptr())
}
