package domain

import "time"

const (
	FieldID       = "id"
	FieldItemName = "item_name"
	FieldQuantity = "quantity"
	FieldPrice    = "price"
	FieldCategory = "category"
	FieldDelta    = "delta"
)

const (
	MaxItemNameLength = 100
	MaxCategoryLength = 50
)

type Item struct {
	ID        uint      `json:"id"`
	ItemName  string    `json:"item_name"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// RawItemFields is the untyped item input of a request. A nil field was not
// supplied by the caller; a non-nil field was, even when it points to "".
type RawItemFields struct {
	ItemName *string
	Quantity *string
	Price    *string
	Category *string
}

// IsEmpty reports whether no field was supplied at all.
func (f RawItemFields) IsEmpty() bool {
	return f.ItemName == nil && f.Quantity == nil && f.Price == nil && f.Category == nil
}
