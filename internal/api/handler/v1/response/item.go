package response

import (
	"github.com/vietanh2810/inventory-api/internal/domain"
)

type ItemsResponse struct {
	Success bool          `json:"success" example:"true"`
	Items   []domain.Item `json:"items"`
}

type ItemResponse struct {
	Success bool        `json:"success" example:"true"`
	Item    domain.Item `json:"item"`
}

type CreateItemResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message" example:"Item created."`
	ID      uint        `json:"id" example:"12"`
	Item    domain.Item `json:"item"`
}

type UpdateItemResponse struct {
	Success       bool        `json:"success" example:"true"`
	Message       string      `json:"message" example:"Item updated."`
	UpdatedFields []string    `json:"updated_fields" example:"quantity,price"`
	Item          domain.Item `json:"item"`
}

// QuantityResponse carries the normalized value applied, the raw input it came
// from and the quantity read back after the write.
type QuantityResponse struct {
	Success  bool                `json:"success" example:"true"`
	Message  string              `json:"message" example:"Quantity updated."`
	Mode     domain.QuantityMode `json:"mode" example:"delta"`
	Value    int                 `json:"value" example:"-3"`
	Input    string              `json:"input" example:"-3"`
	Quantity int                 `json:"quantity" example:"7"`
}

type ValidationResponse struct {
	Success   bool                   `json:"success" example:"true"`
	Message   string                 `json:"message" example:"Validation passed for create."`
	Operation domain.Operation       `json:"operation" example:"create"`
	Data      map[string]interface{} `json:"data"`
}

type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Item deleted."`
}

type HealthcheckResponse struct {
	Status string `json:"status" example:"ok"`
}
