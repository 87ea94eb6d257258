package domain

import "time"

type ItemEventType string

const (
	ItemCreated         ItemEventType = "item.created"
	ItemUpdated         ItemEventType = "item.updated"
	ItemQuantityChanged ItemEventType = "item.quantity_changed"
	ItemDeleted         ItemEventType = "item.deleted"
)

// ItemEvent describes one committed mutation. Item is nil for deletions.
type ItemEvent struct {
	Type   ItemEventType `json:"type"`
	ItemID uint          `json:"item_id"`
	Item   *Item         `json:"item,omitempty"`
	At     time.Time     `json:"at"`
}
