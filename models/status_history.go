package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatusHistory is an append-only log of order status transitions.
// Every status change writes exactly one row here.
type OrderStatusHistory struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID   string    `gorm:"type:uuid;not null;index" json:"order_id"`
	Status    string    `gorm:"not null" json:"status"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the OrderStatusHistory model
func (OrderStatusHistory) TableName() string {
	return "order_status_history"
}

// BeforeCreate assigns a UUID primary key before insert
func (h *OrderStatusHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
