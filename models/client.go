package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client represents a customer of the translation service.
// Clients are looked up by email on every submission and reused across orders.
type Client struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	FirstName string    `gorm:"not null" json:"first_name"`
	LastName  string    `gorm:"not null" json:"last_name"`
	Phone     *string   `json:"phone,omitempty"`
	Company   *string   `json:"company,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Client model
func (Client) TableName() string {
	return "clients"
}

// BeforeCreate assigns a UUID primary key before insert
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// FullName returns the client's display name used in emails
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}
