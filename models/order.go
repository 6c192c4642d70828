package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order status values. The lifecycle runs pending -> in_progress ->
// completed -> delivered, with cancelled reachable from any non-terminal
// state. Transitions are recorded in order_status_history, never inferred.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Urgency levels and their price multipliers
const (
	UrgencyStandard = "standard"
	UrgencyUrgent   = "urgent"
	UrgencyRush     = "rush"
)

// UrgencyMultipliers maps an urgency level to the factor applied to the
// base per-word rate when estimating a price.
var UrgencyMultipliers = map[string]float64{
	UrgencyStandard: 1,
	UrgencyUrgent:   1.5,
	UrgencyRush:     2,
}

// Languages maps supported language codes to display names used in emails
var Languages = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"ru": "Russian",
	"zh": "Chinese",
	"ja": "Japanese",
	"ko": "Korean",
	"ar": "Arabic",
}

// DocumentTypes lists the document categories accepted on the submission form
var DocumentTypes = []string{
	"Legal Document",
	"Medical Document",
	"Technical Manual",
	"Marketing Material",
	"Academic Paper",
	"Business Document",
	"Personal Document",
	"Website Content",
	"Other",
}

// TranslationOrder represents a single translation request
type TranslationOrder struct {
	ID                  string               `gorm:"type:uuid;primaryKey" json:"id"`
	ClientID            string               `gorm:"type:uuid;not null;index" json:"client_id"`
	Client              *Client              `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	OrderNumber         string               `gorm:"uniqueIndex;not null" json:"order_number"`
	SourceLanguage      string               `gorm:"not null" json:"source_language"`
	TargetLanguage      string               `gorm:"not null" json:"target_language"`
	DocumentType        string               `gorm:"not null" json:"document_type"`
	Urgency             string               `gorm:"not null;default:'standard'" json:"urgency"`
	WordCount           *int                 `json:"word_count,omitempty"`
	EstimatedPrice      *float64             `json:"estimated_price,omitempty"`
	FinalPrice          *float64             `json:"final_price,omitempty"` // set by admin, gates payment
	Status              string               `gorm:"not null;default:'pending'" json:"status"`
	SpecialInstructions *string              `json:"special_instructions,omitempty"`
	Deadline            *time.Time           `json:"deadline,omitempty"`
	Files               []OrderFile          `gorm:"foreignKey:OrderID" json:"files,omitempty"`
	StatusHistory       []OrderStatusHistory `gorm:"foreignKey:OrderID" json:"status_history,omitempty"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

// TableName specifies the table name for the TranslationOrder model
func (TranslationOrder) TableName() string {
	return "translation_orders"
}

// BeforeCreate assigns a UUID primary key and a human-readable order number.
// Order numbers are sequential per year: ATS-2024-0001, ATS-2024-0002, ...
func (o *TranslationOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.OrderNumber == "" {
		var count int64
		if err := tx.Model(&TranslationOrder{}).Count(&count).Error; err != nil {
			return err
		}
		o.OrderNumber = fmt.Sprintf("ATS-%d-%04d", time.Now().Year(), count+1)
	}
	return nil
}

// IsValidStatus reports whether s is a known order status
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// IsValidUrgency reports whether u is a known urgency level
func IsValidUrgency(u string) bool {
	_, ok := UrgencyMultipliers[u]
	return ok
}
