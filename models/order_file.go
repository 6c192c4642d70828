package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderFile records a document stored for an order. IsSource distinguishes
// the client-uploaded original from the staff-uploaded translation.
// Rows are created on upload and never mutated.
type OrderFile struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID    string    `gorm:"type:uuid;not null;index" json:"order_id"`
	FileName   string    `gorm:"not null" json:"file_name"`
	FilePath   string    `gorm:"not null" json:"file_path"` // key in the documents bucket
	FileType   string    `gorm:"not null" json:"file_type"` // bare extension, e.g. "pdf"
	FileSize   int64     `gorm:"not null" json:"file_size"`
	IsSource   bool      `gorm:"not null" json:"is_source"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

// TableName specifies the table name for the OrderFile model
func (OrderFile) TableName() string {
	return "order_files"
}

// BeforeCreate assigns a UUID primary key before insert
func (f *OrderFile) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
