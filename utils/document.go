package utils

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
)

const (
	// MaxFileSize is 10MB in bytes
	MaxFileSize = 10 * 1024 * 1024
)

// AllowedDocumentFormats lists the file extensions accepted for upload
var AllowedDocumentFormats = []string{".pdf", ".doc", ".docx", ".txt"}

// DocumentError represents a document validation error
type DocumentError struct {
	Code    string
	Message string
}

func (e *DocumentError) Error() string {
	return e.Message
}

// ValidateDocumentFile validates the uploaded file format and size
func ValidateDocumentFile(fileHeader *multipart.FileHeader) error {
	// Check file size
	if fileHeader.Size > MaxFileSize {
		return &DocumentError{
			Code:    "FILE_TOO_LARGE",
			Message: fmt.Sprintf("File size exceeds maximum allowed size of %d MB", MaxFileSize/(1024*1024)),
		}
	}

	// Check file extension
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	for _, allowed := range AllowedDocumentFormats {
		if ext == allowed {
			return nil
		}
	}

	return &DocumentError{
		Code:    "INVALID_FILE_FORMAT",
		Message: fmt.Sprintf("Only %s files are allowed", strings.Join(AllowedDocumentFormats, ", ")),
	}
}

// FileExtension returns the bare extension of a filename without the dot,
// or "unknown" when the name has none. Recorded as order_files.file_type.
func FileExtension(filename string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return "unknown"
	}
	return ext
}

// SourceDocumentPath builds the storage key for a client-uploaded original:
// orders/{orderID}/{orderID}-source.{ext}
func SourceDocumentPath(orderID, originalName string) string {
	return fmt.Sprintf("orders/%s/%s-source.%s", orderID, orderID, FileExtension(originalName))
}

// TranslatedDocumentPath builds the storage key for a staff-uploaded
// translation: orders/{orderID}/{orderID}-translated.{ext}. Uploads to this
// key overwrite any previous translation for the order.
func TranslatedDocumentPath(orderID, originalName string) string {
	return fmt.Sprintf("orders/%s/%s-translated.%s", orderID, orderID, FileExtension(originalName))
}

// ContentTypeForFile maps a filename to the Content-Type served on download
func ContentTypeForFile(filename string) string {
	switch FileExtension(filename) {
	case "pdf":
		return "application/pdf"
	case "doc":
		return "application/msword"
	case "docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case "txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
