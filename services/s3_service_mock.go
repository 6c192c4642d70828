package services

import (
	"fmt"
	"sync"
)

// MockS3Service is an in-memory implementation of S3Interface for testing
type MockS3Service struct {
	storedFiles map[string][]byte // map of storage key to file content
	mu          sync.RWMutex
}

// NewMockS3Service creates a new mock S3 service
func NewMockS3Service() *MockS3Service {
	return &MockS3Service{
		storedFiles: make(map[string][]byte),
	}
}

// SetAsMockForTesting sets this mock as the global S3 service instance for testing
func (m *MockS3Service) SetAsMockForTesting() {
	SetS3Service(m)
}

// UploadDocument stores the content in memory, overwriting any existing key
func (m *MockS3Service) UploadDocument(key string, content []byte, contentType string) error {
	m.mu.Lock()
	m.storedFiles[key] = content
	m.mu.Unlock()
	return nil
}

// DownloadDocument returns the stored content for a key
func (m *MockS3Service) DownloadDocument(key string) ([]byte, error) {
	m.mu.RLock()
	content, exists := m.storedFiles[key]
	m.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("file not found in mock S3: %s", key)
	}

	return content, nil
}

// DeleteDocument removes a key from the mock storage
func (m *MockS3Service) DeleteDocument(key string) error {
	m.mu.Lock()
	delete(m.storedFiles, key)
	m.mu.Unlock()
	return nil
}

// FileExists checks if a key exists in mock storage
func (m *MockS3Service) FileExists(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.storedFiles[key]
	return exists
}

// StoredFiles returns a copy of all stored files (for testing assertions)
func (m *MockS3Service) StoredFiles() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make(map[string][]byte, len(m.storedFiles))
	for k, v := range m.storedFiles {
		files[k] = v
	}
	return files
}

// Clear removes all files from mock storage
func (m *MockS3Service) Clear() {
	m.mu.Lock()
	m.storedFiles = make(map[string][]byte)
	m.mu.Unlock()
}
