package mocks

import "github.com/sdlpal/scripts/internal/makemessage/models"

// MockResourceLoader はResourceLoaderのモック実装です
type MockResourceLoader struct {
	Resources models.Resources
	Error     error
	CallCount int
	LastDir   string
}

// Load はモック実装です
func (m *MockResourceLoader) Load(dir string) (models.Resources, error) {
	m.CallCount++
	m.LastDir = dir
	if m.Error != nil {
		return models.Resources{}, m.Error
	}
	return m.Resources, nil
}
