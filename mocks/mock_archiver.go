package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockArchiver is a mock implementation of archive.Archiver.
type MockArchiver struct {
	mock.Mock
}

func (m *MockArchiver) Archive(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}
