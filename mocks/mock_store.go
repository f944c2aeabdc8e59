package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/ukaji3/jsonsheet-go/pkg/jsonsheet/models"
)

// MockStore is a mock implementation of sheet.Store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Exists() (bool, error) {
	args := m.Called()
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) Load() (*models.Table, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Table), args.Error(1)
}

func (m *MockStore) Save(t *models.Table) error {
	args := m.Called(t)
	return args.Error(0)
}
