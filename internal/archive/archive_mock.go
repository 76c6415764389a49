package archive

import (
	"time"

	"github.com/huangsam/standings/internal/contract"
	"github.com/huangsam/standings/schema"
	"github.com/stretchr/testify/mock"
)

// MockArchiveStore is a mock implementation of ArchiveStore for testing.
type MockArchiveStore struct {
	mock.Mock
}

var _ contract.ArchiveStore = &MockArchiveStore{} // Compile-time check

// PushSnapshot implements the ArchiveStore interface.
func (m *MockArchiveStore) PushSnapshot(year int, league schema.League, rows []schema.FlatRow, pushedAt time.Time) error {
	args := m.Called(year, league, rows, pushedAt)
	return args.Error(0)
}

// GetRows implements the ArchiveStore interface.
func (m *MockArchiveStore) GetRows(year int, league schema.League) ([]schema.FlatRow, error) {
	args := m.Called(year, league)
	rows, _ := args.Get(0).([]schema.FlatRow)
	return rows, args.Error(1)
}

// GetStatus implements the ArchiveStore interface.
func (m *MockArchiveStore) GetStatus() (schema.ArchiveStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.ArchiveStatus), args.Error(1)
}

// Clear implements the ArchiveStore interface.
func (m *MockArchiveStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// Close implements the ArchiveStore interface.
func (m *MockArchiveStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
