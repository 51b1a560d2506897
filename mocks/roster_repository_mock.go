package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// RosterRepositoryMock is a testify/mock for repositories.RosterRepository.
type RosterRepositoryMock struct{ mock.Mock }

func (m *RosterRepositoryMock) Names(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}
