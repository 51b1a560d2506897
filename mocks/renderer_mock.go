package mocks

import (
	"context"

	"github.com/harshu1705/NSSS-Certificate/models"

	"github.com/stretchr/testify/mock"
)

// RendererMock is a testify/mock for services.Renderer.
// AssertNotCalled on it proves a rejected submission never loaded the template.
type RendererMock struct{ mock.Mock }

func (m *RendererMock) Render(ctx context.Context, name, event string) (*models.Artifact, error) {
	args := m.Called(ctx, name, event)
	if v := args.Get(0); v != nil {
		return v.(*models.Artifact), args.Error(1)
	}
	return nil, args.Error(1)
}
