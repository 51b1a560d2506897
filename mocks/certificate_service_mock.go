package mocks

import (
	"context"

	"github.com/harshu1705/NSSS-Certificate/models"

	"github.com/stretchr/testify/mock"
)

// CertificateServiceMock is a testify/mock for services.CertificateService.
// We use this to test the HTTP handlers without rendering anything.
type CertificateServiceMock struct{ mock.Mock }

func (m *CertificateServiceMock) Events() []string {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]string)
	}
	return nil
}

func (m *CertificateServiceMock) RequireEvent() bool {
	return m.Called().Bool(0)
}

func (m *CertificateServiceMock) Health() models.Health {
	return m.Called().Get(0).(models.Health)
}

func (m *CertificateServiceMock) Issue(ctx context.Context, req models.CertificateRequest) (*models.Artifact, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*models.Artifact), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CertificateServiceMock) Download(ctx context.Context, name, event string) (*models.Artifact, error) {
	args := m.Called(ctx, name, event)
	if v := args.Get(0); v != nil {
		return v.(*models.Artifact), args.Error(1)
	}
	return nil, args.Error(1)
}
