package impl

import (
	"io"
	"log/slog"
	"testing"

	mockRepo "reunion/internal/mocks/repository"
	mockService "reunion/internal/mocks/service"
	"reunion/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptrOf[T any](v T) *T {
	return &v
}

type sessionServiceFixtures struct {
	service  usecase.SessionUsecase
	sessions *mockRepo.MockSessionRepository
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	sessions := mockRepo.NewMockSessionRepository(t)
	service := NewSessionService(sessions, newDiscardLogger())

	return sessionServiceFixtures{
		service:  service,
		sessions: sessions,
	}
}

type checkoutServiceFixtures struct {
	service  usecase.CheckoutUsecase
	sessions *mockRepo.MockSessionRepository
	gateway  *mockService.MockRegistrationGateway
	qrcode   *mockService.MockQRCodeService
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	sessions := mockRepo.NewMockSessionRepository(t)
	gateway := mockService.NewMockRegistrationGateway(t)
	qrcode := mockService.NewMockQRCodeService(t)
	service := NewCheckoutService(sessions, gateway, qrcode, newDiscardLogger())

	return checkoutServiceFixtures{
		service:  service,
		sessions: sessions,
		gateway:  gateway,
		qrcode:   qrcode,
	}
}
