package impl

import (
	"context"
	"log/slog"
	"sync"

	"reunion/internal/domain/entity"
	domainerrors "reunion/internal/domain/errors"
	"reunion/internal/domain/repository"
	"reunion/internal/domain/service"
	"reunion/internal/usecase"
	"reunion/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// checkoutService implements the CheckoutUsecase interface. The final save
// is a saga of sequential stages with no cross-stage transaction: a fatal
// stage failure stops the run and leaves the session intact for retry, and
// already-persisted records are deliberately not rolled back.
//
// Order totals are client-computed and trusted as sent; the backend keeps
// its own price of record for order lines but never re-derives the total.
type checkoutService struct {
	sessions repository.SessionRepository
	gateway  service.RegistrationGateway
	qrcode   service.QRCodeService
	logger   *slog.Logger

	// inFlight rejects a second Submit for the same key while one is running.
	inFlight sync.Map
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	sessions repository.SessionRepository,
	gateway service.RegistrationGateway,
	qrcode service.QRCodeService,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		sessions: sessions,
		gateway:  gateway,
		qrcode:   qrcode,
		logger:   logger,
	}
}

// checkoutStage is one sequential unit of the saga. A non-fatal stage may
// fail without flipping the overall outcome. Compensation is intentionally
// absent: partial persistence is an accepted outcome, not an error state.
type checkoutStage struct {
	name  string
	fatal bool
	skip  func() bool
	run   func(ctx context.Context) error
}

// Submit persists the whole session upstream, stage by stage.
func (srv *checkoutService) Submit(ctx context.Context, key uuid.UUID) (*usecase.CheckoutResult, error) {
	if _, busy := srv.inFlight.LoadOrStore(key, struct{}{}); busy {
		return nil, domainerrors.ErrCheckoutInProgress
	}
	defer srv.inFlight.Delete(key)

	session, err := srv.sessions.Load(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrNothingToSubmit
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	srv.logger.Info("Starting checkout",
		"key", key,
		"cartLines", len(session.Cart),
		"donation", session.Form.DonationAmount,
		"hasProof", session.PaymentProof != nil,
	)

	result := &usecase.CheckoutResult{}
	var donationID, orderID int64

	stages := []checkoutStage{
		{
			name:  "ticket-qr",
			fatal: true,
			run: func(ctx context.Context) error {
				url, err := srv.ensureTicketQR(ctx, session)
				if err != nil {
					return err
				}
				result.TicketQRURL = url

				return nil
			},
		},
		{
			name:  "attendee",
			fatal: true,
			run: func(ctx context.Context) error {
				id, err := srv.gateway.CreateAttendee(ctx, attendeeRecord(session))
				if err != nil {
					return err
				}
				session.Form.AttendeeID = &id
				result.AttendeeID = id

				return nil
			},
		},
		{
			name:  "donation",
			fatal: true,
			skip:  func() bool { return session.Form.DonationAmount <= 0 },
			run: func(ctx context.Context) error {
				id, err := srv.gateway.CreateDonation(ctx, result.AttendeeID, session.Form.DonationAmount)
				if err != nil {
					return err
				}
				donationID = id
				result.DonationID = &donationID

				return nil
			},
		},
		{
			name:  "order",
			fatal: true,
			skip:  func() bool { return len(session.Cart) == 0 },
			run: func(ctx context.Context) error {
				id, err := srv.gateway.CreateOrder(ctx, orderRecord(session, result.AttendeeID))
				if err != nil {
					return err
				}
				orderID = id
				result.OrderID = &orderID

				return nil
			},
		},
		{
			name:  "payment-proof",
			fatal: false,
			skip:  func() bool { return session.PaymentProof == nil },
			run: func(ctx context.Context) error {
				_, err := srv.gateway.UploadPaymentProof(ctx, proofUpload(session, result))
				if err != nil {
					return err
				}
				result.ProofUploaded = true

				return nil
			},
		},
	}

	for _, stage := range stages {
		if stage.skip != nil && stage.skip() {
			continue
		}

		if err := stage.run(ctx); err != nil {
			if stage.fatal {
				srv.logger.Error("Checkout stage failed",
					"key", key,
					"stage", stage.name,
					"error", err,
				)

				return nil, domainerrors.NewCheckoutStageError(stage.name, err)
			}

			// The attendee, donation and order records are already durable;
			// a lost proof upload is reported but does not fail the run.
			srv.logger.Error("Payment proof upload failed, continuing",
				"key", key,
				"attendeeId", result.AttendeeID,
				"error", err,
			)
		}
	}

	if err := srv.sessions.Delete(ctx, key); err != nil {
		srv.logger.Error("Checkout succeeded but session cleanup failed",
			"key", key,
			"error", err,
		)
	}

	srv.logger.Info("Checkout completed",
		"key", key,
		"attendeeId", result.AttendeeID,
		"proofUploaded", result.ProofUploaded,
	)

	return result, nil
}

// CheckDuplicate reports whether the email or phone is already registered.
func (srv *checkoutService) CheckDuplicate(ctx context.Context, input *usecase.CheckDuplicateInput) (bool, error) {
	exists, err := srv.gateway.CheckDuplicate(ctx, input.Email, input.Phone)
	if err != nil {
		return false, errors.Wrap(err, "failed to check duplicate")
	}

	return exists, nil
}

// ensureTicketQR is the only idempotency guard across retried runs: the QR
// is generated and uploaded once per email, keyed by a digest of the email,
// and the cached URL is persisted in the session before any later stage runs.
func (srv *checkoutService) ensureTicketQR(ctx context.Context, session *entity.CheckoutSession) (string, error) {
	token := util.ChecksumHex([]byte(session.Form.Email))
	if session.TicketQR != nil && session.TicketQR.Token == token && session.TicketQR.URL != "" {
		srv.logger.Debug("Reusing cached ticket QR", "key", session.Key)

		return session.TicketQR.URL, nil
	}

	png, err := srv.qrcode.GenerateTicketQR(session.Form.Email)
	if err != nil {
		return "", errors.Wrap(err, "failed to render ticket QR")
	}

	url, err := srv.gateway.UploadTicketQR(ctx, png, session.Form.Email)
	if err != nil {
		return "", errors.Wrap(err, "failed to upload ticket QR")
	}

	session.TicketQR = &entity.TicketQR{Token: token, URL: url}
	if err := srv.sessions.Save(ctx, session); err != nil {
		return "", errors.Wrap(err, "failed to cache ticket QR")
	}

	return url, nil
}

func attendeeRecord(session *entity.CheckoutSession) service.AttendeeRecord {
	record := service.AttendeeRecord{
		FullName:       session.Form.FullName,
		Email:          session.Form.Email,
		Phone:          session.Form.Phone,
		Class:          session.Form.Class,
		Occupation:     session.Form.Occupation,
		Workplace:      session.Form.Workplace,
		Address:        session.Form.Address,
		Country:        session.Form.Country,
		Message:        session.Form.Message,
		DonationAmount: session.Form.DonationAmount,
	}
	if session.TicketQR != nil {
		record.TicketQRURL = session.TicketQR.URL
	}

	return record
}

func orderRecord(session *entity.CheckoutSession, attendeeID int64) service.OrderRecord {
	items := make([]service.OrderItem, 0, len(session.Cart))
	for _, line := range session.Cart {
		items = append(items, service.OrderItem{
			MerchandiseID: line.MerchandiseID,
			Quantity:      line.Quantity,
		})
	}

	return service.OrderRecord{
		AttendeeID: attendeeID,
		Items:      items,
		Amount:     session.Cart.Total(),
	}
}

func proofUpload(session *entity.CheckoutSession, result *usecase.CheckoutResult) service.PaymentProofUpload {
	return service.PaymentProofUpload{
		Data:        session.PaymentProof.Data,
		FileName:    session.PaymentProof.FileName,
		ContentType: session.PaymentProof.ContentType,
		AttendeeID:  result.AttendeeID,
		OrderID:     result.OrderID,
		DonationID:  result.DonationID,
		Amount:      session.Cart.Total() + session.Form.DonationAmount,
	}
}
