// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"reunion/internal/domain/entity"
	"reunion/internal/domain/repository"
	"reunion/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	sessions repository.SessionRepository
	logger   *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	sessions repository.SessionRepository,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		sessions: sessions,
		logger:   logger,
	}
}

// Get returns the live session, or a fresh one when nothing is stored or the
// stored snapshot has expired (cold start).
func (srv *sessionService) Get(ctx context.Context, key uuid.UUID) (*entity.CheckoutSession, error) {
	return srv.loadOrNew(ctx, key)
}

// SetStep records the current step. Step legality is the caller's concern.
func (srv *sessionService) SetStep(ctx context.Context, key uuid.UUID, step int) (*entity.CheckoutSession, error) {
	return srv.mutate(ctx, key, func(session *entity.CheckoutSession) error {
		session.Step = step

		return nil
	})
}

// UpdateForm shallow-merges the provided fields into the registration form.
func (srv *sessionService) UpdateForm(ctx context.Context, key uuid.UUID, input *usecase.UpdateFormInput) (*entity.CheckoutSession, error) {
	return srv.mutate(ctx, key, func(session *entity.CheckoutSession) error {
		form := &session.Form
		if input.FullName != nil {
			form.FullName = *input.FullName
		}
		if input.Email != nil {
			form.Email = *input.Email
		}
		if input.Phone != nil {
			form.Phone = *input.Phone
		}
		if input.Class != nil {
			form.Class = *input.Class
		}
		if input.Occupation != nil {
			form.Occupation = *input.Occupation
		}
		if input.Workplace != nil {
			form.Workplace = *input.Workplace
		}
		if input.Address != nil {
			form.Address = *input.Address
		}
		if input.Country != nil {
			form.Country = *input.Country
		}
		if input.Message != nil {
			form.Message = *input.Message
		}
		if input.DonationAmount != nil {
			form.DonationAmount = *input.DonationAmount
		}

		return nil
	})
}

// AddCartItem adds or merges a merchandise line.
func (srv *sessionService) AddCartItem(ctx context.Context, key uuid.UUID, input *usecase.AddCartItemInput) (*entity.CheckoutSession, error) {
	return srv.mutate(ctx, key, func(session *entity.CheckoutSession) error {
		cart, err := session.Cart.AddItem(entity.CartLine{
			MerchandiseID: input.MerchandiseID,
			Kind:          entity.MerchandiseKind(input.Kind),
			Name:          input.Name,
			Quantity:      input.Quantity,
			UnitPrice:     input.UnitPrice,
			Gender:        input.Gender,
			Size:          input.Size,
		})
		if err != nil {
			return err
		}
		session.Cart = cart

		return nil
	})
}

// ReplaceCart swaps the whole cart wholesale, still subject to repair.
func (srv *sessionService) ReplaceCart(ctx context.Context, key uuid.UUID, input *usecase.ReplaceCartInput) (*entity.CheckoutSession, error) {
	return srv.mutate(ctx, key, func(session *entity.CheckoutSession) error {
		session.Cart = session.Cart.Replace(input.Lines)

		return nil
	})
}

// IncrementCartLine raises the quantity of one line.
func (srv *sessionService) IncrementCartLine(ctx context.Context, key uuid.UUID, index int) (*entity.CheckoutSession, error) {
	return srv.mutateCart(ctx, key, func(cart entity.Cart) (entity.Cart, error) {
		return cart.IncrementAt(index)
	})
}

// DecrementCartLine lowers the quantity of one line; excess name tags are
// removed by the cart's own repair.
func (srv *sessionService) DecrementCartLine(ctx context.Context, key uuid.UUID, index int) (*entity.CheckoutSession, error) {
	return srv.mutateCart(ctx, key, func(cart entity.Cart) (entity.Cart, error) {
		return cart.DecrementAt(index)
	})
}

// RemoveCartLine removes one line entirely.
func (srv *sessionService) RemoveCartLine(ctx context.Context, key uuid.UUID, index int) (*entity.CheckoutSession, error) {
	return srv.mutateCart(ctx, key, func(cart entity.Cart) (entity.Cart, error) {
		return cart.RemoveAt(index)
	})
}

// ConfirmNameTag turns a transient slot input into a cart line.
func (srv *sessionService) ConfirmNameTag(ctx context.Context, key uuid.UUID, input *usecase.ConfirmNameTagInput) (*entity.CheckoutSession, error) {
	return srv.mutateCart(ctx, key, func(cart entity.Cart) (entity.Cart, error) {
		return cart.ConfirmNameTag(input.Slot, entity.CartLine{
			MerchandiseID: input.MerchandiseID,
			Name:          input.Name,
			UnitPrice:     input.UnitPrice,
			NameTag: &entity.NameTagInfo{
				DisplayName:  input.DisplayName,
				DisplayClass: input.DisplayClass,
			},
		})
	})
}

// RemoveNameTag removes the name-tag line addressed by slot.
func (srv *sessionService) RemoveNameTag(ctx context.Context, key uuid.UUID, slot int) (*entity.CheckoutSession, error) {
	return srv.mutateCart(ctx, key, func(cart entity.Cart) (entity.Cart, error) {
		return cart.RemoveNameTag(slot)
	})
}

// SetPaymentProof validates and replaces the held payment proof.
func (srv *sessionService) SetPaymentProof(ctx context.Context, key uuid.UUID, input *usecase.PaymentProofInput) (*entity.CheckoutSession, error) {
	return srv.mutate(ctx, key, func(session *entity.CheckoutSession) error {
		artifact, err := entity.NewPaymentProofArtifact(input.Data, input.FileName, input.ContentType, time.Now().UTC())
		if err != nil {
			return err
		}
		session.PaymentProof = artifact

		return nil
	})
}

// ClearPaymentProof drops the held payment proof without touching the form.
func (srv *sessionService) ClearPaymentProof(ctx context.Context, key uuid.UUID) (*entity.CheckoutSession, error) {
	return srv.mutate(ctx, key, func(session *entity.CheckoutSession) error {
		session.PaymentProof = nil

		return nil
	})
}

// Reset restores the documented initial defaults and purges durable storage.
func (srv *sessionService) Reset(ctx context.Context, key uuid.UUID) (*entity.CheckoutSession, error) {
	srv.logger.Info("Resetting checkout session", "key", key)

	if err := srv.sessions.Delete(ctx, key); err != nil {
		return nil, errors.Wrap(err, "failed to reset session")
	}

	return entity.NewCheckoutSession(key), nil
}

func (srv *sessionService) loadOrNew(ctx context.Context, key uuid.UUID) (*entity.CheckoutSession, error) {
	session, err := srv.sessions.Load(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return entity.NewCheckoutSession(key), nil
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	return session, nil
}

func (srv *sessionService) mutate(ctx context.Context, key uuid.UUID, fn func(*entity.CheckoutSession) error) (*entity.CheckoutSession, error) {
	session, err := srv.loadOrNew(ctx, key)
	if err != nil {
		return nil, err
	}

	if err := fn(session); err != nil {
		return nil, err
	}

	if err := srv.sessions.Save(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to save session")
	}

	return session, nil
}

func (srv *sessionService) mutateCart(ctx context.Context, key uuid.UUID, fn func(entity.Cart) (entity.Cart, error)) (*entity.CheckoutSession, error) {
	return srv.mutate(ctx, key, func(session *entity.CheckoutSession) error {
		cart, err := fn(session.Cart)
		if err != nil {
			return err
		}
		session.Cart = cart

		return nil
	})
}
