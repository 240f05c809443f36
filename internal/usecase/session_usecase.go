// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"reunion/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase owns every mutation of the checkout session. Each mutation
// persists the whole snapshot before returning; the returned session is the
// state after the mutation and any cart repair.
type SessionUsecase interface {
	Get(ctx context.Context, key uuid.UUID) (*entity.CheckoutSession, error)
	SetStep(ctx context.Context, key uuid.UUID, step int) (*entity.CheckoutSession, error)
	UpdateForm(ctx context.Context, key uuid.UUID, input *UpdateFormInput) (*entity.CheckoutSession, error)
	AddCartItem(ctx context.Context, key uuid.UUID, input *AddCartItemInput) (*entity.CheckoutSession, error)
	ReplaceCart(ctx context.Context, key uuid.UUID, input *ReplaceCartInput) (*entity.CheckoutSession, error)
	IncrementCartLine(ctx context.Context, key uuid.UUID, index int) (*entity.CheckoutSession, error)
	DecrementCartLine(ctx context.Context, key uuid.UUID, index int) (*entity.CheckoutSession, error)
	RemoveCartLine(ctx context.Context, key uuid.UUID, index int) (*entity.CheckoutSession, error)
	ConfirmNameTag(ctx context.Context, key uuid.UUID, input *ConfirmNameTagInput) (*entity.CheckoutSession, error)
	RemoveNameTag(ctx context.Context, key uuid.UUID, slot int) (*entity.CheckoutSession, error)
	SetPaymentProof(ctx context.Context, key uuid.UUID, input *PaymentProofInput) (*entity.CheckoutSession, error)
	ClearPaymentProof(ctx context.Context, key uuid.UUID) (*entity.CheckoutSession, error)
	Reset(ctx context.Context, key uuid.UUID) (*entity.CheckoutSession, error)
}

// --- Input DTOs ---

// UpdateFormInput shallow-merges into the registration form; nil fields are
// left untouched.
type UpdateFormInput struct {
	FullName       *string `json:"fullName,omitempty"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone          *string `json:"phone,omitempty"`
	Class          *string `json:"class,omitempty"`
	Occupation     *string `json:"occupation,omitempty"`
	Workplace      *string `json:"workplace,omitempty"`
	Address        *string `json:"address,omitempty"`
	Country        *string `json:"country,omitempty"`
	Message        *string `json:"message,omitempty"`
	DonationAmount *int64  `json:"donationAmount,omitempty" validate:"omitempty,min=0"`
}

// AddCartItemInput defines the data required to add a merchandise line.
type AddCartItemInput struct {
	MerchandiseID int64  `json:"merchandiseId" validate:"required"`
	Kind          string `json:"kind" validate:"required,oneof=tshirt other"`
	Name          string `json:"name" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,min=1"`
	UnitPrice     int64  `json:"unitPrice" validate:"min=0"`
	Gender        string `json:"gender,omitempty"`
	Size          string `json:"size,omitempty"`
}

// ReplaceCartInput swaps the whole cart in one write, used when the client
// reconciles several edits at once. The replacement is still repaired.
type ReplaceCartInput struct {
	Lines []entity.CartLine `json:"lines" validate:"required"`
}

// ConfirmNameTagInput confirms a transient name-tag slot into the cart.
type ConfirmNameTagInput struct {
	Slot          int    `json:"slot" validate:"min=0"`
	MerchandiseID int64  `json:"merchandiseId" validate:"required"`
	Name          string `json:"name" validate:"required"`
	UnitPrice     int64  `json:"unitPrice" validate:"min=0"`
	DisplayName   string `json:"displayName" validate:"required"`
	DisplayClass  string `json:"displayClass" validate:"required"`
}

// PaymentProofInput replaces the held payment proof.
type PaymentProofInput struct {
	Data        []byte
	FileName    string
	ContentType string
}
