// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"reunion/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when no live session exists for a key,
// including the case where a stored snapshot has passed its expiry window.
var ErrSessionNotFound = errors.New("checkout session not found")

// SessionRepository is the durable store for checkout sessions. Expiry is
// coarse whole-blob: a snapshot written more than the configured TTL ago is
// treated as absent on load.
type SessionRepository interface {
	// Load retrieves the session for a key, or ErrSessionNotFound.
	Load(ctx context.Context, key uuid.UUID) (*entity.CheckoutSession, error)

	// Save persists the whole session snapshot with a fresh write timestamp.
	Save(ctx context.Context, session *entity.CheckoutSession) error

	// Delete purges the stored session. Deleting an absent key is not an error.
	Delete(ctx context.Context, key uuid.UUID) error
}
