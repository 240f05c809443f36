// Package model holds the GORM-specific structs for the persistence layer.
package model

import (
	"encoding/json"
	"time"

	"reunion/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

// CheckoutSessionModel is the GORM struct for the 'checkout_sessions' table.
// The whole session is stored as one JSON snapshot; WrittenAt drives the
// coarse whole-blob expiry check on load.
type CheckoutSessionModel struct {
	Key       uuid.UUID      `gorm:"type:uuid;primary_key"`
	Snapshot  datatypes.JSON `gorm:"not null"`
	WrittenAt time.Time      `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CheckoutSessionModel) TableName() string {
	return "checkout_sessions"
}

// Expired reports whether the snapshot has passed its expiry window.
func (m *CheckoutSessionModel) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(m.WrittenAt) > ttl
}

// FromSessionDomain converts a domain session to its stored form.
func FromSessionDomain(session *entity.CheckoutSession, writtenAt time.Time) (*CheckoutSessionModel, error) {
	if session == nil {
		return nil, errors.New("nil session")
	}

	snapshot, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrap(err, "marshal session snapshot")
	}

	return &CheckoutSessionModel{
		Key:       session.Key,
		Snapshot:  datatypes.JSON(snapshot),
		WrittenAt: writtenAt,
	}, nil
}

// ToSessionDomain converts a stored snapshot back to the domain session.
func (m *CheckoutSessionModel) ToSessionDomain() (*entity.CheckoutSession, error) {
	var session entity.CheckoutSession
	if err := json.Unmarshal(m.Snapshot, &session); err != nil {
		return nil, errors.Wrap(err, "unmarshal session snapshot")
	}

	return &session, nil
}
