// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"reunion/config"
	"reunion/internal/domain/entity"
	"reunion/internal/domain/repository"
	"reunion/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB, cfg *config.Config) repository.SessionRepository {
	ttl := 24 * time.Hour
	if cfg.Session != nil && cfg.Session.TTL > 0 {
		ttl = cfg.Session.TTL
	}

	return &sessionRepository{
		db:  db,
		ttl: ttl,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Load retrieves the session for a key. A snapshot older than the TTL is
// purged and reported as absent, so the next read behaves as a cold start.
func (repo *sessionRepository) Load(ctx context.Context, key uuid.UUID) (*entity.CheckoutSession, error) {
	var sessionM model.CheckoutSessionModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to load checkout session")
	}

	if sessionM.Expired(repo.now(), repo.ttl) {
		if err := repo.Delete(ctx, key); err != nil {
			return nil, err
		}

		return nil, repository.ErrSessionNotFound
	}

	session, err := sessionM.ToSessionDomain()
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode checkout session")
	}

	return session, nil
}

// Save upserts the whole session snapshot with a fresh write timestamp.
func (repo *sessionRepository) Save(ctx context.Context, session *entity.CheckoutSession) error {
	sessionM, err := model.FromSessionDomain(session, repo.now())
	if err != nil {
		return errors.Wrap(err, "failed to encode checkout session")
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"snapshot", "written_at", "updated_at"}),
		}).
		Create(sessionM).Error; err != nil {
		return errors.Wrap(err, "failed to save checkout session")
	}

	return nil
}

// Delete purges the stored session. Deleting an absent key is not an error.
func (repo *sessionRepository) Delete(ctx context.Context, key uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		Delete(&model.CheckoutSessionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete checkout session")
	}

	return nil
}
