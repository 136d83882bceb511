package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/identity"
	"spendwise/internal/logger"
	"spendwise/internal/models"
	"spendwise/internal/uuid"
)

// DefaultSessionTTL is the lifetime of a session created by an exchange.
const DefaultSessionTTL = 7 * 24 * time.Hour

// sessionService handles sign-in exchange, session validation and logout.
type sessionService struct {
	db         *gorm.DB
	identity   identity.Exchanger
	categories CategoryServicer
	ttl        time.Duration
	now        func() time.Time
}

// SessionOption customizes a session service.
type SessionOption func(*sessionService)

// WithSessionTTL overrides the session lifetime.
func WithSessionTTL(ttl time.Duration) SessionOption {
	return func(s *sessionService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock overrides the wall clock used for expiry.
func WithClock(now func() time.Time) SessionOption {
	return func(s *sessionService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSessionService creates a new SessionServicer.
func NewSessionService(db *gorm.DB, exchanger identity.Exchanger, categories CategoryServicer, opts ...SessionOption) SessionServicer {
	s := &sessionService{
		db:         db,
		identity:   exchanger,
		categories: categories,
		ttl:        DefaultSessionTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExchangeSession resolves sessionID with the identity provider, merges the
// user on email and stores a new session for the provider's token.
func (s *sessionService) ExchangeSession(ctx context.Context, sessionID string) (*models.User, *models.Session, error) {
	if sessionID == "" {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "session_id required")
	}

	profile, err := s.identity.Exchange(ctx, sessionID)
	if err != nil {
		if errors.Is(err, identity.ErrRejected) {
			return nil, nil, apperrors.Wrap(apperrors.ErrUpstreamAuth, err)
		}
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	token := profile.SessionToken
	if token == "" {
		token = uuid.NewToken()
	}

	var user models.User
	var session models.Session
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("email = ?", profile.Email).First(&user).Error
		switch {
		case err == nil:
			user.Name = profile.Name
			user.Picture = profile.Picture
			if err := tx.Model(&user).Select("name", "picture").Updates(&user).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = models.User{Email: profile.Email, Name: profile.Name, Picture: profile.Picture}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			if err := s.categories.SeedPredefined(tx, user.UserID); err != nil {
				return err
			}
		default:
			return err
		}

		session = models.Session{
			SessionToken: token,
			UserID:       user.UserID,
			ExpiresAt:    s.now().Add(s.ttl),
		}
		return tx.Create(&session).Error
	})
	if err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infow("session exchanged", "user_id", user.UserID)
	return &user, &session, nil
}

// Authenticate maps a session token to its user id. The most recent session
// stored for the token decides.
func (s *sessionService) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", apperrors.ErrUnauthenticated
	}

	var session models.Session
	if err := s.db.WithContext(ctx).Where("session_token = ?", token).Order("id DESC").First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrInvalidSession
		}
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if session.ExpiredAt(s.now()) {
		return "", apperrors.ErrSessionExpired
	}
	return session.UserID, nil
}

// Logout deletes every session stored for token. A missing token or an
// unknown one is not an error.
func (s *sessionService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.db.WithContext(ctx).Where("session_token = ?", token).Delete(&models.Session{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetUser retrieves a user by public id
func (s *sessionService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}
