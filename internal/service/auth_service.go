package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/spec-kit/loads-service/internal/auth"
	"github.com/spec-kit/loads-service/internal/config"
	"github.com/spec-kit/loads-service/internal/domain"
	"github.com/spec-kit/loads-service/internal/events"
	"github.com/spec-kit/loads-service/internal/repository"
	apperrors "github.com/spec-kit/loads-service/pkg/util"
)

// AuthService coordinates registration, login and password update flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
	dispatcher events.Dispatcher
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
		dispatcher: deps.Dispatcher,
	}
}

// Register creates a new account and returns a token bound to it. The
// pre-insert lookup catches most duplicates; the unique email index turns the
// remaining race into a duplicate-key error mapped to the same conflict.
func (s *AuthService) Register(ctx context.Context, email, password string) (string, time.Time, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return "", time.Time{}, apperrors.NewConflict("email already exists")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", time.Time{}, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return "", time.Time{}, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", time.Time{}, apperrors.NewConflict("email already exists")
		}
		return "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID.Hex())
	if err != nil {
		return "", time.Time{}, err
	}

	s.publish(ctx, events.Event{
		Type:      events.EventUserRegistered,
		SubjectID: user.ID.Hex(),
		Payload:   events.UserRegisteredPayload{Email: user.Email},
	})
	return token, exp, nil
}

// Login authenticates an existing account.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", time.Time{}, apperrors.NewNotFound("user")
		}
		return "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid password")
	}
	return s.tokenMgr.GenerateToken(user.ID.Hex())
}

// UpdatePassword re-hashes the password for the account matching email. The
// caller's token subject must match that account; the original service left
// this mutation ungated, which is closed here.
func (s *AuthService) UpdatePassword(ctx context.Context, subjectID, email, newPassword string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("user")
		}
		return err
	}
	if user.ID.Hex() != subjectID {
		return apperrors.NewUnauthorized("token does not match account")
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}

	modified, err := s.users.ReplacePasswordHash(ctx, email, hash)
	if err != nil {
		return err
	}
	if modified == 0 {
		return apperrors.NewInternalError(errors.New("password update modified no documents"))
	}

	s.publish(ctx, events.Event{
		Type:      events.EventPasswordChanged,
		SubjectID: user.ID.Hex(),
	})
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
