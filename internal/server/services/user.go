// Package services contains server-side business logic. This file implements
// UserService, which handles registration and login and issues session
// tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/bookings/internal/common"
	"github.com/dmitrijs2005/bookings/internal/logging"
	"github.com/dmitrijs2005/bookings/internal/server/auth"
	"github.com/dmitrijs2005/bookings/internal/server/models"
	"github.com/dmitrijs2005/bookings/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/bookings/internal/server/validator"
)

// AuthResult is returned by a successful Register or Login. User never
// carries the password hash.
type AuthResult struct {
	User  *models.User
	Token string
}

// RegisterInput holds the registration form.
type RegisterInput struct {
	UserName        string
	Email           string
	Password        string
	ConfirmPassword string
	PhoneNumber     string
}

// UserService provides authentication-related operations:
// - Register: create users
// - Login: verify credentials and mint tokens
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	issuer      *auth.Issuer
	hasher      auth.PasswordHasher
	logger      logging.Logger
	now         func() time.Time
}

// NewUserService constructs a UserService.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, issuer *auth.Issuer, hasher auth.PasswordHasher, l logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		issuer:      issuer,
		hasher:      hasher,
		logger:      l.With("module", "user_service"),
		now:         time.Now,
	}
}

// Register creates a principal and returns it together with a fresh token.
//
// The username is checked for availability before the input is validated,
// so a taken username is reported even when other fields are invalid.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	repo := s.repomanager.Users(s.db)

	_, err := repo.GetUserByLogin(ctx, in.UserName)
	switch {
	case err == nil:
		return nil, common.DuplicateUsername()
	case !errors.Is(err, common.ErrorNotFound):
		s.logger.Error(ctx, "username lookup failed", "error", err)
		return nil, common.Upstream("failed to look up user", err)
	}

	if errs, ok := validator.ValidateRegisterInput(in.UserName, in.Email, in.Password, in.ConfirmPassword); !ok {
		return nil, common.InvalidInput(errs)
	}

	// Validation rejects empty passwords; the guard keeps Hash off the empty string anyway.
	var hash string
	if in.Password != "" {
		hash, err = s.hasher.Hash(in.Password)
		if err != nil {
			s.logger.Error(ctx, "password hashing failed", "error", err)
			return nil, common.Upstream("failed to hash password", err)
		}
	}

	user, err := repo.Create(ctx, &models.User{
		UserName:          in.UserName,
		Email:             in.Email,
		PasswordHash:      hash,
		IsAdmin:           false,
		PhoneNumber:       in.PhoneNumber,
		CreatedAt:         s.now().UTC(),
		BookingReferences: []string{},
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.DuplicateUsername()
		}
		s.logger.Error(ctx, "user insert failed", "error", err)
		return nil, common.Upstream("failed to create user", err)
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return nil, common.Upstream("failed to issue token", err)
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID, "username", user.UserName)

	return &AuthResult{User: user.Public(), Token: token}, nil
}

// Login verifies credentials and returns the principal with a fresh token.
func (s *UserService) Login(ctx context.Context, userName, password string) (*AuthResult, error) {
	if errs, ok := validator.ValidateLoginInput(userName, password); !ok {
		return nil, common.InvalidInput(errs)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByLogin(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.UserNotFound()
		}
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return nil, common.Upstream("failed to look up user", err)
	}

	match, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		s.logger.Error(ctx, "password verification failed", "user_id", user.ID, "error", err)
		return nil, common.Upstream("failed to verify password", err)
	}
	if !match {
		s.logger.Info(ctx, "wrong credentials", "username", userName)
		return nil, common.WrongCredentials()
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return nil, common.Upstream("failed to issue token", err)
	}

	return &AuthResult{User: user.Public(), Token: token}, nil
}
