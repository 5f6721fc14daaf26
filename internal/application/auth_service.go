package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/morechaitanya606/ucia/internal/domain/entity"
	repo "github.com/morechaitanya606/ucia/internal/domain/repository"
	"github.com/morechaitanya606/ucia/internal/infrastructure/postgres"
	"github.com/morechaitanya606/ucia/pkg/helpers"
)

// AuthService turns an (email, password) pair into a signed bearer token and
// a presented token back into a trusted (user id, role) claim. The signing
// secret and the credential store are injected at construction.
type AuthService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(repo repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, JWT: jwt, Logger: logger}
}

// LoginResult carries the minted token and the redacted user profile.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      entity.Profile
}

// normalizeEmail makes email the case-insensitive identity key.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login validates credentials and mints a token carrying the user's id and
// role. Unknown email and wrong password fail identically so callers cannot
// enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.Repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if !errors.Is(err, postgres.ErrNotFound) && s.Logger != nil {
			s.Logger.WithError(err).Error("credential lookup failed")
		}
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, exp, err := s.JWT.GenerateToken(u.ID, u.Role.String())
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token generation failed")
		}
		return nil, err
	}

	return &LoginResult{Token: token, ExpiresAt: exp, User: u.Profile()}, nil
}

// RegisterInput is the out-of-band registration payload. Only an
// authenticated admin reaches this operation; the route gate enforces that.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Register hashes the password and persists a new user record. The plaintext
// is never stored or logged.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if !entity.Valid(in.Role) {
		return nil, ErrInvalidRole
	}
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Email:        normalizeEmail(in.Email),
		PasswordHash: hash,
		Name:         in.Name,
		Role:         entity.ParseRole(in.Role),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, postgres.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", u.Email).Error("user create failed")
		}
		return nil, err
	}
	return u, nil
}

// TokenClaim is the trusted identity resolved from a verified token.
type TokenClaim struct {
	UserID string
	Role   entity.Role
}

// Verify checks the token's signature and expiry and returns the embedded
// claim. No database lookup: the claim is self-contained and trusted once
// the signature checks out.
func (s *AuthService) Verify(tokenStr string) (*TokenClaim, error) {
	claims, err := s.JWT.ParseToken(tokenStr)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	return &TokenClaim{UserID: claims.UserID, Role: entity.ParseRole(claims.Role)}, nil
}
