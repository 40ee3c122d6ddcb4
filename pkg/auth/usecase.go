package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/artem13815/prepai/pkg/apperr"
	"github.com/artem13815/prepai/pkg/logger"
)

const MinPasswordLength = 6

// AuthUseCase describes registration, login and logout.
type AuthUseCase interface {
	Register(ctx context.Context, name, email, password string) (User, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

type AuthResult struct {
	User  User
	Token string
}

type authService struct {
	repo       UserRepository
	tokens     TokenGenerator
	revoker    TokenRevoker
	bcryptCost int
	log        *logger.Logger
}

// NewAuthService returns the default AuthUseCase. revoker may be nil, in
// which case logout is accepted but tokens stay valid until they expire.
func NewAuthService(repo UserRepository, tokens TokenGenerator, revoker TokenRevoker, bcryptCost int, log *logger.Logger) AuthUseCase {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &authService{repo: repo, tokens: tokens, revoker: revoker, bcryptCost: bcryptCost, log: log.With("service", "auth")}
}

// NormalizeEmail trims and lowercases an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, name, email, password string) (User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	switch {
	case name == "":
		return User{}, apperr.Validation("name is required")
	case email == "":
		return User{}, apperr.Validation("email is required")
	case !validEmail(email):
		return User{}, apperr.Validation("email is invalid")
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return User{}, apperr.Validation("password must be at least %d characters", MinPasswordLength)
	}

	// Best-effort check; the unique index settles races.
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrUserAlreadyExists
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return User{}, apperr.Persistence("lookup user", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			return User{}, err
		}
		return User{}, apperr.Persistence("create user", err)
	}
	s.log.Info("user registered", "user_id", user.ID.String(), "email", user.Email)
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return AuthResult{}, apperr.Validation("email and password are required")
	}
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, apperr.Persistence("lookup user", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if s.revoker == nil || tokenID == "" {
		return nil
	}
	if err := s.revoker.Revoke(ctx, tokenID, expiresAt); err != nil {
		return apperr.Persistence("revoke token", err)
	}
	return nil
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
