package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	localUserID    = "userId"
	localTokenID   = "tokenId"
	localExpiresAt = "tokenExpiresAt"
)

// Denylist reports whether a token id was revoked by logout.
type Denylist interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type Middleware struct {
	tokens   *Generator
	denylist Denylist
}

// NewMiddleware builds the auth gate. denylist may be nil.
func NewMiddleware(tokens *Generator, denylist Denylist) *Middleware {
	return &Middleware{tokens: tokens, denylist: denylist}
}

// RequireAuth rejects requests without a valid token.
func (m *Middleware) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if strings.TrimSpace(header) == "" {
			return unauthorized(c, "missing Authorization header")
		}
		if err := m.authenticate(c, header); err != nil {
			return unauthorized(c, err.Error())
		}
		return c.Next()
	}
}

// OptionalAuth lets guests through but still rejects a token that is present and invalid.
func (m *Middleware) OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if strings.TrimSpace(header) == "" {
			return c.Next()
		}
		if err := m.authenticate(c, header); err != nil {
			return unauthorized(c, err.Error())
		}
		return c.Next()
	}
}

var errRevoked = errors.New("token has been revoked")

func (m *Middleware) authenticate(c *fiber.Ctx, header string) error {
	tokenStr := bearerToken(header)
	if tokenStr == "" {
		return errors.New("empty token")
	}
	claims, err := m.tokens.Parse(tokenStr)
	if err != nil {
		return ErrInvalidToken
	}
	if m.denylist != nil && claims.ID != "" {
		revoked, err := m.denylist.IsRevoked(c.UserContext(), claims.ID)
		if err != nil || revoked {
			return errRevoked
		}
	}
	c.Locals(localUserID, claims.Subject)
	c.Locals(localTokenID, claims.ID)
	if claims.ExpiresAt != nil {
		c.Locals(localExpiresAt, claims.ExpiresAt.Time)
	}
	return nil
}

// Supports both "Bearer <token>" and a bare token.
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return header
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": msg, "message": msg})
}

// UserID returns the authenticated user, or false for guests.
func UserID(c *fiber.Ctx) (uuid.UUID, bool) {
	s, ok := c.Locals(localUserID).(string)
	if !ok || s == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// TokenID returns the jti and expiry of the token that authenticated the request.
func TokenID(c *fiber.Ctx) (string, time.Time) {
	id, _ := c.Locals(localTokenID).(string)
	exp, _ := c.Locals(localExpiresAt).(time.Time)
	return id, exp
}
