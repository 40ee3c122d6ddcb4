package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/artem13815/prepai/pkg/apperr"
)

type memUsers struct {
	mu      sync.Mutex
	byEmail map[string]User
	failGet error
}

func newMemUsers() *memUsers { return &memUsers{byEmail: map[string]User{}} }

func (m *memUsers) Create(_ context.Context, u User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byEmail[u.Email]; ok {
		return ErrUserAlreadyExists
	}
	m.byEmail[u.Email] = u
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet != nil {
		return User{}, m.failGet
	}
	u, ok := m.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (m *memUsers) GetByID(_ context.Context, id uuid.UUID) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

type stubTokens struct{}

func (stubTokens) Generate(_ context.Context, u User) (string, error) { return "token-" + u.ID.String(), nil }

type recordingRevoker struct {
	ids []string
}

func (r *recordingRevoker) Revoke(_ context.Context, id string, _ time.Time) error {
	r.ids = append(r.ids, id)
	return nil
}

func newService(repo UserRepository, rev TokenRevoker) AuthUseCase {
	return NewAuthService(repo, stubTokens{}, rev, bcrypt.MinCost, nil)
}

func TestRegister_NormalizesAndHashes(t *testing.T) {
	repo := newMemUsers()
	svc := newService(repo, nil)

	u, err := svc.Register(context.Background(), "  Ada ", "  Ada@Example.COM ", "secret1")

	require.NoError(t, err)
	assert.Equal(t, "Ada", u.Name)
	assert.Equal(t, "ada@example.com", u.Email)
	assert.NotEqual(t, "secret1", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))
	assert.Equal(t, 0, u.CurrentStreak)
	assert.Nil(t, u.LastActivityAt)
}

func TestRegister_Validation(t *testing.T) {
	svc := newService(newMemUsers(), nil)

	tests := []struct {
		name, userName, email, password, msg string
	}{
		{"missing name", "", "a@b.co", "secret1", "name is required"},
		{"missing email", "Ada", " ", "secret1", "email is required"},
		{"bad email", "Ada", "not-an-email", "secret1", "email is invalid"},
		{"short password", "Ada", "a@b.co", "12345", "password must be at least 6 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.userName, tt.email, tt.password)

			assert.ErrorIs(t, err, apperr.ErrValidation)
			assert.Equal(t, tt.msg, apperr.Message(err))
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMemUsers()
	svc := newService(repo, nil)
	_, err := svc.Register(context.Background(), "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Other", "ADA@example.com", "secret2")

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Len(t, repo.byEmail, 1)
}

func TestRegister_LookupFailure(t *testing.T) {
	repo := newMemUsers()
	repo.failGet = errors.New("db down")

	_, err := newService(repo, nil).Register(context.Background(), "Ada", "ada@example.com", "secret1")

	assert.ErrorIs(t, err, apperr.ErrPersistence)
}

func TestLogin(t *testing.T) {
	repo := newMemUsers()
	svc := newService(repo, nil)
	u, err := svc.Register(context.Background(), "Ada", "ada@example.com", "secret1")
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), "ADA@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, res.User.ID)
	assert.Equal(t, "token-"+u.ID.String(), res.Token)

	_, wrongPass := svc.Login(context.Background(), "ada@example.com", "nope!!")
	_, noUser := svc.Login(context.Background(), "ghost@example.com", "secret1")

	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, noUser, ErrInvalidCredentials)
	assert.Equal(t, apperr.Message(wrongPass), apperr.Message(noUser))
}

func TestLogout(t *testing.T) {
	rev := &recordingRevoker{}
	svc := newService(newMemUsers(), rev)

	require.NoError(t, svc.Logout(context.Background(), "jti-1", time.Now().Add(time.Hour)))
	assert.Equal(t, []string{"jti-1"}, rev.ids)

	assert.NoError(t, newService(newMemUsers(), nil).Logout(context.Background(), "jti-2", time.Now()))
}
