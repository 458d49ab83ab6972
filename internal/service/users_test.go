package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"skillport-api/internal/apperr"
	"skillport-api/internal/models"
	"skillport-api/internal/storage"
	"skillport-api/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type fakeLimiter struct {
	mu       sync.Mutex
	failures map[string]int64
}

func newFakeLimiter() *fakeLimiter {
	return &fakeLimiter{failures: make(map[string]int64)}
}

func (l *fakeLimiter) RegisterLoginFailure(ctx context.Context, email string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failures[email]++
	return l.failures[email], nil
}

func (l *fakeLimiter) LoginFailures(ctx context.Context, email string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.failures[email], nil
}

func (l *fakeLimiter) ResetLoginFailures(ctx context.Context, email string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.failures, email)
	return nil
}

func str(s string) *string { return &s }

func boolean(b bool) *bool { return &b }

func newUserService(t *testing.T, limiter LoginLimiter) (*UserService, *memory.Store) {
	t.Helper()
	store := memory.New()
	return NewUserService(store, limiter, bcrypt.MinCost, 3, zap.NewNop()), store
}

func TestUserService_Signup(t *testing.T) {
	ctx := context.Background()
	svc, store := newUserService(t, nil)

	user, err := svc.Signup(ctx, UserFields{
		Email:     str("  A@X.com "),
		Password:  str("p"),
		FirstName: str("Ada"),
	})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, models.DefaultLanguage, user.Language)
	assert.True(t, user.NotifMessages)
	assert.NotEqual(t, "p", user.Password)

	stored, err := store.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, user.ID, stored.ID)

	_, err = svc.Signup(ctx, UserFields{Email: str("a@X.COM"), Password: str("q")})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Equal(t, "User already exists with this email", apperr.PublicMessage(err))

	count, err := store.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUserService_SignupValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t, nil)

	tests := []struct {
		name string
		in   UserFields
	}{
		{name: "missing email", in: UserFields{Password: str("p")}},
		{name: "blank email", in: UserFields{Email: str("   ")}},
		{name: "password too long", in: UserFields{Email: str("b@x.com"), Password: str(strings.Repeat("x", 80))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(ctx, tt.in)
			require.Error(t, err)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		})
	}
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t, nil)

	_, err := svc.Signup(ctx, UserFields{Email: str("a@x.com"), Password: str("secret")})
	require.NoError(t, err)

	user, err := svc.Login(ctx, Credentials{Email: " A@x.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)

	_, err = svc.Login(ctx, Credentials{Email: "a@x.com", Password: "wrong"})
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))

	_, err = svc.Login(ctx, Credentials{Email: "nobody@x.com", Password: "secret"})
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))

	_, err = svc.Login(ctx, Credentials{Email: "a@x.com"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestUserService_LoginLimit(t *testing.T) {
	ctx := context.Background()
	limiter := newFakeLimiter()
	svc, _ := newUserService(t, limiter)

	_, err := svc.Signup(ctx, UserFields{Email: str("a@x.com"), Password: str("secret")})
	require.NoError(t, err)

	_, err = svc.Login(ctx, Credentials{Email: "a@x.com", Password: "wrong"})
	require.Error(t, err)
	_, err = svc.Login(ctx, Credentials{Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)
	assert.Zero(t, limiter.failures["a@x.com"], "success resets the counter")

	for i := 0; i < 3; i++ {
		_, err = svc.Login(ctx, Credentials{Email: "a@x.com", Password: "wrong"})
		assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))
	}

	_, err = svc.Login(ctx, Credentials{Email: "a@x.com", Password: "secret"})
	assert.Equal(t, apperr.KindRateLimited, apperr.KindOf(err))
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t, nil)

	user, err := svc.Signup(ctx, UserFields{
		Email:     str("a@x.com"),
		Password:  str("secret"),
		FirstName: str("Ada"),
		LastName:  str("Lovelace"),
	})
	require.NoError(t, err)
	_, err = svc.Signup(ctx, UserFields{Email: str("b@x.com"), Password: str("secret")})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, user.ID, UserFields{
		Bio:               str("math"),
		NotifMessages:     boolean(false),
		NotifApplications: boolean(false),
		DarkMode:          boolean(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", updated.FirstName)
	assert.Equal(t, "Lovelace", updated.LastName)
	assert.Equal(t, "math", updated.Bio)
	assert.False(t, updated.NotifMessages)
	assert.False(t, updated.NotifApplications)
	assert.True(t, updated.DarkMode)
	assert.False(t, updated.NotifMarketing)

	// empty password keeps the old credential
	_, err = svc.Update(ctx, user.ID, UserFields{Password: str("")})
	require.NoError(t, err)
	_, err = svc.Login(ctx, Credentials{Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, user.ID, UserFields{Password: str("changed")})
	require.NoError(t, err)
	_, err = svc.Login(ctx, Credentials{Email: "a@x.com", Password: "changed"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, user.ID, UserFields{Email: str("B@x.com")})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	_, err = svc.Update(ctx, user.ID, UserFields{Email: str(" ")})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.Update(ctx, 999, UserFields{Bio: str("x")})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUserService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserService(t, nil)

	recruiter, err := svc.Signup(ctx, UserFields{Email: str("r@x.com"), Role: str("Recruiter")})
	require.NoError(t, err)
	_, err = svc.Signup(ctx, UserFields{Email: str("s@x.com"), Role: str("Student")})
	require.NoError(t, err)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	recruiters, err := svc.List(ctx, "RECRUITER")
	require.NoError(t, err)
	require.Len(t, recruiters, 1)
	assert.Equal(t, recruiter.ID, recruiters[0].ID)

	none, err := svc.List(ctx, "admin")
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, svc.Delete(ctx, recruiter.ID))

	_, err = svc.Get(ctx, recruiter.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	err = svc.Delete(ctx, recruiter.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUserService_Health(t *testing.T) {
	ctx := context.Background()
	svc, store := newUserService(t, nil)

	_, err := svc.Signup(ctx, UserFields{Email: str("a@x.com")})
	require.NoError(t, err)

	up := svc.Health(ctx)
	assert.Equal(t, HealthStatusUp, up.Status)
	require.NotNil(t, up.Users)
	assert.Equal(t, 1, *up.Users)

	store.SetUnavailable(errors.New("connection refused"))
	h := svc.Health(ctx)
	assert.Equal(t, HealthStatusDegraded, h.Status)
	assert.Equal(t, "database unreachable", h.Message)
	assert.Nil(t, h.Users)
}

// racingUserRepo misses the email on lookup, then hits the unique constraint
// on insert, as when a concurrent signup commits in between.
type racingUserRepo struct {
	UserRepository
}

func (racingUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}

func (racingUserRepo) CreateUser(ctx context.Context, user *models.User) error {
	return fmt.Errorf("create user: %w: users_email_key", storage.ErrDuplicate)
}

func TestUserService_SignupLosesRace(t *testing.T) {
	svc := NewUserService(racingUserRepo{}, nil, bcrypt.MinCost, 3, zap.NewNop())

	_, err := svc.Signup(context.Background(), UserFields{Email: str("a@x.com"), Password: str("p")})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Equal(t, "User already exists with this email", apperr.PublicMessage(err))
}
