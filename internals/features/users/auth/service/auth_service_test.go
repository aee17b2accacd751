package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"vidyalaya_backend/internals/features/users/auth/dto"
	userModel "vidyalaya_backend/internals/features/users/user/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

type fakeAuthStore struct {
	users       map[uuid.UUID]userModel.UserModel
	blacklisted map[string]time.Time
}

func newFakeAuthStore() *fakeAuthStore {
	return &fakeAuthStore{
		users:       map[uuid.UUID]userModel.UserModel{},
		blacklisted: map[string]time.Time{},
	}
}

func (f *fakeAuthStore) addUser(t *testing.T, email, password string, active bool) uuid.UUID {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	id := uuid.New()
	f.users[id] = userModel.UserModel{
		UserID:       id,
		UserSchoolID: uuid.New(),
		UserName:     "Admin",
		UserEmail:    email,
		UserPassword: string(hash),
		UserRole:     "admin",
		UserIsActive: active,
	}
	return id
}

func (f *fakeAuthStore) FindUserByEmail(_ context.Context, email string) (*userModel.UserModel, error) {
	for _, u := range f.users {
		if u.UserEmail == email {
			out := u
			return &out, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (f *fakeAuthStore) FindUserByID(_ context.Context, id uuid.UUID) (*userModel.UserModel, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	out := u
	return &out, nil
}

func (f *fakeAuthStore) BlacklistToken(_ context.Context, token string, expiresAt time.Time) error {
	if _, ok := f.blacklisted[token]; ok {
		return dberr.ErrDuplicateKey
	}
	f.blacklisted[token] = expiresAt
	return nil
}

func (f *fakeAuthStore) IsBlacklisted(_ context.Context, token string) (bool, error) {
	_, ok := f.blacklisted[token]
	return ok, nil
}

func TestLoginIssuesTokenPair(t *testing.T) {
	store := newFakeAuthStore()
	store.addUser(t, "admin@school.lk", "s3cret-pass", true)
	svc := NewAuthService(store)

	pair, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@school.lk",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	require.NotNil(t, pair.User)
	assert.Equal(t, "admin@school.lk", pair.User.UserEmail)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	store := newFakeAuthStore()
	store.addUser(t, "admin@school.lk", "s3cret-pass", true)
	store.addUser(t, "gone@school.lk", "s3cret-pass", false)
	svc := NewAuthService(store)

	cases := []struct {
		name  string
		email string
		pass  string
	}{
		{"wrong password", "admin@school.lk", "wrong-password"},
		{"unknown email", "nobody@school.lk", "s3cret-pass"},
		{"deactivated account", "gone@school.lk", "s3cret-pass"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), &dto.LoginRequest{
				Email:    tc.email,
				Password: tc.pass,
			})
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestRefreshRotatesAndRevokesOldToken(t *testing.T) {
	store := newFakeAuthStore()
	store.addUser(t, "admin@school.lk", "s3cret-pass", true)
	svc := NewAuthService(store)

	pair, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@school.lk",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	rotated, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)

	// the presented token was consumed by the rotation
	assert.Contains(t, store.blacklisted, pair.RefreshToken)
	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	store := newFakeAuthStore()
	store.addUser(t, "admin@school.lk", "s3cret-pass", true)
	svc := NewAuthService(store)

	pair, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@school.lk",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc := NewAuthService(newFakeAuthStore())

	for _, raw := range []string{"", "not-a-jwt"} {
		_, err := svc.Refresh(context.Background(), raw)
		assert.ErrorIs(t, err, ErrInvalidRefresh)
	}
}

func TestLogoutBlacklistsBothTokens(t *testing.T) {
	store := newFakeAuthStore()
	store.addUser(t, "admin@school.lk", "s3cret-pass", true)
	svc := NewAuthService(store)

	pair, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@school.lk",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), pair.AccessToken, pair.RefreshToken))
	assert.Contains(t, store.blacklisted, pair.AccessToken)
	assert.Contains(t, store.blacklisted, pair.RefreshToken)

	// logout is idempotent even with tokens already revoked
	require.NoError(t, svc.Logout(context.Background(), pair.AccessToken, pair.RefreshToken))
}
