package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"vidyalaya_backend/internals/configs"
	"vidyalaya_backend/internals/features/users/auth/dto"
	userDTO "vidyalaya_backend/internals/features/users/user/dto"
	userModel "vidyalaya_backend/internals/features/users/user/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

var (
	// ErrInvalidCredentials covers unknown email, wrong password and
	// deactivated accounts alike, so a login probe learns nothing.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRefresh     = errors.New("refresh token invalid or revoked")
)

type AuthStore interface {
	FindUserByEmail(ctx context.Context, email string) (*userModel.UserModel, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (*userModel.UserModel, error)
	BlacklistToken(ctx context.Context, token string, expiresAt time.Time) error
	IsBlacklisted(ctx context.Context, token string) (bool, error)
}

type AuthService struct {
	store      AuthStore
	validate   *validator.Validate
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(store AuthStore) *AuthService {
	return &AuthService{
		store:      store,
		validate:   validator.New(),
		accessTTL:  envDuration("ACCESS_TOKEN_TTL_MINUTES", 15, time.Minute),
		refreshTTL: envDuration("REFRESH_TOKEN_TTL_DAYS", 7, 24*time.Hour),
	}
}

func envDuration(key string, fallback int, unit time.Duration) time.Duration {
	n := fallback
	if v := configs.GetEnv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			n = parsed
		}
	}
	return time.Duration(n) * unit
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenPairResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	u, err := s.store.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !u.UserIsActive {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issuePair(u)
}

// Refresh rotates the pair: the presented refresh token is blacklisted so it
// can be used exactly once.
func (s *AuthService) Refresh(ctx context.Context, rawRefresh string) (*dto.TokenPairResponse, error) {
	claims, err := s.parseRefresh(ctx, rawRefresh)
	if err != nil {
		return nil, err
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrInvalidRefresh
	}

	u, err := s.store.FindUserByID(ctx, userID)
	if errors.Is(err, dberr.ErrNotFound) {
		return nil, ErrInvalidRefresh
	}
	if err != nil {
		return nil, err
	}
	if !u.UserIsActive {
		return nil, ErrInvalidRefresh
	}

	if err := s.blacklist(ctx, rawRefresh, claims); err != nil {
		return nil, err
	}
	return s.issuePair(u)
}

// Logout revokes whichever tokens the client still holds.
func (s *AuthService) Logout(ctx context.Context, rawAccess, rawRefresh string) error {
	if rawAccess != "" {
		if claims, err := s.parseUnverifiedExpiry(rawAccess); err == nil {
			if err := s.blacklist(ctx, rawAccess, claims); err != nil {
				return err
			}
		}
	}
	if rawRefresh != "" {
		claims, err := s.parseRefresh(ctx, rawRefresh)
		if err == nil {
			if err := s.blacklist(ctx, rawRefresh, claims); err != nil {
				return err
			}
		}
	}
	return nil
}

// IsBlacklisted is the middleware's revocation probe.
func (s *AuthService) IsBlacklisted(ctx context.Context, raw string) (bool, error) {
	return s.store.IsBlacklisted(ctx, raw)
}

/* ===================== Token plumbing ===================== */

func (s *AuthService) issuePair(u *userModel.UserModel) (*dto.TokenPairResponse, error) {
	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"sub":       u.UserID.String(),
		"school_id": u.UserSchoolID.String(),
		"role":      u.UserRole,
		"typ":       "access",
		"iat":       now.Unix(),
		"exp":       now.Add(s.accessTTL).Unix(),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return nil, err
	}

	// jti keeps tokens distinct even when two rotations land in the same
	// second, otherwise the new refresh token could equal the revoked one.
	refreshClaims := jwt.MapClaims{
		"sub": u.UserID.String(),
		"jti": uuid.NewString(),
		"typ": "refresh",
		"iat": now.Unix(),
		"exp": now.Add(s.refreshTTL).Unix(),
	}
	refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).
		SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return nil, err
	}

	return &dto.TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         userDTO.NewUserResponse(u),
	}, nil
}

func (s *AuthService) parseRefresh(ctx context.Context, raw string) (jwt.MapClaims, error) {
	if raw == "" {
		return nil, ErrInvalidRefresh
	}
	revoked, err := s.store.IsBlacklisted(ctx, raw)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrInvalidRefresh
	}

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidRefresh
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidRefresh
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidRefresh
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return nil, ErrInvalidRefresh
	}
	return claims, nil
}

// parseUnverifiedExpiry reads exp without signature verification; logout only
// needs the expiry to bound the blacklist row, an invalid token is harmless.
func (s *AuthService) parseUnverifiedExpiry(raw string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func (s *AuthService) blacklist(ctx context.Context, raw string, claims jwt.MapClaims) error {
	expiresAt := time.Now().UTC().Add(s.refreshTTL)
	if exp, ok := claims["exp"].(float64); ok {
		expiresAt = time.Unix(int64(exp), 0).UTC()
	}
	err := s.store.BlacklistToken(ctx, raw, expiresAt)
	if errors.Is(err, dberr.ErrDuplicateKey) {
		return nil
	}
	return err
}
