package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"portal/backend/internal/logger"
	"portal/backend/internal/model"
	"portal/backend/internal/repository"
)

const keyAuthJWTSecret = "auth.jwt_secret"

// tokenTTL is how long a session token stays valid.
const tokenTTL = 30 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// SessionProfile is the identity asserted by the upstream IdP. The
// protocol exchange itself happens client-side; the backend only trusts
// the already-verified profile.
type SessionProfile struct {
	Badge int64  `json:"badge"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is returned after a successful profile exchange.
type Session struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// AuthService exchanges IdP-asserted profiles for portal tokens.
type AuthService interface {
	// CreateSession provisions the user if needed and returns a signed
	// portal token for the profile.
	CreateSession(ctx context.Context, profile SessionProfile) (*Session, error)
	// GetCurrentUser resolves the user for a validated badge claim.
	GetCurrentUser(ctx context.Context, badge int64) (model.User, error)
	// ValidateToken verifies a token and returns the badge it carries.
	ValidateToken(tokenString string) (int64, error)
}

type authService struct {
	users    repository.UserRepository
	settings repository.SettingsRepository

	mu sync.Mutex // guards first-use secret generation
}

// NewAuthService creates a new auth service.
func NewAuthService(users repository.UserRepository, settings repository.SettingsRepository) AuthService {
	return &authService{users: users, settings: settings}
}

func (s *authService) CreateSession(ctx context.Context, profile SessionProfile) (*Session, error) {
	if profile.Badge <= 0 || strings.TrimSpace(profile.Name) == "" {
		return nil, ErrInvalid
	}

	user, err := s.users.GetByBadge(ctx, profile.Badge)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		created, err := s.provisionUser(ctx, profile)
		if err != nil {
			return nil, err
		}
		user = &created
	}

	secret, err := s.jwtSecret(ctx)
	if err != nil {
		return nil, err
	}

	token, err := signToken(user.Badge, secret)
	if err != nil {
		return nil, err
	}

	logger.Info("session created", "module", "service", "action", "create", "resource", "session", "result", "ok", "badge", user.Badge)
	return &Session{Token: token, User: *user}, nil
}

// provisionUser creates a user record from the asserted profile on
// first sign-in.
func (s *authService) provisionUser(ctx context.Context, profile SessionProfile) (model.User, error) {
	first, last := splitName(profile.Name)
	user := model.User{
		Badge:     profile.Badge,
		FirstName: first,
		LastName:  last,
	}
	if email := strings.TrimSpace(profile.Email); email != "" {
		user.Email = &email
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		// Lost a provisioning race; the row is there now.
		if repository.IsUniqueViolation(err) {
			existing, gerr := s.users.GetByBadge(ctx, profile.Badge)
			if gerr != nil || existing == nil {
				return model.User{}, fmt.Errorf("reload user: %w", gerr)
			}
			return *existing, nil
		}
		return model.User{}, fmt.Errorf("provision user: %w", err)
	}

	logger.Info("user provisioned", "module", "service", "action", "create", "resource", "user", "result", "ok", "badge", profile.Badge)
	return created, nil
}

func (s *authService) GetCurrentUser(ctx context.Context, badge int64) (model.User, error) {
	user, err := s.users.GetByBadge(ctx, badge)
	if err != nil {
		return model.User{}, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return model.User{}, ErrNotFound
	}
	return *user, nil
}

func (s *authService) ValidateToken(tokenString string) (int64, error) {
	secret, err := s.jwtSecret(context.Background())
	if err != nil {
		return 0, ErrInvalidToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, ErrInvalidToken
	}
	badge, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || badge <= 0 {
		return 0, ErrInvalidToken
	}
	return badge, nil
}

// jwtSecret loads the signing secret, generating and persisting it on
// first use.
func (s *authService) jwtSecret(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	setting, err := s.settings.Get(ctx, keyAuthJWTSecret)
	if err != nil {
		return nil, fmt.Errorf("get jwt secret: %w", err)
	}
	if setting != nil && setting.Value != "" {
		return hex.DecodeString(setting.Value)
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate jwt secret: %w", err)
	}
	if err := s.settings.Set(ctx, keyAuthJWTSecret, hex.EncodeToString(secret)); err != nil {
		return nil, fmt.Errorf("save jwt secret: %w", err)
	}
	return secret, nil
}

func signToken(badge int64, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(badge, 10),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func splitName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], parts[0]
	}
	return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
}
