package service

import (
	"context"
	"errors"
	"time"

	"github.com/mclemorejordan-ops/gym-dashboard-dev/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrAuthenticationFailed = errors.New("authentication failed: wrong PIN")
	ErrPinValidation        = errors.New("PIN must be at least 4 characters")
	ErrHashingFailed        = errors.New("failed to hash PIN")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
)

const minPinLength = 4

// AuthService guards the single-user tracker with an optional PIN. When the
// lock is disabled, or no PIN has ever been set, every request passes.
type AuthService interface {
	// Required reports whether requests must carry a valid token.
	Required(ctx context.Context) bool
	// SetPin hashes and stores a new PIN. currentPin must match when a PIN
	// is already set.
	SetPin(ctx context.Context, currentPin, newPin string) error
	// ClearPin removes the lock. currentPin must match the stored PIN.
	ClearPin(ctx context.Context, currentPin string) error
	// Unlock verifies the PIN and issues a JWT.
	Unlock(ctx context.Context, pin string) (token string, err error)
	GetJWTSecret() string
}

// --- Service Implementation ---

type authService struct {
	state         repository.StateRepository
	enabled       bool
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(state repository.StateRepository, enabled bool, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if enabled && jwtSecret == "" {
		panic("JWT secret cannot be empty when the PIN lock is enabled") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = time.Hour * 24 // Single-user device, a day is fine
	}
	return &authService{
		state:         state,
		enabled:       enabled,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

func (s *authService) Required(ctx context.Context) bool {
	return s.enabled && s.state.PinHash(ctx) != ""
}

// SetPin hashes the new PIN and stores it, after verifying the current one
// when a PIN already exists.
func (s *authService) SetPin(ctx context.Context, currentPin, newPin string) error {
	if len(newPin) < minPinLength {
		return ErrPinValidation
	}
	if err := s.verifyCurrent(ctx, currentPin); err != nil {
		return err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPin), bcrypt.DefaultCost)
	if err != nil {
		return ErrHashingFailed
	}
	return s.state.SetPinHash(ctx, string(hashed))
}

func (s *authService) ClearPin(ctx context.Context, currentPin string) error {
	if err := s.verifyCurrent(ctx, currentPin); err != nil {
		return err
	}
	return s.state.SetPinHash(ctx, "")
}

// Unlock verifies the PIN against the stored hash and issues a JWT.
func (s *authService) Unlock(ctx context.Context, pin string) (string, error) {
	stored := s.state.PinHash(ctx)
	if stored == "" {
		return "", ErrAuthenticationFailed
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(pin)); err != nil {
		return "", ErrAuthenticationFailed
	}
	token, err := s.generateJWT()
	if err != nil {
		return "", ErrTokenGeneration
	}
	return token, nil
}

// verifyCurrent checks currentPin against the stored hash. An empty store
// means no lock exists yet, so anything passes.
func (s *authService) verifyCurrent(ctx context.Context, currentPin string) error {
	stored := s.state.PinHash(ctx)
	if stored == "" {
		return nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(currentPin)); err != nil {
		return ErrAuthenticationFailed
	}
	return nil
}

// --- JWT Helper ---

// generateJWT creates a token for the tracker's single owner.
func (s *authService) generateJWT() (string, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   "owner",
		ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
		IssuedAt:  jwt.NewNumericDate(now),
		Issuer:    "gym-dashboard",
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// GetJWTSecret returns the JWT secret for middleware authentication.
func (s *authService) GetJWTSecret() string {
	return s.jwtSecret
}
