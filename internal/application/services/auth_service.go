package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/chargepilot/chargepilot/backend/internal/domain/entities"
	"github.com/chargepilot/chargepilot/backend/internal/domain/repositories"
	"github.com/chargepilot/chargepilot/backend/pkg/config"
	apperrors "github.com/chargepilot/chargepilot/backend/pkg/errors"
)

// RegisterInput is the payload for account creation.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthResult bundles the sanitized user with a signed token.
type AuthResult struct {
	User  entities.User `json:"user"`
	Token string        `json:"token"`
}

// AuthService handles registration, login and profile updates. Passwords are
// bcrypt-hashed; sessions are stateless HS256 JWTs carrying user id and role.
type AuthService struct {
	users  repositories.UserRepository
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates a new auth service.
func NewAuthService(users repositories.UserRepository, cfg config.AuthConfig) *AuthService {
	return &AuthService{
		users:  users,
		secret: []byte(cfg.JWTSecret),
		ttl:    time.Duration(cfg.TokenTTLMinutes) * time.Minute,
	}
}

// Register creates an account and returns it with a fresh token. Email
// comparison is case-insensitive; the stored email keeps the caller's casing.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Email = strings.TrimSpace(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" || input.Email == "" {
		return nil, apperrors.NewValidationError("name and email are required")
	}
	if !strings.Contains(input.Email, "@") {
		return nil, apperrors.NewValidationError("email is not valid")
	}
	if len(input.Password) < 6 {
		return nil, apperrors.NewValidationError("password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to hash password", err)
	}

	now := time.Now().UTC()
	user := &entities.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         entities.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// Login verifies credentials and returns the user with a fresh token. Both
// an unknown email and a wrong password produce the same unauthorized error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	return s.issueToken(user)
}

// GetProfile returns the sanitized account for the given user id.
func (s *AuthService) GetProfile(ctx context.Context, userID string) (*entities.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	sanitized := user.Sanitized()
	return &sanitized, nil
}

// UpdateProfile changes the account's display name. Email and role are not
// self-serviceable.
func (s *AuthService) UpdateProfile(ctx context.Context, userID, name string) (*entities.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Name = name
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}

// ParseToken validates a bearer token and returns the embedded user id and
// role. Used by the auth middleware.
func (s *AuthService) ParseToken(tokenString string) (userID, role string, err error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", "", apperrors.NewUnauthorizedError("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", apperrors.NewUnauthorizedError("invalid token claims")
	}
	userID, _ = claims["sub"].(string)
	role, _ = claims["role"].(string)
	if userID == "" {
		return "", "", apperrors.NewUnauthorizedError("invalid token claims")
	}
	return userID, role, nil
}

func (s *AuthService) issueToken(user *entities.User) (*AuthResult, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to sign token", err)
	}
	return &AuthResult{User: user.Sanitized(), Token: signed}, nil
}
