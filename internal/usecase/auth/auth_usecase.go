package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sparkmatch/sparkmatch-backend/internal/domain"
	"github.com/sparkmatch/sparkmatch-backend/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	jwtSecret   string
	accessTTL   time.Duration
	sessionTTL  time.Duration
	log         *zap.Logger
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	jwtSecret string,
	accessExpiryMin, sessionTTLHours int,
	log *zap.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtSecret:   jwtSecret,
		accessTTL:   time.Duration(accessExpiryMin) * time.Minute,
		sessionTTL:  time.Duration(sessionTTLHours) * time.Hour,
		log:         log,
	}
}

// RegisterRequest represents user registration input
type RegisterRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=8,max=72"`
	Name      string  `json:"name" binding:"required,min=2,max=100"`
	Gender    string  `json:"gender" binding:"required,oneof=male female"`
	BirthDate string  `json:"birth_date" binding:"required"` // Format: YYYY-MM-DD
	Phone     *string `json:"phone" binding:"omitempty,max=20"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"user"`
}

type accessClaims struct {
	UserID    int    `json:"user_id"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Register creates a user with a bcrypt-hashed password and logs them in.
func (uc *AuthUseCase) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if age(birthDate) < 18 {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Name:         req.Name,
		Gender:       req.Gender,
		BirthDate:    birthDate,
		Phone:        req.Phone,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.log.Info("user registered", zap.Int("user_id", user.ID))
	return uc.issueToken(ctx, user)
}

// Login verifies credentials and issues a token backed by a Redis session.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := uc.userRepo.UpdateLastActive(ctx, user.ID); err != nil {
		uc.log.Warn("failed to update last active", zap.Int("user_id", user.ID), zap.Error(err))
	}

	return uc.issueToken(ctx, user)
}

// Logout revokes the session behind the token. An already-invalid token is
// not an error.
func (uc *AuthUseCase) Logout(ctx context.Context, tokenString string) error {
	claims, err := uc.parseToken(tokenString)
	if err != nil {
		return nil
	}
	return uc.sessionRepo.Delete(ctx, claims.SessionID)
}

// ValidateToken checks the JWT signature and the backing session, returning
// the authenticated user id.
func (uc *AuthUseCase) ValidateToken(ctx context.Context, tokenString string) (int, error) {
	claims, err := uc.parseToken(tokenString)
	if err != nil {
		return 0, err
	}

	session, err := uc.sessionRepo.Get(ctx, claims.SessionID)
	if err != nil {
		return 0, err
	}
	if session.UserID != claims.UserID {
		return 0, domain.ErrSessionNotFound
	}

	return claims.UserID, nil
}

func (uc *AuthUseCase) issueToken(ctx context.Context, user *domain.User) (*AuthResponse, error) {
	now := time.Now()
	session := repository.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: now.Add(uc.sessionTTL),
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	expiresAt := now.Add(uc.accessTTL)
	claims := accessClaims{
		UserID:    user.ID,
		SessionID: session.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

func (uc *AuthUseCase) parseToken(tokenString string) (*accessClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(uc.jwtSecret), nil
	})
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return nil, domain.ErrSessionNotFound
	}
	return claims, nil
}

func age(birthDate time.Time) int {
	now := time.Now()
	years := now.Year() - birthDate.Year()
	if now.YearDay() < birthDate.YearDay() {
		years--
	}
	return years
}
