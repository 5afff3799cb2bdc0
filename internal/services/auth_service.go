package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/huaydee/lotto-admin-backend/internal/models"
	"github.com/huaydee/lotto-admin-backend/internal/repositories"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// ErrInvalidCredentials is returned for any login failure; the reason is not
// disclosed to the caller
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles operator authentication
type AuthService struct {
	userRepo  repositories.AdminUserRepository
	jwtSecret string
	expiresIn time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.AdminUserRepository, jwtSecret string, expiresInSeconds int) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		expiresIn: time.Duration(expiresInSeconds) * time.Second,
	}
}

// Register creates an operator account with a bcrypt-hashed password
func (s *AuthService) Register(ctx context.Context, username, password, role string) (*models.AdminUser, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	user := &models.AdminUser{
		Username: username,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, errors.New("failed to create operator account")
	}
	user.Password = ""
	return user, nil
}

// Login verifies credentials and issues a JWT
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		slog.Warn("Rejected login attempt", "username", req.Username)
		return nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"sub":  user.ID.Hex(),
		"name": user.Username,
		"role": user.Role,
		"exp":  time.Now().Add(s.expiresIn).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, errors.New("failed to sign token")
	}

	return &models.LoginResponse{
		Token:    signed,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}
