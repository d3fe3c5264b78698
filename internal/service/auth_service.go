package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"dealhunt/internal/auth"
	apperrors "dealhunt/internal/errors"
	"dealhunt/internal/model"
	"dealhunt/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration, login, and current-user lookup.
type AuthService interface {
	Register(ctx context.Context, email, password, fullName string) (accessToken string, err error)
	Login(ctx context.Context, email, password string) (accessToken string, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user with a bcrypt-hashed password and returns an
// access token. The first registrant in an empty user set becomes the admin.
func (s *authService) Register(ctx context.Context, email, password, fullName string) (string, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return "", apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("check user existence: %w", err)
	}

	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return "", fmt.Errorf("count users: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		FullName:     fullName,
		IsAdmin:      count == 0,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index on email catches the race between the existence
		// check and the insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", apperrors.ErrEmailTaken
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateAccessToken(user.Email)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return token, nil
}

// Login authenticates a user and returns an access token. Only a missing
// user or a failed password check count as bad credentials; store failures
// propagate so they surface as server errors.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateAccessToken(user.Email)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}
	return token, nil
}
