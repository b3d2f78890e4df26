package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "garagehub/database/repository/user"
	"garagehub/models"
	"garagehub/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Auth tokens are valid for a week; the dashboard re-authenticates silently.
const tokenDuration = 7 * 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
)

// UserService manages dashboard staff accounts.
type UserService interface {
	Register(ctx context.Context, garageID, name, email, password, role string) (*models.StaffUser, error)
	Authenticate(ctx context.Context, email, password string) (*models.StaffUser, string, error)
	GetByID(ctx context.Context, id string) (*models.StaffUser, error)
	RevokeToken(ctx context.Context, id string) error
}

// DefaultUserService is the concrete implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

func (s *DefaultUserService) Register(ctx context.Context, garageID, name, email, password, role string) (*models.StaffUser, error) {
	if existing, _ := s.Repo.GetByEmail(ctx, email); existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	if role == "" {
		role = "staff"
	}

	user := &models.StaffUser{
		ID:           uuid.New().String(),
		GarageID:     garageID,
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*models.StaffUser, string, error) {
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Email, tokenDuration)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	if err := s.Repo.UpdateTokenHash(ctx, user.ID, utils.HashToken(token)); err != nil {
		return nil, "", fmt.Errorf("failed to store token hash: %w", err)
	}
	return user, token, nil
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.StaffUser, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultUserService) RevokeToken(ctx context.Context, id string) error {
	return s.Repo.UpdateTokenHash(ctx, id, "")
}
