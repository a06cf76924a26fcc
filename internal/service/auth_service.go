package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"snipr-be/internal/entities"
	"snipr-be/internal/models"
	"snipr-be/internal/repository"
	"snipr-be/internal/token"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Signup(req *models.SignupRequest) (*entities.User, error)
	Login(req *models.LoginRequest) (*models.LoginResponse, error)
	FindByCredential(usernameOrEmail string) (*entities.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *token.Service
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, tokens *token.Service) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Signup creates a new user account. The submitted password is hashed with
// bcrypt before storage; the returned entity never serializes the hash.
func (s *authService) Signup(req *models.SignupRequest) (*entities.User, error) {
	existing, err := s.userRepo.FindByEmail(req.EmailAddress)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(req.FirstName, req.LastName, req.Username, req.EmailAddress, string(hashedPassword))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// FindByCredential looks a user up by email first, then by username,
// returning the first hit.
func (s *authService) FindByCredential(usernameOrEmail string) (*entities.User, error) {
	user, err := s.userRepo.FindByEmail(usernameOrEmail)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user, err = s.userRepo.FindByUsername(usernameOrEmail)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and issues an access/refresh token pair
func (s *authService) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.FindByCredential(req.UsernameOrEmail)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	identity := token.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.EmailAddress,
	}

	accessToken, err := s.tokens.IssueAccessToken(identity)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	refreshToken, err := s.tokens.IssueRefreshToken(identity)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	return &models.LoginResponse{
		Message:      "User logged in successfully",
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: models.UserSummary{
			Email:  user.EmailAddress,
			UserID: user.ID,
		},
	}, nil
}
