package service

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"snipr-be/internal/entities"
	"snipr-be/internal/models"
	"snipr-be/internal/repository"
	"snipr-be/internal/repository/mocks"
	"snipr-be/internal/token"
)

func newTestTokenService() *token.Service {
	return token.NewService("test-secret", time.Hour, 24*time.Hour)
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(hash)
}

func TestSignup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := NewAuthService(userRepo, newTestTokenService())

	userRepo.EXPECT().FindByEmail("dana@example.com").Return(nil, repository.ErrNotFound)
	userRepo.EXPECT().Create("Dana", "Hill", "dana", "dana@example.com", gomock.Any()).
		DoAndReturn(func(firstName, lastName, username, email, hashedPassword string) (*entities.User, error) {
			if hashedPassword == "s3cret" {
				t.Error("password stored in plaintext")
			}
			if bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte("s3cret")) != nil {
				t.Error("stored hash does not verify against the submitted password")
			}
			return &entities.User{
				ID:             "u-1",
				FirstName:      firstName,
				LastName:       lastName,
				Username:       username,
				EmailAddress:   email,
				HashedPassword: hashedPassword,
				CreatedAt:      time.Now(),
			}, nil
		})

	user, err := svc.Signup(&models.SignupRequest{
		FirstName:    "Dana",
		LastName:     "Hill",
		Username:     "dana",
		EmailAddress: "dana@example.com",
		Password:     "s3cret",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.ID != "u-1" {
		t.Errorf("unexpected user %+v", user)
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := NewAuthService(userRepo, newTestTokenService())

	userRepo.EXPECT().FindByEmail("dana@example.com").Return(&entities.User{ID: "u-1"}, nil)
	// No Create expectation: a duplicate must not create a second record

	_, err := svc.Signup(&models.SignupRequest{
		FirstName:    "Dana",
		LastName:     "Hill",
		Username:     "dana2",
		EmailAddress: "dana@example.com",
		Password:     "s3cret",
	})
	if !errors.Is(err, ErrUserExists) {
		t.Errorf("expected ErrUserExists, got %v", err)
	}
}

func TestLogin_ByEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	tokens := newTestTokenService()
	svc := NewAuthService(userRepo, tokens)

	userRepo.EXPECT().FindByEmail("dana@example.com").Return(&entities.User{
		ID:             "u-1",
		Username:       "dana",
		EmailAddress:   "dana@example.com",
		HashedPassword: hashFor(t, "s3cret"),
	}, nil)

	resp, err := svc.Login(&models.LoginRequest{
		UsernameOrEmail: "dana@example.com",
		Password:        "s3cret",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.User.UserID != "u-1" || resp.User.Email != "dana@example.com" {
		t.Errorf("unexpected user summary %+v", resp.User)
	}

	access, err := tokens.Verify(resp.AccessToken)
	if err != nil || access.Refresh {
		t.Errorf("expected a valid access token, got err=%v refresh=%v", err, access != nil && access.Refresh)
	}
	refresh, err := tokens.Verify(resp.RefreshToken)
	if err != nil || !refresh.Refresh {
		t.Errorf("expected a valid refresh token, got err=%v", err)
	}
}

func TestLogin_ByUsernameFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := NewAuthService(userRepo, newTestTokenService())

	// Email lookup misses first, then username lookup hits
	userRepo.EXPECT().FindByEmail("dana").Return(nil, repository.ErrNotFound)
	userRepo.EXPECT().FindByUsername("dana").Return(&entities.User{
		ID:             "u-1",
		Username:       "dana",
		EmailAddress:   "dana@example.com",
		HashedPassword: hashFor(t, "s3cret"),
	}, nil)

	if _, err := svc.Login(&models.LoginRequest{UsernameOrEmail: "dana", Password: "s3cret"}); err != nil {
		t.Fatalf("login: %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := NewAuthService(userRepo, newTestTokenService())

	userRepo.EXPECT().FindByEmail("dana@example.com").Return(&entities.User{
		ID:             "u-1",
		EmailAddress:   "dana@example.com",
		HashedPassword: hashFor(t, "s3cret"),
	}, nil)

	_, err := svc.Login(&models.LoginRequest{UsernameOrEmail: "dana@example.com", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := NewAuthService(userRepo, newTestTokenService())

	userRepo.EXPECT().FindByEmail("ghost").Return(nil, repository.ErrNotFound)
	userRepo.EXPECT().FindByUsername("ghost").Return(nil, repository.ErrNotFound)

	_, err := svc.Login(&models.LoginRequest{UsernameOrEmail: "ghost", Password: "whatever"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}
