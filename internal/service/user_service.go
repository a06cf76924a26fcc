package service

import (
	"errors"
	"fmt"

	"snipr-be/internal/entities"
	"snipr-be/internal/models"
	"snipr-be/internal/repository"
)

// UserService defines the interface for user directory business logic
type UserService interface {
	List(skip, limit int) ([]*entities.User, error)
	Get(id string) (*entities.User, error)
	Update(id string, req *models.UpdateUserRequest) (*entities.User, error)
	Delete(id string) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// List returns users newest first, paginated by skip/limit
func (s *userService) List(skip, limit int) ([]*entities.User, error) {
	users, err := s.repo.List(skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Get returns a single user by id
func (s *userService) Get(id string) (*entities.User, error) {
	user, err := s.repo.FindByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Update applies a partial update: only fields present in the request
// change. Store failures beyond not-found surface as ErrConflict.
func (s *userService) Update(id string, req *models.UpdateUserRequest) (*entities.User, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	user, err := s.repo.Update(id, req.FirstName, req.LastName, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrConflict
	}
	return user, nil
}

// Delete removes a user. Owned URLs are orphaned rather than deleted.
func (s *userService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return ErrConflict
	}
	return nil
}
