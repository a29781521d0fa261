package services

import (
	"context"

	"github.com/rs/zerolog"

	appAuth "github.com/Naveenkumar3327/Campus-link/internal/app/auth"
	"github.com/Naveenkumar3327/Campus-link/internal/app/models"
	"github.com/Naveenkumar3327/Campus-link/internal/app/models/dto"
	"github.com/Naveenkumar3327/Campus-link/internal/app/repositories"
	"github.com/Naveenkumar3327/Campus-link/internal/pkg/apperrors"
)

// UserService defines the admin user directory operations
type UserService interface {
	List(ctx context.Context, actor *models.User, search, role string) ([]dto.UserResponse, error)
}

type userServiceImpl struct {
	users  *repositories.Collection[models.User]
	logger zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(users *repositories.Collection[models.User], logger zerolog.Logger) UserService {
	return &userServiceImpl{
		users:  users,
		logger: logger,
	}
}

// List returns the user directory matching the search term over name
// and email ANDed with the role filter. Admins only.
func (s *userServiceImpl) List(ctx context.Context, actor *models.User, search, role string) ([]dto.UserResponse, error) {
	if !appAuth.Can(appAuth.ActionManageUsers, actor.Role) {
		return nil, apperrors.NewForbiddenError("only admins can list users")
	}

	users, err := s.users.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		if matchText(search, users[i].Name, users[i].Email) && matchEquals(role, string(users[i].Role)) {
			result = append(result, dto.NewUserResponse(&users[i]))
		}
	}
	return result, nil
}
