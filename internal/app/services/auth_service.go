package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Naveenkumar3327/Campus-link/internal/app/models"
	"github.com/Naveenkumar3327/Campus-link/internal/app/models/dto"
	"github.com/Naveenkumar3327/Campus-link/internal/app/repositories"
	"github.com/Naveenkumar3327/Campus-link/internal/pkg/apperrors"
	pkgAuth "github.com/Naveenkumar3327/Campus-link/internal/pkg/auth"
)

// AuthService defines the authenticator capability. The view layer only
// sees this interface, so the credential backend can be swapped without
// touching controllers.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error)
	FindUser(ctx context.Context, userID string) (*models.User, error)
}

type authServiceImpl struct {
	users      *repositories.Collection[models.User]
	tokens     *repositories.Collection[models.RefreshToken]
	jwtService *pkgAuth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService backed by the users directory.
func NewAuthService(
	users *repositories.Collection[models.User],
	tokens *repositories.Collection[models.RefreshToken],
	jwtService *pkgAuth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		users:      users,
		tokens:     tokens,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login authenticates a user by email and password. Unknown email and
// wrong password both map to ErrInvalidCredentials.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	users, err := s.users.Load(ctx)
	if err != nil {
		return nil, err
	}

	var user *models.User
	for i := range users {
		if strings.EqualFold(users[i].Email, req.Email) {
			user = &users[i]
			break
		}
	}

	if user == nil || !pkgAuth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// Register creates a new account. Signup always succeeds for a valid
// payload; the only rejection is an already-registered email.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, apperrors.NewValidationError("unknown role " + req.Role)
	}

	hash, err := pkgAuth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		Avatar:       req.Avatar,
		RollNumber:   req.RollNumber,
		CreatedAt:    time.Now(),
	}

	_, err = s.users.Update(ctx, func(users []models.User) ([]models.User, error) {
		for i := range users {
			if strings.EqualFold(users[i].Email, req.Email) {
				return nil, apperrors.ErrEmailAlreadyExists
			}
		}
		return append(users, user), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", user.Email).Str("role", req.Role).Msg("User registered")

	return s.issueTokens(ctx, &user)
}

// RefreshToken exchanges a valid refresh token for a new token pair.
// The used token is revoked (rotation).
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	var userID string
	_, err := s.tokens.Update(ctx, func(tokens []models.RefreshToken) ([]models.RefreshToken, error) {
		for i := range tokens {
			if tokens[i].Token != refreshToken {
				continue
			}
			if tokens[i].Revoked {
				return nil, apperrors.ErrTokenRevoked
			}
			if time.Now().After(tokens[i].ExpiresAt) {
				return nil, apperrors.ErrTokenExpired
			}
			tokens[i].Revoked = true
			userID = tokens[i].UserID
			return tokens, nil
		}
		return nil, apperrors.ErrTokenNotFound
	})
	if err != nil {
		return nil, err
	}

	user, err := s.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the presented refresh token. Access tokens simply
// expire; dropping them is the client's side of logout.
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	_, err := s.tokens.Update(ctx, func(tokens []models.RefreshToken) ([]models.RefreshToken, error) {
		for i := range tokens {
			if tokens[i].Token == refreshToken {
				tokens[i].Revoked = true
				return tokens, nil
			}
		}
		return nil, apperrors.ErrTokenNotFound
	})
	return err
}

// GetProfile returns the public view of a user.
func (s *authServiceImpl) GetProfile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// FindUser looks a user up by id.
func (s *authServiceImpl) FindUser(ctx context.Context, userID string) (*models.User, error) {
	users, err := s.users.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == userID {
			return &users[i], nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *authServiceImpl) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, err
	}

	record := models.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.jwtService.RefreshTokenExpiry()),
	}

	_, err = s.tokens.Update(ctx, func(tokens []models.RefreshToken) ([]models.RefreshToken, error) {
		// Expired tokens are dropped on the way through
		kept := tokens[:0]
		for _, t := range tokens {
			if time.Now().Before(t.ExpiresAt) {
				kept = append(kept, t)
			}
		}
		return append(kept, record), nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		User:         dto.NewUserResponse(user),
	}, nil
}
