package auth

import (
	"context"
	"errors"

	"github.com/vahanex/vahanex-server/internal/domain/models"
	"github.com/vahanex/vahanex-server/internal/domain/types"
	"github.com/vahanex/vahanex-server/pkg/logger"
	wrap "github.com/vahanex/vahanex-server/pkg/logger/wrapper"
	"github.com/vahanex/vahanex-server/pkg/passhash"
	"github.com/vahanex/vahanex-server/pkg/uuid"
)

type AuthService struct {
	userRepo     UserRepo
	tokenService TokenProvider
	log          logger.Logger
}

func NewAuthService(userRepo UserRepo, tokenService TokenProvider, log logger.Logger) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		tokenService: tokenService,
		log:          log,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.TokenPair, error) {
	ctx = wrap.WithAction(ctx, "login")

	// Check the user exists
	user, err := s.userRepo.GetUser(ctx, email)
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) {
			return nil, ErrUserWithEmailNotFound
		}
		return nil, wrap.Error(ctx, err)
	}

	// Check the password
	if ok, err := passhash.VerifyPassword(password, user.GetPassword()); err != nil || !ok {
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.tokenService.GenerateTokens(ctx, user)
	if err != nil {
		return nil, ErrTokenGenerateFail
	}

	return tokens, nil
}

type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Register creates a new staff account.
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (uuid.UUID, error) {
	ctx = wrap.WithAction(ctx, "register")

	// Check if user with such email already exists
	_, err := s.userRepo.GetUser(ctx, req.Email)
	if err == nil {
		return uuid.UUID{}, ErrNotUniqueEmail
	}
	if !errors.Is(err, types.ErrUserNotFound) {
		return uuid.UUID{}, ErrUnexpected
	}

	hashPassword, err := passhash.HashPassword(req.Password)
	if err != nil {
		s.log.Error(ctx, "Failed to generate hash from password", err)
		return uuid.UUID{}, ErrUnexpected
	}

	role := req.Role
	if role == "" {
		role = types.FrontDeskRole.String()
	}

	newUser := models.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  role,
	}
	newUser.SetPassword(hashPassword)

	id, err := s.userRepo.CreateUser(ctx, &newUser)
	if err != nil {
		if errors.Is(err, types.ErrDuplicateEmail) {
			return uuid.UUID{}, ErrNotUniqueEmail
		}
		s.log.Error(ctx, "Failed to save user", err)
		return uuid.UUID{}, ErrUnexpected
	}

	return id, nil
}

// Refresh exchanges a refresh token for a new token pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	ctx = wrap.WithAction(ctx, "refresh")
	return s.tokenService.Refresh(ctx, refreshToken)
}

// RoleCheck resolves the user behind an access token.
func (s *AuthService) RoleCheck(ctx context.Context, token string) (*models.User, error) {
	claim, err := s.tokenService.Validate(ctx, token)
	if err != nil {
		s.log.Error(ctx, "Access token is invalid", err)
		return nil, ErrInvalidToken
	}

	if claim.TokenType != models.AccessToken {
		return nil, ErrInvalidToken
	}

	existUser, err := s.userRepo.GetUserByID(ctx, claim.UserID)
	if err != nil {
		if errors.Is(err, types.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, ErrUnexpected
	}

	return existUser, nil
}
