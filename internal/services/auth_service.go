package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/store-management-api/internal/constants"
	"github.com/yukikurage/store-management-api/internal/models"
	"github.com/yukikurage/store-management-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserAlreadyExists     = errors.New("username or email already exists")
	ErrNoUserFound           = errors.New("no user found")
	ErrInvalidPassword       = errors.New("invalid password")
	ErrUserNotFound          = errors.New("user not found")
	ErrRefreshTokenRequired  = errors.New("refresh token required")
	ErrRefreshTokenNotActive = errors.New("invalid refresh token")
	ErrFailedToHashPassword  = errors.New("failed to hash password")
	ErrPasswordTooShort      = errors.New("password too short")
	ErrUsernameTooShort      = errors.New("username too short")
)

// AuthService handles registration, login and the refresh token lifecycle.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// RegisterInput represents the information needed to create a user.
// Password is optional; without it the account cannot log in.
type RegisterInput struct {
	Username string
	Email    string
	Password *string
}

// Register creates a new user.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if len(username) < constants.MinUsernameLength {
		return nil, ErrUsernameTooShort
	}
	if input.Password != nil && len(*input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByUsernameOrEmail(ctx, username, email); err == nil {
		return nil, ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Role:     models.UserRoleUser,
	}

	if input.Password != nil {
		hash, err := HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = &hash
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication. Identifier is matched
// against both username and email.
type LoginInput struct {
	Identifier string
	Password   string
}

// LoginResult is the authenticated user with a fresh token pair.
type LoginResult struct {
	User         *models.User
	AccessToken  string
	RefreshToken string
}

// Login verifies credentials, issues a token pair and stores the refresh token,
// replacing any token issued before.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.FindByUsernameOrEmail(ctx, input.Identifier, input.Identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoUserFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !user.HasPassword() || !VerifyPassword(input.Password, *user.PasswordHash) {
		return nil, ErrInvalidPassword
	}

	pair, err := s.issuePair(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User:         user,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// TokenPair is an access token with the refresh token that replaced the
// previously stored one.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RotateRefreshToken exchanges a refresh token for a new pair. The token must
// both equal the value currently stored on a user and carry a valid signature;
// a superseded token fails the first check even while its signature is valid.
func (s *AuthService) RotateRefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, ErrRefreshTokenRequired
	}

	holder, err := s.userRepo.FindByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshTokenNotActive
		}
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	userID, err := s.tokens.VerifyToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if userID != holder.ID {
		return nil, ErrTokenInvalid
	}

	return s.issuePair(ctx, userID)
}

// Logout clears the stored refresh token so no rotation can succeed until the
// next login.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return err
	}

	if err := s.userRepo.SetRefreshToken(ctx, userID, nil); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// UserDetails returns a user with the stores they are assigned to.
func (s *AuthService) UserDetails(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.FindWithStores(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user details: %w", err)
	}

	return user, nil
}

func (s *AuthService) issuePair(ctx context.Context, userID string) (*TokenPair, error) {
	accessToken, err := s.tokens.IssueAccessToken(userID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.IssueRefreshToken(userID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.SetRefreshToken(ctx, userID, &refreshToken); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrFailedToHashPassword
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the bcrypt hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
