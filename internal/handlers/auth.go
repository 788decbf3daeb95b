package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/store-management-api/internal/constants"
	"github.com/yukikurage/store-management-api/internal/dto"
	apierrors "github.com/yukikurage/store-management-api/internal/errors"
	"github.com/yukikurage/store-management-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new user. The password is optional.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Username string  `json:"username" binding:"required,min=3,max=100"`
		Email    string  `json:"email" binding:"required,email"`
		Password *string `json:"password" binding:"omitempty,min=5"`
	}

	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, "register", err)
		return
	}

	respondSuccess(c, http.StatusCreated, dto.ToUserDTO(*user), "User created")
}

// Login authenticates a user by username or email and issues a token pair.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		// Username or email
		UserID   string `json:"userId" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Identifier: req.UserID,
		Password:   req.Password,
	})
	if err != nil {
		respondAuthError(c, "login", err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.LoginDTO{
		User:         dto.ToUserDTO(*result.User),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	}, "Logged in successfully")
}

// AccessToken rotates a refresh token. The token comes from the JSON body, or
// from the query string on GET.
func (h *AuthHandler) AccessToken(c *gin.Context) {
	type AccessTokenRequest struct {
		RefreshToken string `json:"refreshToken"`
	}

	var req AccessTokenRequest
	if c.Request.Method == http.MethodGet {
		req.RefreshToken = c.Query("refreshToken")
	} else if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.BadRequest(c, "Invalid request body")
			return
		}
	}

	pair, err := h.authService.RotateRefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondAuthError(c, "rotate refresh token", err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.TokenPairDTO{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, "Access token generated")
}

// UserDetails returns the authenticated user with their store assignments.
func (h *AuthHandler) UserDetails(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.UserDetails(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.BadRequest(c, "User not found")
			return
		}
		respondInternalError(c, "user details", err)
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToUserDetailsDTO(*user), "User details fetched")
}

// Logout clears the stored refresh token of the authenticated user.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.authService.Logout(c.Request.Context(), userID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.Unauthorized(c, "User not found")
			return
		}
		respondInternalError(c, "logout", err)
		return
	}

	respondSuccess(c, http.StatusOK, nil, "Logged out successfully")
}

func respondAuthError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, services.ErrUsernameTooShort):
		apierrors.BadRequest(c, fmt.Sprintf("Username should be min %d characters", constants.MinUsernameLength))
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, fmt.Sprintf("Password should be min %d characters", constants.MinPasswordLength))
	case errors.Is(err, services.ErrUserAlreadyExists):
		apierrors.Conflict(c, "Username or email already exists")
	case errors.Is(err, services.ErrNoUserFound):
		apierrors.UnauthorizedWithCode(c, apierrors.ErrCodeInvalidCredentials, "No user found")
	case errors.Is(err, services.ErrInvalidPassword):
		apierrors.UnauthorizedWithCode(c, apierrors.ErrCodeInvalidCredentials, "Invalid password")
	case errors.Is(err, services.ErrRefreshTokenRequired):
		apierrors.BadRequest(c, "Refresh token required")
	case errors.Is(err, services.ErrRefreshTokenNotActive):
		apierrors.Unauthorized(c, "Invalid refresh token")
	case errors.Is(err, services.ErrTokenExpired):
		apierrors.UnauthorizedWithCode(c, apierrors.ErrCodeTokenExpired, "Token expired")
	case errors.Is(err, services.ErrTokenInvalid):
		apierrors.Unauthorized(c, "Invalid token")
	default:
		respondInternalError(c, op, err)
	}
}
