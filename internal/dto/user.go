package dto

import (
	"time"

	"github.com/yukikurage/store-management-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	CreatedAt time.Time       `json:"createdAt"`
}

// UserDetailsDTO is a user together with the stores they are assigned to
type UserDetailsDTO struct {
	UserDTO
	Stores []StaffAssignmentDTO `json:"stores"`
}

// LoginDTO is returned by a successful login
type LoginDTO struct {
	User         UserDTO `json:"user"`
	AccessToken  string  `json:"accessToken"`
	RefreshToken string  `json:"refreshToken"`
}

// TokenPairDTO is returned by a refresh token rotation
type TokenPairDTO struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

func ToUserDetailsDTO(user models.User) UserDetailsDTO {
	stores := make([]StaffAssignmentDTO, 0, len(user.Stores))
	for _, a := range user.Stores {
		stores = append(stores, ToStaffAssignmentDTO(a))
	}
	return UserDetailsDTO{
		UserDTO: ToUserDTO(user),
		Stores:  stores,
	}
}
