package dto

import (
	"time"

	"github.com/prodcat/catalog_backend_app/internal/core/domain"
)

// UserResponse is the public view of a user. The password hash is stripped
// here and nowhere else relies on remembering to omit it.
type UserResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Avatar          *string   `json:"avatar,omitempty"`
	IsActive        bool      `json:"isActive"`
	IsEmailVerified bool      `json:"isEmailVerified"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ToUserResponse converts a domain.User to its public view.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:              user.UserID,
		Name:            user.Name,
		Email:           user.Email,
		Avatar:          user.Avatar,
		IsActive:        user.IsActive,
		IsEmailVerified: user.IsEmailVerified,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

// UpdateUserRequest defines the data allowed for updating a profile.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateUserRequest struct {
	Name   *string `json:"name" binding:"omitempty,max=100"`
	Email  *string `json:"email" binding:"omitempty,email"`
	Avatar *string `json:"avatar" binding:"omitempty,max=500"`
}

// UserStatsResponse summarises a user's account activity.
type UserStatsResponse struct {
	TotalProducts  int64     `json:"totalProducts"`
	ActiveProducts int64     `json:"activeProducts"`
	MemberSince    time.Time `json:"memberSince"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

// ToUserStatsResponse converts domain.UserStats to its response form.
func ToUserStatsResponse(stats *domain.UserStats) UserStatsResponse {
	return UserStatsResponse{
		TotalProducts:  stats.TotalProducts,
		ActiveProducts: stats.ActiveProducts,
		MemberSince:    stats.MemberSince,
		LastUpdated:    stats.LastUpdated,
	}
}
