package dto

import (
	"time"

	"github.com/vpndash/vpndash/internal/domain/user"
)

// UserResponse is the profile shape served by the auth and profile endpoints.
type UserResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	SubscriptionPlan   string    `json:"subscriptionPlan"`
	PlanLabel          string    `json:"planLabel"`
	SubscriptionExpiry time.Time `json:"subscriptionExpiry"`
	TotalDataUsed      float64   `json:"totalDataUsed"`
	CreatedAt          time.Time `json:"createdAt"`
	LastLogin          time.Time `json:"lastLogin"`
}

func ToUserResponse(u *user.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:                 u.SID(),
		Name:               u.Name().String(),
		Email:              u.Email().String(),
		SubscriptionPlan:   u.Plan().String(),
		PlanLabel:          u.Plan().Label(),
		SubscriptionExpiry: u.SubscriptionExpiry(),
		TotalDataUsed:      u.TotalDataUsed(),
		CreatedAt:          u.CreatedAt(),
		LastLogin:          u.LastLogin(),
	}
}

type LoginResponse struct {
	User         *UserResponse `json:"user"`
	Token        string        `json:"token"`
	RefreshToken string        `json:"refreshToken"`
	ExpiresIn    int64         `json:"expiresIn"`
}

type TokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}
