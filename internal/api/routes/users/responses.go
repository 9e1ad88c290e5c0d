package users

import (
	"github.com/matt-dz/recipebox/internal/account"
	"github.com/matt-dz/recipebox/internal/social"
)

type RegisterResponse struct {
	Form account.RegisterForm `json:"form"`
}

type LoginResponse struct {
	Form account.LoginForm `json:"form"`
	// Next is where a successful login continues to.
	Next string `json:"next,omitempty"`
}

type ProfileResponse struct {
	social.ProfilePage
	// Form is set on the viewer's own profile.
	Form *account.ProfileForm `json:"form,omitempty"`
}
