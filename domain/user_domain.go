package domain

import (
	"errors"
)

var (
	MessageSuccessRegister         = "user created"
	MessageSuccessLogin            = "login succeeded"
	MessageSuccessLogout           = "logout succeeded"
	MessageSuccessGetMe            = "success get profile"
	MessageSuccessUpdateProfilePic = "profile picture updated"
	MessageSuccessRemoveProfilePic = "profile picture removed"

	MessageFailedRegister         = "failed to register user"
	MessageFailedLogin            = "failed to login"
	MessageFailedGetMe            = "failed to get profile"
	MessageFailedUpdateProfilePic = "failed to update profile picture"

	ErrUsernameTaken = errors.New("Username taken")
	// ErrCredentialsIncorrect is returned for unknown usernames and wrong
	// passwords alike so callers cannot enumerate accounts.
	ErrCredentialsIncorrect = errors.New("Username or Password incorrect")
	ErrNoActiveSession      = errors.New("no active session")
	ErrUserNotFound         = errors.New("user not found")
)

type (
	RegisterRequest struct {
		Username   string `json:"username" validate:"required,min=3,max=30,alphanum"`
		FirstName  string `json:"firstname" validate:"required"`
		LastName   string `json:"lastname" validate:"required"`
		Country    string `json:"country" validate:"required"`
		Password   string `json:"password" validate:"required,min=5,max=64"`
		Email      string `json:"email" validate:"required,email"`
		ProfilePic string `json:"profilePic,omitempty" validate:"omitempty,url"`
	}

	RegisterResponse struct {
		UserID string `json:"user_id"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	UserProfile struct {
		ID         string `json:"id"`
		Username   string `json:"username"`
		FirstName  string `json:"firstname"`
		LastName   string `json:"lastname"`
		Email      string `json:"email"`
		Country    string `json:"country"`
		ProfilePic string `json:"profilePic,omitempty"`
	}

	// LoginResponse carries the session token to the handler, which moves it
	// into the httpOnly cookie; the token never appears in the response body.
	LoginResponse struct {
		User  UserProfile `json:"user"`
		Token string      `json:"-"`
	}
)
