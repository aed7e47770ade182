package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister       = "register success"
	MessageSuccessLogin          = "login success"
	MessageSuccessGetProfile     = "success get profile"
	MessageSuccessUpdateProfile  = "profile updated successfully"
	MessageSuccessUploadAvatar   = "avatar uploaded successfully"
	MessageSuccessSendVerifyMail = "verification email sent"
	MessageSuccessVerifyEmail    = "email verified successfully"
	MessageSuccessForgotPassword = "password reset email sent"
	MessageSuccessResetPassword  = "password reset successfully"

	MessageFailedRegister       = "failed to register"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetProfile     = "failed to get profile"
	MessageFailedUpdateProfile  = "failed to update profile"
	MessageFailedUploadAvatar   = "failed to upload avatar"
	MessageFailedSendVerifyMail = "failed to send verification email"
	MessageFailedVerifyEmail    = "failed to verify email"
	MessageFailedForgotPassword = "failed to process forgot password"
	MessageFailedResetPassword  = "failed to reset password"

	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrUsernameAlreadyExists = errors.New("username already taken")
	ErrUserNotFound          = errors.New("user not found")
	ErrCredentialsInvalid    = errors.New("invalid email or password")
	ErrEmailNotVerified      = errors.New("email not verified")
	ErrEmailAlreadyVerified  = errors.New("email already verified")
	ErrHashPassword          = errors.New("failed to hash password")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=3,max=30"`
		FullName string `json:"full_name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateProfileRequest struct {
		Username       string   `json:"username,omitempty" validate:"omitempty,min=3,max=30"`
		FullName       string   `json:"full_name,omitempty"`
		FavoriteGenres []string `json:"favorite_genres,omitempty"`
	}

	SendVerifyEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}

	UserResponse struct {
		ID             string    `json:"id"`
		Username       string    `json:"username"`
		FullName       string    `json:"full_name"`
		Email          string    `json:"email"`
		AvatarURL      string    `json:"avatar_url,omitempty"`
		FavoriteGenres []string  `json:"favorite_genres"`
		IsVerified     bool      `json:"is_verified"`
		CreatedAt      time.Time `json:"created_at"`
	}
)
