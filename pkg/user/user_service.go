package user

import (
	"GameVault-Backend/domain"
	"GameVault-Backend/entities"
	"GameVault-Backend/internal/utils"
	"GameVault-Backend/internal/utils/mailing"
	"GameVault-Backend/internal/utils/storage"
	"GameVault-Backend/pkg/jwt"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		SendVerificationEmail(ctx context.Context, req domain.SendVerifyEmailRequest) error
		VerifyEmail(ctx context.Context, token string) error
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) (domain.UserResponse, error)
		UploadAvatar(ctx context.Context, file *multipart.FileHeader, userID string) (string, error)
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.UserResponse{}, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, err
	}

	if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
		return domain.UserResponse{}, domain.ErrUsernameAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserResponse{}, domain.ErrHashPassword
	}

	user := entities.User{
		ID:             uuid.New(),
		Username:       req.Username,
		FullName:       req.FullName,
		Email:          req.Email,
		Password:       string(hashed),
		Role:           domain.RoleUser,
		FavoriteGenres: "[]",
	}

	if err := s.userRepository.CreateUser(ctx, &user); err != nil {
		return domain.UserResponse{}, err
	}

	// Verification mail failure does not fail registration, users can re-request.
	_ = s.sendVerificationMail(user.Email)

	return toUserResponse(&user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	return domain.LoginResponse{
		Token: token,
		Role:  user.Role,
	}, nil
}

func (s *userService) SendVerificationEmail(ctx context.Context, req domain.SendVerifyEmailRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if user.IsVerified {
		return domain.ErrEmailAlreadyVerified
	}

	return s.sendVerificationMail(user.Email)
}

func (s *userService) sendVerificationMail(email string) error {
	token, err := s.jwtService.GenerateTokenForgetPassword(
		map[string]any{"email": email, "purpose": "verify_email"},
		time.Hour*24,
	)
	if err != nil {
		return err
	}

	verifyLink := fmt.Sprintf("%s/api/v1/users/verify?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>Welcome to GameVault!</p>"+
			"<p>Click <a href=\"%s\">here</a> to verify your email address. The link expires in 24 hours.</p>",
		verifyLink,
	)

	return mailing.SendMail(email, "Verify your GameVault account", body)
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateTokenForgetPassword(token)
	if err != nil {
		return err
	}

	if purpose, _ := claims["purpose"].(string); purpose != "verify_email" {
		return domain.ErrTokenInvalid
	}

	email, _ := claims["email"].(string)
	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if user.IsVerified {
		return domain.ErrEmailAlreadyVerified
	}

	user.IsVerified = true
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	if req.Username != "" && req.Username != user.Username {
		if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
			return domain.UserResponse{}, domain.ErrUsernameAlreadyExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, err
		}
		user.Username = req.Username
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}

	if req.FavoriteGenres != nil {
		genresJSON, err := json.Marshal(req.FavoriteGenres)
		if err != nil {
			return domain.UserResponse{}, err
		}
		user.FavoriteGenres = string(genresJSON)
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func (s *userService) UploadAvatar(ctx context.Context, file *multipart.FileHeader, userID string) (string, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}

	var objectKey string
	if user.AvatarURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(user.AvatarURL)
		if existingKey != "" {
			objectKey, err = s.s3.UpdateFile(existingKey, file, storage.AllowImage...)
		} else {
			objectKey, err = s.s3.UploadFile(user.ID.String(), file, "avatars", storage.AllowImage...)
		}
	} else {
		objectKey, err = s.s3.UploadFile(user.ID.String(), file, "avatars", storage.AllowImage...)
	}
	if err != nil {
		return "", err
	}

	user.AvatarURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return "", err
	}

	return user.AvatarURL, nil
}

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	token, err := s.jwtService.GenerateTokenForgetPassword(
		map[string]any{"email": user.Email, "purpose": "reset_password"},
		time.Minute*30,
	)
	if err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", utils.GetConfig("APP_URL"), token)
	body := fmt.Sprintf(
		"<p>We received a request to reset your GameVault password.</p>"+
			"<p>Click <a href=\"%s\">here</a> to choose a new one. The link expires in 30 minutes.</p>",
		resetLink,
	)

	return mailing.SendMail(user.Email, "Reset your GameVault password", body)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	claims, err := s.jwtService.ValidateTokenForgetPassword(req.Token)
	if err != nil {
		return err
	}

	if purpose, _ := claims["purpose"].(string); purpose != "reset_password" {
		return domain.ErrTokenInvalid
	}

	email, _ := claims["email"].(string)
	user, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.ErrHashPassword
	}

	user.Password = string(hashed)
	return s.userRepository.UpdateUser(ctx, user)
}

func toUserResponse(user *entities.User) domain.UserResponse {
	var favoriteGenres []string
	if err := json.Unmarshal([]byte(user.FavoriteGenres), &favoriteGenres); err != nil {
		favoriteGenres = []string{}
	}
	if favoriteGenres == nil {
		favoriteGenres = []string{}
	}

	return domain.UserResponse{
		ID:             user.ID.String(),
		Username:       user.Username,
		FullName:       user.FullName,
		Email:          user.Email,
		AvatarURL:      user.AvatarURL,
		FavoriteGenres: favoriteGenres,
		IsVerified:     user.IsVerified,
		CreatedAt:      user.CreatedAt,
	}
}
