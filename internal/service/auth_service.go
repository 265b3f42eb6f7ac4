package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ichaoui56/service-stock2/internal/apperr"
	"github.com/ichaoui56/service-stock2/internal/model"
	"github.com/ichaoui56/service-stock2/internal/repository"
	"github.com/ichaoui56/service-stock2/pkg/jwt"
)

type SignUpInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type AuthService interface {
	SignUp(input SignUpInput) (*model.UserResponse, error)
	Login(input LoginInput) (*LoginResponse, error)
	ValidateToken(tokenString string) (*model.UserResponse, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) SignUp(input SignUpInput) (*model.UserResponse, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return nil, apperr.DuplicateKey("User already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Failed("Failed to create user", err)
	}

	user := &model.User{
		Name:  input.Name,
		Email: input.Email,
		Role:  model.RoleUser,
	}
	if err := user.SetPassword(input.Password); err != nil {
		return nil, apperr.Failed("Failed to create user", err)
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, apperr.Failed("Failed to create user", err)
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *authService) Login(input LoginInput) (*LoginResponse, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		return nil, apperr.InvalidCredentials()
	}
	if !user.CheckPassword(input.Password) {
		return nil, apperr.InvalidCredentials()
	}

	// Rotate the token version so earlier sessions stop validating.
	user.TokenVersion = uuid.New().String()
	if err := s.userRepo.Update(user); err != nil {
		return nil, apperr.Failed("Failed to start session", err)
	}

	token, err := jwt.GenerateToken(user.ID, user.Email, user.Name, user.Role, user.TokenVersion)
	if err != nil {
		return nil, apperr.Failed("Failed to generate token", err)
	}

	return &LoginResponse{Token: token, User: user.ToResponse()}, nil
}

func (s *authService) ValidateToken(tokenString string) (*model.UserResponse, error) {
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, apperr.InvalidCredentials()
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, apperr.InvalidCredentials()
	}
	if user.TokenVersion != claims.TokenVersion {
		return nil, apperr.InvalidCredentials()
	}

	resp := user.ToResponse()
	return &resp, nil
}
