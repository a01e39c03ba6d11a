package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-delivery-api/internal/model"
	"go-delivery-api/internal/repository"
	"go-delivery-api/pkg/validator"

	"gorm.io/gorm"
)

var (
	ErrEmailExists = fmt.Errorf("%w: email already registered", ErrBadRequest)
)

type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	RegisterUser(ctx context.Context, req *RegisterUserRequest) (*model.User, error)
}

type RegisterUserRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userRepo.FindAll(ctx)
}

func (s *userService) RegisterUser(ctx context.Context, req *RegisterUserRequest) (*model.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, badRequest("%s", errs[0].Error())
	}

	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	user := &model.User{Name: req.Name, Email: req.Email}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
