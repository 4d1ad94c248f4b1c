package services

import (
	"crudboard_backend/internal/auth"
	"crudboard_backend/internal/models"
	"crudboard_backend/internal/repositories"
	"crudboard_backend/internal/services/dto"
	"crudboard_backend/pkg/apperrors"
)

type UserService interface {
	AdminCreateUser(req *dto.AdminCreateUserRequest) (*dto.UserDTO, error)
	ListUsers(limit, offset int) ([]dto.UserDTO, error)
	GetUser(id string) (*dto.UserDTO, error)
	DeleteUser(id string) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// AdminCreateUser creates a user on behalf of an administrator.
// Admin-created accounts are pre-verified and may hold any role.
func (s *UserServiceImpl) AdminCreateUser(req *dto.AdminCreateUserRequest) (*dto.UserDTO, error) {
	role := req.Role
	if role == "" {
		role = models.UserRoleUser
	}
	if !role.IsValid() {
		return nil, apperrors.NewBadRequestError("Invalid role")
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		FirstName:    req.FirstName,
		Email:        req.Email,
		Country:      req.Country,
		PasswordHash: hashedPassword,
		Role:         role,
		Verified:     true,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return dto.NewUserDTO(user), nil
}

func (s *UserServiceImpl) ListUsers(limit, offset int) ([]dto.UserDTO, error) {
	users, err := s.userRepo.FindAll(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		result = append(result, *dto.NewUserDTO(&users[i]))
	}
	return result, nil
}

// DeleteUser removes a user account and is reserved for admins; the
// handler layer enforces the role.
func (s *UserServiceImpl) DeleteUser(id string) error {
	if err := s.userRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) GetUser(id string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserDTO(user), nil
}
