package service

import (
	"context"

	"youwilldrive/domain"
)

type userService struct {
	userRepo domain.UserRepository
}

func NewUserService(userRepo domain.UserRepository) domain.UserUseCase {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.GetAllUsers(ctx)
}

func (s *userService) ProvisionUser(ctx context.Context, input domain.NewUser) (*domain.User, error) {
	if input.FirstName == "" || input.LastName == "" || input.Phone == "" || input.Password == "" || input.Role == "" {
		return nil, &domain.ValidationError{Message: "Все поля обязательны"}
	}
	switch input.Role {
	case domain.RoleAdmin, domain.RoleInstructor, domain.RoleCadet:
	default:
		return nil, &domain.ValidationError{Message: "Недопустимая роль"}
	}
	return s.userRepo.ProvisionUser(ctx, input)
}

func (s *userService) UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error) {
	if id == "" {
		return nil, &domain.ValidationError{Message: "Идентификатор пользователя обязателен"}
	}
	if upd.FirstName == "" || upd.LastName == "" || upd.Phone == "" {
		return nil, &domain.ValidationError{Message: "Все поля обязательны"}
	}
	return s.userRepo.UpdateUser(ctx, id, upd)
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return &domain.ValidationError{Message: "Идентификатор пользователя обязателен"}
	}
	return s.userRepo.DeleteUser(ctx, id)
}
