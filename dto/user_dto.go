package dto

import (
	"youwilldrive/domain"
)

type CreateUserRequest struct {
	FirstName  string `json:"firstName" binding:"required,min=1,max=50"`
	LastName   string `json:"lastName" binding:"required,min=1,max=50"`
	Patronymic string `json:"patronymic" binding:"omitempty,max=50"`
	Phone      string `json:"phone" binding:"required,ruphone"`
	Password   string `json:"password" binding:"required,min=6"`
	Role       string `json:"role" binding:"required,oneof=admin instructor cadet"`
}

type UpdateUserRequest struct {
	FirstName  string `json:"firstName" binding:"required,min=1,max=50"`
	LastName   string `json:"lastName" binding:"required,min=1,max=50"`
	Patronymic string `json:"patronymic" binding:"omitempty,max=50"`
	Phone      string `json:"phone" binding:"required,ruphone"`
	Password   string `json:"password" binding:"omitempty,min=6"`
}

func MapCreateUserRequest(req *CreateUserRequest) domain.NewUser {
	return domain.NewUser{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Patronymic: req.Patronymic,
		Phone:      req.Phone,
		Password:   req.Password,
		Role:       req.Role,
	}
}

func MapUpdateUserRequest(req *UpdateUserRequest) domain.UserUpdate {
	return domain.UserUpdate{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Patronymic: req.Patronymic,
		Phone:      req.Phone,
		Password:   req.Password,
	}
}
