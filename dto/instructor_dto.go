package dto

import (
	"youwilldrive/domain"
)

type CarPayload struct {
	Model       string `json:"model" binding:"required,max=60"`
	PlateNumber string `json:"plateNumber" binding:"required,max=12"`
	Color       string `json:"color" binding:"omitempty,max=30"`
}

type ConfigureCarsRequest struct {
	Cars []CarPayload `json:"cars" binding:"required,dive"`
}

func MapConfigureCarsRequest(req *ConfigureCarsRequest) []domain.Car {
	cars := make([]domain.Car, len(req.Cars))
	for i, c := range req.Cars {
		cars[i] = domain.Car{
			Model:       c.Model,
			PlateNumber: c.PlateNumber,
			Color:       c.Color,
		}
	}
	return cars
}
