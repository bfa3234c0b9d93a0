package dto

import (
	"youwilldrive/domain"
)

type CadetConfigRequest struct {
	PaymentPlan  string  `json:"paymentPlan" binding:"required"`
	InstructorID string  `json:"instructorId" binding:"required"`
	IsAutomatic  bool    `json:"isAutomatic"`
	SpentHours   float64 `json:"spentHours" binding:"omitempty,gte=0"`
	BonusHours   float64 `json:"bonusHours" binding:"omitempty,gte=0"`
}

func MapCadetConfigRequest(req *CadetConfigRequest) domain.CadetConfig {
	return domain.CadetConfig{
		PaymentPlan:  req.PaymentPlan,
		InstructorID: req.InstructorID,
		IsAutomatic:  req.IsAutomatic,
		SpentHours:   req.SpentHours,
		BonusHours:   req.BonusHours,
	}
}
