package dto

import "github.com/aarondl/null/v8"

type CreateOrderTypeDTO struct {
	Name             string `json:"name" validate:"required,min=3,max=100"`
	BasePricePerPage string `json:"base_price_per_page" validate:"required"`
}

type UpdateOrderTypeDTO struct {
	Name             null.String `json:"name" validate:"omitempty"`
	BasePricePerPage null.String `json:"base_price_per_page" validate:"omitempty"`
}

type CreateAcademicLevelDTO struct {
	Name       string `json:"name" validate:"required,min=3,max=100"`
	Multiplier string `json:"multiplier" validate:"required"`
}

type UpdateAcademicLevelDTO struct {
	Name       null.String `json:"name" validate:"omitempty"`
	Multiplier null.String `json:"multiplier" validate:"omitempty"`
}

type CreateUrgencyDTO struct {
	Name       string `json:"name" validate:"required,min=3,max=100"`
	Hours      int    `json:"hours" validate:"required,gt=0"`
	Multiplier string `json:"multiplier" validate:"required"`
}

type UpdateUrgencyDTO struct {
	Name       null.String `json:"name" validate:"omitempty"`
	Hours      null.Int    `json:"hours" validate:"omitempty"`
	Multiplier null.String `json:"multiplier" validate:"omitempty"`
}
