package task_dto

import (
	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	"github.com/go-playground/validator/v10"
)

type ParamTaskID struct {
	ID string `params:"task_id" validate:"required,uuid"`
}

// LogSubTaskRequest entspricht dem Fortschrittsformular eines Tages.
type LogSubTaskRequest struct {
	Date        string   `json:"date" validate:"required,calendarDate"`
	Description string   `json:"description" validate:"required,max=500"`
	HoursSpent  *float64 `json:"hours_spent,omitempty" validate:"omitempty,min=0,max=9"`
	Remarks     *string  `json:"remarks,omitempty" validate:"omitempty,max=1000"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,subTaskStatus"`
	DayRemarks  *string  `json:"day_remarks,omitempty" validate:"omitempty,max=1000"`
}

func IsValidSubTaskStatus(fl validator.FieldLevel) bool {
	return entity.SubTaskStatus(fl.Field().String()).IsValid()
}

func IsValidCalendarDate(fl validator.FieldLevel) bool {
	_, ok := entity.ParseDate(fl.Field().String())
	return ok
}
