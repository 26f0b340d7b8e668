package report_dto

import (
	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	"github.com/go-playground/validator/v10"
)

// MonthlySheetQuery sind die Filter der Monatsübersicht, wie sie vom Client kommen.
type MonthlySheetQuery struct {
	Month     int     `query:"month" json:"month" validate:"required,min=1,max=12"`
	Year      int     `query:"year" json:"year" validate:"required,min=1970,max=9999"`
	Role      *string `query:"role,omitempty" json:"role,omitempty" validate:"omitempty,userRole"`
	UserID    *string `query:"user_id,omitempty" json:"user_id,omitempty" validate:"omitempty,uuid"`
	CompanyID *string `query:"company_id,omitempty" json:"company_id,omitempty" validate:"omitempty,uuid"`
}

type FilterUsersQuery struct {
	Role *string `query:"role,omitempty" validate:"omitempty,userRole"`
}

type ParamExportID struct {
	ID string `params:"export_id" validate:"required,uuid"`
}

func IsValidUserRole(fl validator.FieldLevel) bool {
	return entity.UserRole(fl.Field().String()).IsValid()
}
