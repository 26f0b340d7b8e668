package report_case

import (
	"context"

	report_dto "github.com/Xenn-00/arbeitszeit-meister/internal/dtos/report-dto"
	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
	"github.com/gofiber/fiber/v2"
)

// scopeFilter schränkt den angefragten Filter auf das ein, was die Rolle des Benutzers sehen darf.
//
//   - admin: alle Firmen und Benutzer
//   - manager: nur die eigene Firma; ein Benutzerfilter muss auf sich selbst oder Staff dieser Firma zeigen
//   - staff: immer nur die eigenen Aufgaben
func (s *ReportService) scopeFilter(ctx context.Context, actor entity.Actor, query *report_dto.MonthlySheetQuery) (*entity.TaskListFilter, *app_errors.AppError) {
	filter := &entity.TaskListFilter{
		Month: query.Month,
		Year:  query.Year,
	}

	switch actor.Role {
	case entity.RoleAdmin:
		filter.Role = query.Role
		filter.UserID = query.UserID
		filter.CompanyID = query.CompanyID

	case entity.RoleManager:
		if actor.CompanyID == nil {
			return nil, forbidden()
		}
		if query.CompanyID != nil && *query.CompanyID != *actor.CompanyID {
			return nil, forbidden()
		}
		companyID := *actor.CompanyID
		filter.CompanyID = &companyID
		filter.Role = query.Role

		if query.UserID != nil && *query.UserID != actor.UserID {
			user, err := s.userRepo.FindByUserID(ctx, *query.UserID)
			if err != nil {
				if err.Code == fiber.StatusNotFound {
					return nil, forbidden()
				}
				return nil, err
			}
			if user.Role != entity.RoleStaff || user.CompanyID == nil || *user.CompanyID != companyID {
				return nil, forbidden()
			}
		}
		filter.UserID = query.UserID

	case entity.RoleStaff:
		if query.UserID != nil && *query.UserID != actor.UserID {
			return nil, forbidden()
		}
		self := actor.UserID
		filter.UserID = &self

	default:
		return nil, forbidden()
	}

	return filter, nil
}

func forbidden() *app_errors.AppError {
	return app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "forbidden", nil)
}
