package user_repo

import (
	"context"

	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
)

type UserRepoContract interface {
	FindByUserID(ctx context.Context, userID string) (*entity.UserEntity, *app_errors.AppError)
	ListUsers(ctx context.Context, filter *entity.UserListFilter) ([]entity.UserEntity, *app_errors.AppError)
	ListActiveUsers(ctx context.Context) ([]entity.UserEntity, *app_errors.AppError)
}
