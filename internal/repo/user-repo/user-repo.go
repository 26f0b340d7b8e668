package user_repo

import (
	"context"
	"fmt"

	"github.com/Xenn-00/arbeitszeit-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitszeit-meister/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) UserRepoContract {
	return &UserRepo{
		db: db,
	}
}

const userColumns = `u.id, u.email, u.name, u.role, u.company_id, c.name, u.is_active, u.created_at`

func (r *UserRepo) FindByUserID(ctx context.Context, userID string) (*entity.UserEntity, *app_errors.AppError) {
	query := `SELECT ` + userColumns + `
	FROM users u
	LEFT JOIN companies c ON c.id = u.company_id
	WHERE u.id = $1 LIMIT 1;
	`

	u, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, app_errors.MapPgxError(err, "user_not_found")
	}
	return u, nil
}

// ListUsers liefert aktive Benutzer für die Filterauswahl, sortiert nach Name.
func (r *UserRepo) ListUsers(ctx context.Context, filter *entity.UserListFilter) ([]entity.UserEntity, *app_errors.AppError) {
	query := `SELECT ` + userColumns + `
	FROM users u
	LEFT JOIN companies c ON c.id = u.company_id
	WHERE u.is_active = TRUE
	`
	args := []any{}
	argsPos := 1

	if filter.Role != nil {
		query += fmt.Sprintf(" AND u.role = $%d", argsPos)
		args = append(args, *filter.Role)
		argsPos++
	}

	if filter.CompanyID != nil {
		query += fmt.Sprintf(" AND u.company_id = $%d", argsPos)
		args = append(args, *filter.CompanyID)
		argsPos++
	}

	if filter.UserID != nil {
		query += fmt.Sprintf(" AND u.id = $%d", argsPos)
		args = append(args, *filter.UserID)
		argsPos++
	}

	query += " ORDER BY u.name, u.id;"

	return r.queryUsers(ctx, query, args...)
}

func (r *UserRepo) ListActiveUsers(ctx context.Context) ([]entity.UserEntity, *app_errors.AppError) {
	query := `SELECT ` + userColumns + `
	FROM users u
	LEFT JOIN companies c ON c.id = u.company_id
	WHERE u.is_active = TRUE
	ORDER BY u.created_at, u.id;
	`
	return r.queryUsers(ctx, query)
}

func (r *UserRepo) queryUsers(ctx context.Context, query string, args ...any) ([]entity.UserEntity, *app_errors.AppError) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, app_errors.MapPgxError(err, "user_not_found")
	}
	defer rows.Close()

	users := []entity.UserEntity{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, app_errors.MapPgxError(err, "user_not_found")
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err, "user_not_found")
	}
	return users, nil
}

func scanUser(row pgx.Row) (*entity.UserEntity, error) {
	var (
		u    entity.UserEntity
		role string
	)
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &role, &u.CompanyID, &u.CompanyName, &u.IsActive, &u.CreatedAt); err != nil {
		return nil, err
	}
	u.Role = entity.UserRole(role)
	return &u, nil
}
