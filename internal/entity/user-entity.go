package entity

import "time"

// UserEntity repräsentiert die Benutzerdaten in der Datenbank.
type UserEntity struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        UserRole  `json:"role"`
	CompanyID   *string   `json:"company_id,omitempty"`
	CompanyName *string   `json:"company_name,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// Actor ist der aktuelle Benutzer einer Anfrage. Die Rolle wird immer explizit übergeben.
type Actor struct {
	UserID    string   `json:"user_id"`
	Role      UserRole `json:"role"`
	CompanyID *string  `json:"company_id,omitempty"`
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanSetSubTaskStatus entspricht dem Statusfeld im Fortschrittsformular: nur Manager und Admins.
func (a Actor) CanSetSubTaskStatus() bool {
	return a.Role == RoleAdmin || a.Role == RoleManager
}

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleStaff   UserRole = "staff"
)

func (u UserRole) IsValid() bool {
	switch u {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	}

	return false
}

// UserListFilter schränkt die Benutzerauswahl ein. Nil-Felder filtern nicht.
type UserListFilter struct {
	Role      *string
	CompanyID *string
	UserID    *string
}
