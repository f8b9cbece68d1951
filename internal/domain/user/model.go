package user

import "time"

type Role string

const (
	RoleNgoAdmin Role = "ngo_admin"
	RoleFunder   Role = "funder"
	RoleProvider Role = "service_provider"
	RoleAdmin    Role = "platform_admin"
)

// SelfRegisterRoles are the roles accepted at signup. Admin accounts are
// provisioned out of band.
var SelfRegisterRoles = []Role{RoleNgoAdmin, RoleFunder, RoleProvider}

type User struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Email      string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Password   string    `json:"-" gorm:"size:255;not null"`
	Role       Role      `json:"role" gorm:"size:32;not null"`
	IsVerified bool      `json:"is_verified" gorm:"default:false;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// AutoVerified reports whether a role skips manual verification. NGOs need
// an admin to verify them before the verified badge shows up.
func (r Role) AutoVerified() bool {
	return r != RoleNgoAdmin
}

func ValidSelfRegisterRole(s string) bool {
	for _, r := range SelfRegisterRoles {
		if string(r) == s {
			return true
		}
	}
	return false
}
