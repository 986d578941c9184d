package model

import "time"

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// AdminUser là tài khoản quản trị. Passwords are stored in plaintext by
// product decision (internal tool, plain comparison on login).
type AdminUser struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"type:varchar(50);default:'admin'" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

// EmployeeIdentity is the ephemeral (non-persisted) identity constructed for
// an employee login; it never touches the database.
type EmployeeIdentity struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
