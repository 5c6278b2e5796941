// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

// User is an account row. Regular accounts and admin accounts share the
// same shape but live in disjoint tables; Role selects the partition.
type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
