package models

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User rows are created on the first successful external sign-in and
// refreshed on every login. The application never hard-deletes them.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	OpenID       string    `gorm:"size:64;uniqueIndex;not null" json:"openId"`
	Name         *string   `json:"name"`
	Email        *string   `gorm:"size:320" json:"email"`
	LoginMethod  *string   `gorm:"size:64" json:"loginMethod"`
	Role         Role      `gorm:"size:16;default:user;not null" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	LastSignedIn time.Time `gorm:"not null" json:"lastSignedIn"`
}
