package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. Only the bcrypt hash of the
// password is ever stored.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Username     string    `json:"username" gorm:"type:varchar(50);not null;uniqueIndex"`
	Email        string    `json:"email" gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"type:varchar(100);not null"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new active User with the given password hash
func NewUser(username, email, passwordHash string) *User {
	return &User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     true,
	}
}
