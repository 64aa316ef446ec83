package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a single row of users.csv once loaded.
type User struct {
	UserID   uuid.UUID `gorm:"type:uuid;primary_key;column:user_id" json:"user_id"`
	IsActive bool      `gorm:"not null" json:"is_active"`
}

// BeforeCreate hook for User
func (u *User) BeforeCreate(tx *gorm.DB) error {
	return u.Validate()
}

func (u *User) Validate() error {
	if u.UserID == uuid.Nil {
		return ErrMissingUserID
	}
	return nil
}

// TableName returns the table name for User
func (u *User) TableName() string {
	return "users"
}
