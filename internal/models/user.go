package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserStatus is the account lifecycle state.
type UserStatus string

const (
	StatusActive              UserStatus = "active"
	StatusInactive            UserStatus = "inactive"
	StatusContactVerification UserStatus = "contact_verification"
)

// User represents a registered customer. The serial ID stays internal;
// PublicID is the identifier handed out to clients.
type User struct {
	ID           uint       `gorm:"primaryKey" json:"-"`
	PublicID     uuid.UUID  `gorm:"type:uuid;uniqueIndex" json:"user_uuid"`
	FullName     string     `json:"fullname"`
	Email        string     `gorm:"uniqueIndex" json:"email"`
	PasswordHash string     `json:"-"`
	Status       UserStatus `json:"status"`
	RegisteredAt time.Time  `gorm:"autoCreateTime" json:"registered_at"`
}

// BeforeCreate assigns the public UUID for new records.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.PublicID == uuid.Nil {
		u.PublicID = uuid.New()
	}
	return nil
}

func (User) TableName() string {
	return "users"
}
