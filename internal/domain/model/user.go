package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"size:100;not null;uniqueIndex"`
	Name         string    `gorm:"size:100;not null"`
	PasswordHash string    `gorm:"column:password_hash;size:200;not null"`
	CreatedAt    time.Time `gorm:"default:now()"`
	UpdatedAt    time.Time `gorm:"default:now()"`

	Tasks []Task `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
