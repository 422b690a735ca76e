package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID          string    `gorm:"type:uuid;primary_key"`
	Username    string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Password    string    `gorm:"type:varchar(255);not null"`
	DisplayName string    `gorm:"type:varchar(100);not null"`
	Role        string    `gorm:"type:varchar(20);default:'member'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
