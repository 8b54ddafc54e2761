package model

import "time"

type User struct {
	ID           uint64 `gorm:"primaryKey"`
	FirstName    string `gorm:"size:64;not null"`
	LastName     string `gorm:"size:64;not null"`
	Email        string `gorm:"uniqueIndex;size:128;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Phone        string `gorm:"size:32"`
	ProfileImage string `gorm:"size:512"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
