package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FullName     string    `json:"full_name"`
	ContactNo    string    `json:"contact_no"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"created_at"`
}
