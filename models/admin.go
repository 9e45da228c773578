package models

type Admin struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"unique;not null" json:"username"`
	HashPassword string `gorm:"not null" json:"-"`
	Role         string `gorm:"default:'admin'" json:"role"`
}
