package models

import "time"

type User struct {
	Email     string    `gorm:"column:user_email;type:varchar(255);primaryKey" json:"user_email"`
	Nickname  string    `gorm:"column:user_nickname;type:varchar(255);not null" json:"user_nickname"`
	Image     string    `gorm:"column:user_image;type:varchar(512)" json:"user_image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "user_table"
}
