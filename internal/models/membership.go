package models

import "time"

// Membership links a user to a team. The composite primary key keeps a
// (team, user) pair unique; re-adding a pair overwrites the owner flag
// instead of duplicating the row.
type Membership struct {
	TeamName  string    `gorm:"column:team_name;type:varchar(255);primaryKey" json:"team_name"`
	UserEmail string    `gorm:"column:user_email;type:varchar(255);primaryKey" json:"user_email"`
	IsOwner   bool      `gorm:"column:user_owner;not null" json:"user_owner"`
	JoinedAt  time.Time `gorm:"column:joined_at;autoCreateTime" json:"joined_at"`
}

func (Membership) TableName() string {
	return "member_table"
}
