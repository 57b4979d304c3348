package model

import (
	"time"

	"github.com/google/uuid"
)

// UserIdea is a feedback-portal submission.
type UserIdea struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Votes       int       `gorm:"not null;default:0"`
	Status      string    `gorm:"type:varchar(30);not null;default:'under-consideration';index"`
	Category    string    `gorm:"type:varchar(50)"`
	Author      string    `gorm:"type:varchar(100)"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (UserIdea) TableName() string {
	return "user_ideas"
}
