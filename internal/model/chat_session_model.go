package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title         string    `gorm:"type:text;not null"`
	CreatedAt     time.Time `gorm:"not null;index"`
	LastMessageAt time.Time `gorm:"not null;index"`
	MessageCount  int       `gorm:"not null;default:0"`
	ModelProvider string    `gorm:"type:text"`
	ModelName     string    `gorm:"type:text"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
