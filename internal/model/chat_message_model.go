package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role          string    `gorm:"type:text;not null"`
	Content       string    `gorm:"type:text;not null"`
	CreatedAt     time.Time `gorm:"not null;index"`
	ChatSessionId uuid.UUID `gorm:"type:uuid;not null;index"`
	ModelProvider string    `gorm:"type:text"`
	ModelName     string    `gorm:"type:text"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
