package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id            uuid.UUID
	Title         string
	CreatedAt     time.Time
	LastMessageAt time.Time
	MessageCount  int
	ModelProvider string
	ModelName     string
}
