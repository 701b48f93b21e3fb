package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatRequest struct {
	Message       string `json:"message" validate:"required"`
	SessionId     string `json:"session_id" validate:"omitempty,uuid"`
	ModelProvider string `json:"model_provider"`
	ModelName     string `json:"model_name"`
	SystemMessage string `json:"system_message"`
}

type ModelInfo struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

type ChatResponse struct {
	Response  string    `json:"response"`
	SessionId uuid.UUID `json:"session_id"`
	ModelInfo ModelInfo `json:"model_info"`
	Timestamp time.Time `json:"timestamp"`
}

type SessionResponse struct {
	Id            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	CreatedAt     time.Time `json:"created_at"`
	LastMessageAt time.Time `json:"last_message_at"`
	MessageCount  int       `json:"message_count"`
	ModelProvider string    `json:"model_provider"`
	ModelName     string    `json:"model_name"`
}

type MessageResponse struct {
	Id            uuid.UUID `json:"id"`
	Role          string    `json:"role"`
	Content       string    `json:"content"`
	Timestamp     time.Time `json:"timestamp"`
	SessionId     uuid.UUID `json:"session_id"`
	ModelProvider string    `json:"model_provider,omitempty"`
	ModelName     string    `json:"model_name,omitempty"`
}

type DeleteSessionResponse struct {
	Message string `json:"message"`
}
