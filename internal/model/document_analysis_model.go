package model

import (
	"time"

	"github.com/google/uuid"
)

type DocumentAnalysis struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Filename       string    `gorm:"type:text;not null"`
	FileType       string    `gorm:"type:text;not null"`
	AnalysisResult string    `gorm:"type:text;not null"`
	CreatedAt      time.Time `gorm:"not null;index"`
	SessionId      uuid.UUID `gorm:"type:uuid;index"` // no FK on purpose
}

func (DocumentAnalysis) TableName() string {
	return "document_analyses"
}
