package entity

import (
	"time"

	"github.com/google/uuid"
)

// DocumentAnalysis records the result of running one uploaded file through
// the LLM. SessionId is informational only, no referential integrity.
type DocumentAnalysis struct {
	Id             uuid.UUID
	Filename       string
	FileType       string
	AnalysisResult string
	CreatedAt      time.Time
	SessionId      uuid.UUID
}
