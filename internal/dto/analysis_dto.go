package dto

import "time"

type AnalyzeResponse struct {
	Analysis  string    `json:"analysis"`
	Filename  string    `json:"filename"`
	FileType  string    `json:"file_type"`
	Timestamp time.Time `json:"timestamp"`
}
