package model

import "time"

// 转换记录状态
const (
	RemapStatusProcessing = "processing"
	RemapStatusDone       = "done"
	RemapStatusFailed     = "failed"
)

// RemapLog 一次清单转换的记录
type RemapLog struct {
	ID           int64      `json:"id"`
	Filename     string     `json:"filename"`
	FileSize     int64      `json:"fileSize"`
	MAWB         string     `json:"mawb"`
	Airport      Airport    `json:"airport"`
	OutputRows   int        `json:"outputRows"`
	IssueRows    int        `json:"issueRows"`
	Status       string     `json:"status"`
	ErrorMessage string     `json:"errorMessage,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}
