package types

import "strings"

const (
	OUTCOME_STATUS_PENDING   = "pending"
	OUTCOME_STATUS_RESPONDED = "responded"
	OUTCOME_STATUS_PAID      = "paid"
	OUTCOME_STATUS_GHOSTED   = "ghosted"
)

func ValidOutcomeStatus(str string) bool {
	switch strings.ToLower(str) {
	case OUTCOME_STATUS_PENDING, OUTCOME_STATUS_RESPONDED, OUTCOME_STATUS_PAID, OUTCOME_STATUS_GHOSTED:
		return true
	default:
		return false
	}
}

// JourneyOutcome 客户旅程的结果记录，每个客户保留一条 is_current 记录，历史记录归档保留
type JourneyOutcome struct {
	ID         string `json:"id" db:"id"`
	Appid      string `json:"appid" db:"appid"`
	ClientID   string `json:"client_id" db:"client_id"`
	Status     string `json:"status" db:"status"`
	Note       string `json:"note" db:"note"`
	RecorderID string `json:"recorder_id" db:"recorder_id"`
	IsCurrent  bool   `json:"is_current" db:"is_current"`
	RecordedAt int64  `json:"recorded_at" db:"recorded_at"`
}

// OutcomeCount 按状态聚合的客户数
type OutcomeCount struct {
	Status string `json:"status" db:"status"`
	Total  int64  `json:"total" db:"total"`
}

// HypothesisOutcome 内容修改假设与该客户当前结果的关联视图
type HypothesisOutcome struct {
	ClientID      string   `json:"client_id" db:"client_id"`
	Company       string   `json:"company" db:"company"`
	PageID        string   `json:"page_id" db:"page_id"`
	PageType      PageType `json:"page_type" db:"page_type"`
	Version       int64    `json:"version" db:"version"`
	Hypothesis    string   `json:"hypothesis" db:"hypothesis"`
	OutcomeStatus string   `json:"outcome_status" db:"outcome_status"`
	CreatedAt     int64    `json:"created_at" db:"created_at"`
}
