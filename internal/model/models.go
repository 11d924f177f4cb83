package model

import (
	"time"

	"github.com/google/uuid"
)

type Outcome string

const (
	OutcomeOK             Outcome = "ok"
	OutcomeAPIError       Outcome = "api_error"
	OutcomeTransportError Outcome = "transport_error"
	OutcomeParseError     Outcome = "parse_error"
	OutcomeInvalid        Outcome = "invalid"
	OutcomeError          Outcome = "error"
)

// JournalEntry records one tool invocation against Billplz.
type JournalEntry struct {
	ID           uuid.UUID `json:"id"`
	Tool         string    `json:"tool"`
	ResourceID   string    `json:"resource_id,omitempty"`
	Outcome      Outcome   `json:"outcome"`
	StatusCode   int       `json:"status_code,omitempty"`
	ErrorType    string    `json:"error_type,omitempty"`
	ErrorMessage string    `json:"error_message,omitempty"`
	DurationMS   int64     `json:"duration_ms"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToolStats aggregates the journal for one tool.
type ToolStats struct {
	Tool                string     `json:"tool"`
	CallCount           int        `json:"call_count"`
	OKCount             int        `json:"ok_count"`
	APIErrorCount       int        `json:"api_error_count"`
	TransportErrorCount int        `json:"transport_error_count"`
	OtherErrorCount     int        `json:"other_error_count"`
	SuccessRate         float64    `json:"success_rate"`
	AvgDurationMS       float64    `json:"avg_duration_ms"`
	MaxDurationMS       int64      `json:"max_duration_ms"`
	LastCalledAt        *time.Time `json:"last_called_at,omitempty"`
	Calls24h            int        `json:"calls_24h"`
	ActivityStatus      string     `json:"activity_status"`
}

type StatsSummary struct {
	TotalCalls         int     `json:"total_calls"`
	TotalOK            int     `json:"total_ok"`
	OverallSuccessRate float64 `json:"overall_success_rate"`
	ActiveTools        int     `json:"active_tools"`
	LowActivityTools   int     `json:"low_activity_tools"`
	InactiveTools      int     `json:"inactive_tools"`
}

const (
	ActivityActive      = "ACTIVE"
	ActivityLowActivity = "LOW_ACTIVITY"
	ActivityInactive    = "INACTIVE"
)
