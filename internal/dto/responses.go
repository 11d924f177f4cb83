package dto

import (
	"encoding/json"

	"github.com/anyulbade/billplz/internal/model"
)

type ParamInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

type ToolInfo struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Params      []ParamInfo `json:"params"`
}

type ToolListResponse struct {
	Data []ToolInfo `json:"data"`
}

type ToolResultResponse struct {
	Tool string          `json:"tool"`
	Data json.RawMessage `json:"data"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type JournalListResponse struct {
	Data       []model.JournalEntry `json:"data"`
	Pagination Pagination           `json:"pagination"`
}

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type JournalStatsResponse struct {
	Data    []model.ToolStats  `json:"data"`
	Summary model.StatsSummary `json:"summary"`
}
