package models

import "encoding/json"

// Envelope is the common response wrapper of every service endpoint.
// Data is decoded lazily because its shape depends on the action.
type Envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Timestamp int64           `json:"timestamp"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// ResourceRequest is the request body for paginated and single fetches.
type ResourceRequest struct {
	UserID int64  `json:"user_id"`
	Token  string `json:"token"`
	Action string `json:"action"`
	Page   *int   `json:"page,omitempty"`
	Limit  *int   `json:"limit,omitempty"`
}

// QuestActionRequest is the request body for quest_service actions.
type QuestActionRequest struct {
	UserID     int64   `json:"user_id"`
	Token      string  `json:"token"`
	Action     string  `json:"action"`
	Page       *int    `json:"page,omitempty"`
	Limit      *int    `json:"limit,omitempty"`
	QuestID    *int64  `json:"quest_id,omitempty"`
	StepNumber *int    `json:"step_number,omitempty"`
	Answer     *string `json:"answer,omitempty"`
}

// PageMeta holds the pagination fields that accompany a list in data.
// Pointers distinguish absent fields from zero values.
type PageMeta struct {
	Total           *int  `json:"total"`
	Page            *int  `json:"page"`
	Limit           *int  `json:"limit"`
	HasMore         *bool `json:"has_more"`
	CurrentUserRank *int  `json:"current_user_rank"`
}
