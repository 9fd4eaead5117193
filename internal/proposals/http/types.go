package http

import (
	"encoding/json"
	"time"
)

// SubmitProposalRequest is the body of POST /proposals. Fee accepts a JSON
// number or a decimal string.
type SubmitProposalRequest struct {
	Location  string       `json:"location" binding:"required"`
	StartTime time.Time    `json:"start_time" binding:"required"`
	EndTime   time.Time    `json:"end_time" binding:"required,gtfield=StartTime"`
	Fee       *json.Number `json:"fee,omitempty"`
}

type SubmitProposalResponse struct {
	Status string `json:"status"`
}

// ProposalResponse mirrors the store's record shape
type ProposalResponse struct {
	ID         int64        `json:"id"`
	CreatedAt  string       `json:"created_at"`
	Location   string       `json:"location"`
	StartTime  string       `json:"start_time"`
	EndTime    string       `json:"end_time"`
	Fee        *json.Number `json:"fee"`
	GiverID    *string      `json:"giver_id"`
	AcquirerID *string      `json:"acquirer_id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
