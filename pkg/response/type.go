package response

import (
	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

// Resp is the standard JSON response envelope. Every endpoint returns this
// shape; clients branch on Success.
type Resp struct {
	Success    bool               `json:"success"`
	Data       any                `json:"data,omitempty"`
	Error      string             `json:"error,omitempty"`
	Details    any                `json:"details,omitempty"`
	Pagination *paging.Pagination `json:"pagination,omitempty"`
}

// DefaultErrorMessage is used when no more specific message is available.
const DefaultErrorMessage = "Something went wrong. Please try again."
