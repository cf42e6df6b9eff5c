package apiclient

import (
	"encoding/json"

	"github.com/nghia89/landingpage-wedding-sub000/pkg/paging"
)

// Envelope is the API response body shared by every endpoint.
type Envelope struct {
	Success    bool               `json:"success"`
	Data       json.RawMessage    `json:"data,omitempty"`
	Error      string             `json:"error,omitempty"`
	Details    json.RawMessage    `json:"details,omitempty"`
	Pagination *paging.Pagination `json:"pagination,omitempty"`
}

// Error is the typed failure returned for transport failures (Status 0),
// non-2xx statuses, and success:false envelopes.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// IsNotFound reports whether err is an API error with status 404.
func IsNotFound(err error) bool {
	ae, ok := err.(*Error)
	return ok && ae.Status == 404
}

// Fallback messages when the server supplies no error field.
const (
	MsgConnectionFailed = "could not connect to the server"
	MsgInvalidResponse  = "server returned an invalid response"
	MsgGenericFailure   = "request failed"
)
