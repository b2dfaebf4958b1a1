package response

import (
	"encoding/json"
	"time"

	"usecase-srv/pkg/errors"
)

// Resp is the envelope every JSON endpoint returns.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorMapping maps domain errors to HTTP errors for ErrorWithMap.
type ErrorMapping map[error]*errors.HTTPError

// Date marshals as DateFormat in the server's local zone.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateFormat))
}

// DateTime marshals as DateTimeFormat in the server's local zone.
type DateTime time.Time

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateTimeFormat))
}
