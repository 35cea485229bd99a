package protocol

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Response is the envelope written back for every request.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Success wraps a result. data may be nil.
func Success(message string, data any) Response {
	return Response{Status: StatusSuccess, Message: message, Data: data}
}

// Failure builds an error envelope. The message always starts with
// ErrorPrefix and the data is always null.
func Failure(message string) Response {
	if !strings.HasPrefix(message, ErrorPrefix) {
		message = ErrorPrefix + message
	}
	return Response{Status: StatusError, Message: message}
}

// IsOK returns true if this is a successful response.
func (r Response) IsOK() bool {
	return r.Status == StatusSuccess
}

// IsError returns true if this is an error response.
func (r Response) IsError() bool {
	return r.Status == StatusError
}

// Format renders the envelope as one JSON line terminated by '\n'. Data that
// can not be encoded turns the envelope into an internal error.
func (r Response) Format() string {
	if r.IsError() {
		r.Data = nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(r); err != nil {
		buf.Reset()
		_ = enc.Encode(Failure("internal error"))
	}
	return buf.String()
}
