// Package protocol implements the line oriented text protocol spoken by the
// library server.
//
// A request is a single UTF-8 line:
//
//	<VERB> <CATEGORY> [<PARAM...>] [<JSON_PAYLOAD>]
//
// The payload starts at the first '{' of the line. Every request is answered
// with exactly one line holding a JSON envelope:
//
//	{"status":"success","message":"...","data":...}
//	{"status":"error","message":"ERROR: ...","data":null}
package protocol

// Version is the protocol version reported by HELP.
const Version = "1.0"

// MaxLineLength bounds a single request line, terminator excluded.
const MaxLineLength = 1 << 20

// ErrorPrefix starts the message of every error envelope.
const ErrorPrefix = "ERROR: "

// Status values of the envelope.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)
