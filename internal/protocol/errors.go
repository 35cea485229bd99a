package protocol

import (
	"errors"
	"fmt"
)

// ErrLineTooLong indicates a request line exceeded MaxLineLength.
var ErrLineTooLong = errors.New("line too long")

// ParseError represents a request that could not be turned into a command.
type ParseError struct {
	Kind    ParseErrorKind
	Value   string // The offending input
	Message string // Additional context
}

// ParseErrorKind categorizes parsing errors.
type ParseErrorKind int

const (
	// ErrKindEmptyCommand indicates a blank line or a line without a verb.
	ErrKindEmptyCommand ParseErrorKind = iota
	// ErrKindMalformedPayload indicates the JSON payload is not a valid object.
	ErrKindMalformedPayload
	// ErrKindUnknownCommand indicates a verb that is not in the verb table.
	ErrKindUnknownCommand
	// ErrKindUnknownCategory indicates a category that is not served.
	ErrKindUnknownCategory
	// ErrKindMissingArgument indicates a required part of the request is absent.
	ErrKindMissingArgument
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrKindEmptyCommand:
		return "empty command; type HELP"
	case ErrKindMalformedPayload:
		if e.Message != "" {
			return fmt.Sprintf("malformed JSON payload: %s", e.Message)
		}
		return "malformed JSON payload"
	case ErrKindUnknownCommand:
		return fmt.Sprintf("unknown command %q; type HELP", e.Value)
	case ErrKindUnknownCategory:
		return fmt.Sprintf("unknown category %q; expected AUTHOR(S), BOOK(S) or PUBLISHER(S)", e.Value)
	case ErrKindMissingArgument:
		return e.Message
	default:
		return fmt.Sprintf("parse error: %s", e.Value)
	}
}

func newMalformedPayloadError(payload string, cause error) error {
	return &ParseError{Kind: ErrKindMalformedPayload, Value: payload, Message: cause.Error()}
}

// NewUnknownCommandError reports a verb missing from the verb table.
func NewUnknownCommandError(verb string) error {
	return &ParseError{Kind: ErrKindUnknownCommand, Value: verb}
}

// NewUnknownCategoryError reports a category no handler serves.
func NewUnknownCategoryError(category string) error {
	return &ParseError{Kind: ErrKindUnknownCategory, Value: category}
}

// NewMissingArgumentError reports an absent category, id, term or payload.
func NewMissingArgumentError(msg string) error {
	return &ParseError{Kind: ErrKindMissingArgument, Message: msg}
}
