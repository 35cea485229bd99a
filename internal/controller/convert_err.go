package controller

import (
	"errors"

	"github.com/project/librarysrv/internal/entity"
	"github.com/project/librarysrv/internal/log"
	"github.com/project/librarysrv/internal/protocol"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const internalMessage = "internal error"

// convertErr turns a handler error into the error envelope. Only errors of the
// known taxonomy reach the wire verbatim.
func (i *implementation) convertErr(err error) protocol.Response {
	var parseErr *protocol.ParseError

	switch {
	case errors.As(err, &parseErr):
		return protocol.Failure(parseErr.Error())
	case errors.Is(err, entity.ErrInternal):
		return protocol.Failure(internalMessage)
	case errors.Is(err, entity.ErrValidation),
		errors.Is(err, entity.ErrNotFound),
		errors.Is(err, entity.ErrConflict),
		errors.Is(err, entity.ErrAmbiguousReference):
		return protocol.Failure(err.Error())
	default:
		return protocol.Failure(internalMessage)
	}
}

func isInternal(err error) bool {
	var parseErr *protocol.ParseError
	if errors.As(err, &parseErr) {
		return false
	}
	return errors.Is(err, entity.ErrInternal) ||
		!(errors.Is(err, entity.ErrValidation) ||
			errors.Is(err, entity.ErrNotFound) ||
			errors.Is(err, entity.ErrConflict) ||
			errors.Is(err, entity.ErrAmbiguousReference))
}

func (i *implementation) fail(span trace.Span, traceID string, s *Session, cmd protocol.Command, err error) protocol.Response {
	span.RecordError(err)
	if isInternal(err) {
		span.SetStatus(codes.Error, internalMessage)
		log.ErrorCommand(i.logger, err, "Command failed", traceID, s.ID, cmd.Verb, cmd.Category)
	}
	return i.convertErr(err)
}
