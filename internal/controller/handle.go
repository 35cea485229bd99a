package controller

import (
	"context"
	"fmt"

	"github.com/project/librarysrv/internal/entity"
	"github.com/project/librarysrv/internal/log"
	"github.com/project/librarysrv/internal/protocol"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const unknownVerbLabel = "UNKNOWN"

var ResponsesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "library_responses_total",
	Help: "Number of responses written, by verb and status",
}, []string{"verb", "status"})

func init() {
	prometheus.MustRegister(ResponsesTotal)
}

// Handle processes one request line of a session. The returned flag asks the
// caller to close the connection after writing the response.
func (i *implementation) Handle(ctx context.Context, s *Session, line string) (resp protocol.Response, closeConn bool) {
	s.Requests++

	ctx, span := otel.Tracer(tracerName).Start(ctx, "library.Handle")
	defer span.End()

	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(
		attribute.String("session_id", s.ID),
		attribute.Int("request", s.Requests))

	var cmd protocol.Command
	verbLabel := unknownVerbLabel

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: panic: %v", entity.ErrInternal, r)
			log.ErrorCommand(i.logger, err, "Recovered from panic", traceID, s.ID, cmd.Verb, cmd.Category)
			span.RecordError(err)
			span.SetStatus(codes.Error, internalMessage)
			resp, closeConn = protocol.Failure(internalMessage), false
		}

		ResponsesTotal.WithLabelValues(verbLabel, resp.Status).Inc()
		log.InfoCommand(i.logger, "Command handled", traceID, s.ID, cmd.Verb, cmd.Category, resp.Status)
	}()

	cmd, err := protocol.Parse(line)
	if err != nil {
		return i.fail(span, traceID, s, cmd, err), false
	}

	canonical, ok := CanonicalVerb(cmd.Verb)
	if !ok {
		return i.fail(span, traceID, s, cmd, protocol.NewUnknownCommandError(cmd.Verb)), false
	}
	verbLabel = canonical
	span.SetAttributes(attribute.String("verb", canonical))

	switch canonical {
	case verbHelp:
		return help(), false
	case verbExit:
		return goodbye(), true
	}

	resp, err = verbHandlers[canonical](i, ctx, cmd)
	if err != nil {
		return i.fail(span, traceID, s, cmd, err), false
	}
	return resp, false
}
