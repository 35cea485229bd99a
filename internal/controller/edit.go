package controller

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/project/librarysrv/internal/protocol"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var EditDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_edit_duration_ms",
	Help:    "Duration of EDIT in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(EditDuration)
}

func (i *implementation) edit(ctx context.Context, cmd protocol.Command) (protocol.Response, error) {
	start := time.Now()

	defer func() {
		EditDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	r, err := i.resolve(verbEdit, cmd)
	if err != nil {
		return protocol.Response{}, err
	}

	if cmd.Param == "" {
		return protocol.Response{}, missingID(verbEdit, r)
	}
	if !cmd.HasPayload() {
		return protocol.Response{}, missingPayload(verbEdit, r)
	}

	id := strings.ToLower(cmd.Param)
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("category", r.name),
		attribute.String("id", id))

	item, err := r.ops.update(ctx, id, cmd.Payload)
	if err != nil {
		return protocol.Response{}, err
	}

	return protocol.Success(fmt.Sprintf("%s updated", r.title()), item), nil
}
