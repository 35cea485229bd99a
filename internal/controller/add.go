package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/project/librarysrv/internal/protocol"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var AddDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_add_duration_ms",
	Help:    "Duration of ADD in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(AddDuration)
}

func (i *implementation) add(ctx context.Context, cmd protocol.Command) (protocol.Response, error) {
	start := time.Now()

	defer func() {
		AddDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	r, err := i.resolve(verbAdd, cmd)
	if err != nil {
		return protocol.Response{}, err
	}

	if !cmd.HasPayload() {
		return protocol.Response{}, missingPayload(verbAdd, r)
	}

	trace.SpanFromContext(ctx).SetAttributes(attribute.String("category", r.name))

	item, err := r.ops.add(ctx, cmd.Payload)
	if err != nil {
		return protocol.Response{}, err
	}

	return protocol.Success(fmt.Sprintf("%s added", r.title()), item), nil
}
