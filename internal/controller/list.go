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

var ListDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_list_duration_ms",
	Help:    "Duration of LIST in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(ListDuration)
}

func (i *implementation) list(ctx context.Context, cmd protocol.Command) (protocol.Response, error) {
	start := time.Now()

	defer func() {
		ListDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	r, err := i.resolve(verbList, cmd)
	if err != nil {
		return protocol.Response{}, err
	}
	return i.listCategory(ctx, r)
}

func (i *implementation) listCategory(ctx context.Context, r route) (protocol.Response, error) {
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("category", r.name))

	items, err := r.ops.list(ctx)
	if err != nil {
		return protocol.Response{}, err
	}

	return protocol.Success(fmt.Sprintf("List of %s", r.lowerPlural()), items), nil
}
