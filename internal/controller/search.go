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

var SearchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_search_duration_ms",
	Help:    "Duration of SEARCH in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(SearchDuration)
}

func (i *implementation) search(ctx context.Context, cmd protocol.Command) (protocol.Response, error) {
	start := time.Now()

	defer func() {
		SearchDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	r, err := i.resolve(verbSearch, cmd)
	if err != nil {
		return protocol.Response{}, err
	}

	if cmd.Param == "" {
		return protocol.Response{}, protocol.NewMissingArgumentError(
			fmt.Sprintf("missing search term for %s %s", verbSearch, r.plural))
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("category", r.name),
		attribute.String("term", cmd.Param))

	items, err := r.ops.search(ctx, cmd.Param)
	if err != nil {
		return protocol.Response{}, err
	}

	return protocol.Success(fmt.Sprintf("%s matching %q", r.lowerPlural(), cmd.Param), items), nil
}
