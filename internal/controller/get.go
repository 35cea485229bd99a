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

var GetDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_get_duration_ms",
	Help:    "Duration of GET in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(GetDuration)
}

func (i *implementation) get(ctx context.Context, cmd protocol.Command) (protocol.Response, error) {
	start := time.Now()

	defer func() {
		GetDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	r, err := i.resolve(verbGet, cmd)
	if err != nil {
		return protocol.Response{}, err
	}

	if cmd.Param == "" {
		if r.isPlural {
			return i.listCategory(ctx, r)
		}
		return protocol.Response{}, missingID(verbGet, r)
	}

	id := strings.ToLower(cmd.Param)
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("category", r.name),
		attribute.String("id", id))

	item, err := r.ops.get(ctx, id)
	if err != nil {
		return protocol.Response{}, err
	}

	return protocol.Success(fmt.Sprintf("%s found", r.title()), item), nil
}
