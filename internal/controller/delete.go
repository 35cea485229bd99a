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

var DeleteDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_delete_duration_ms",
	Help:    "Duration of DELETE in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(DeleteDuration)
}

func (i *implementation) delete(ctx context.Context, cmd protocol.Command) (protocol.Response, error) {
	start := time.Now()

	defer func() {
		DeleteDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	r, err := i.resolve(verbDelete, cmd)
	if err != nil {
		return protocol.Response{}, err
	}

	if cmd.Param == "" {
		return protocol.Response{}, missingID(verbDelete, r)
	}

	id := strings.ToLower(cmd.Param)
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("category", r.name),
		attribute.String("id", id))

	item, err := r.ops.remove(ctx, id)
	if err != nil {
		return protocol.Response{}, err
	}

	return protocol.Success(fmt.Sprintf("%s deleted", r.title()), item), nil
}
