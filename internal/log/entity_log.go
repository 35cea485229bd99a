package log

import (
	"github.com/project/librarysrv/pkg/logger"
	"go.uber.org/zap"
)

// InfoEntity logs a use case step on one kind of entity. ref is an id, a
// search term or a name, whatever identifies the target at that step.
func InfoEntity(l *zap.Logger, msg string, traceID string, action Action, kind, ref string, id ...string) {
	if len(id) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.String("kind", kind),
			zap.String("ref", ref),
			zap.String("action", action))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("kind", kind),
		zap.String("ref", ref),
		zap.String(kind+"_id", id[0]),
		zap.String("action", action))
}

func ErrorEntity(l *zap.Logger, err error, msg string, traceID string, action Action, kind, ref string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("kind", kind),
		zap.String("ref", ref),
		zap.String("action", action))
}

func InfoCount(l *zap.Logger, msg string, traceID, field, id string, count int) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("field", field),
		zap.String("ref", id),
		zap.Int("count", count),
		zap.String("action", Count))
}

func ErrorNotify(l *zap.Logger, err error, msg string, traceID, kind, id string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("kind", kind),
		zap.String("ref", id),
		zap.String("action", Notify))
}
