package log

import (
	"github.com/project/librarysrv/pkg/logger"
	"go.uber.org/zap"
)

func InfoConnection(l *zap.Logger, msg string, action Action, sessionID, remote string) {
	logger.MakeInfo(l, msg,
		zap.String("session_id", sessionID),
		zap.String("remote", remote),
		zap.String("action", action))
}

func ErrorConnection(l *zap.Logger, err error, msg string, sessionID, remote string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("session_id", sessionID),
		zap.String("remote", remote))
}

func InfoCommand(l *zap.Logger, msg string, traceID, sessionID, verb, category, status string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("session_id", sessionID),
		zap.String("verb", verb),
		zap.String("category", category),
		zap.String("status", status),
		zap.String("action", Dispatch))
}

func ErrorCommand(l *zap.Logger, err error, msg string, traceID, sessionID, verb, category string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("session_id", sessionID),
		zap.String("verb", verb),
		zap.String("category", category),
		zap.String("action", Dispatch))
}
