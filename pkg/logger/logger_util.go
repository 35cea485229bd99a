package logger

import "go.uber.org/zap"

func CheckError(err error, logger *zap.Logger, msg string, fields ...zap.Field) bool {
	if err != nil {
		if logger != nil {
			logger.Error(msg, append(fields, zap.Error(err))...)
		}
		return true
	}
	return false
}

func MakeInfo(logger *zap.Logger, msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Info(msg, fields...)
	}
}

func MakeWarn(logger *zap.Logger, msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Warn(msg, fields...)
	}
}

func MakeDebug(logger *zap.Logger, msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Debug(msg, fields...)
	}
}

// Enabled returns logger when on is set, nil otherwise. Every layer accepts a
// nil logger and stays silent.
func Enabled(logger *zap.Logger, on bool) *zap.Logger {
	if on {
		return logger
	}
	return nil
}
