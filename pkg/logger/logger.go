// Package logger wraps logrus with context-aware helpers for the Parky API.
package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/roguepikachu/parky/internal/utils"
)

// InitLogging configures the logger. It sets the log level from the LOG_LEVEL environment variable if present.
func InitLogging() {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "debug" // default if not set
	}
	setLogLevel(logLevel)
	logFormat := os.Getenv("LOG_FORMAT")
	if strings.ToLower(logFormat) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func setLogLevel(level string) {
	switch strings.ToLower(level) {
	case "trace":
		logrus.SetLevel(logrus.TraceLevel)
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	case "fatal":
		logrus.SetLevel(logrus.FatalLevel)
	case "panic":
		logrus.SetLevel(logrus.PanicLevel)
	default:
		logrus.Infof("NO/Invalid LOG_LEVEL is provided, defaulting logging level to DEBUG, provided level=[%s]", level)
		logrus.SetLevel(logrus.DebugLevel)
		return
	}
	logrus.Infof("Setting logging level to %s", level)
}

// contextFields pulls request/client identifiers out of the context.
func contextFields(ctx context.Context) logrus.Fields {
	fields := logrus.Fields{}
	if id := utils.RequestID(ctx); id != "" {
		fields["request_id"] = id
	}
	if id := utils.ClientID(ctx); id != "" {
		fields["client_id"] = id
	}
	return fields
}

// With returns a logrus entry carrying the given fields plus any ids found in ctx.
func With(ctx context.Context, fields map[string]any) *logrus.Entry {
	entry := logrus.WithFields(contextFields(ctx))
	if len(fields) > 0 {
		entry = entry.WithFields(logrus.Fields(fields))
	}
	return entry
}

// WithField returns a logrus entry carrying a single field plus any ids found in ctx.
func WithField(ctx context.Context, key string, value any) *logrus.Entry {
	return logrus.WithFields(contextFields(ctx)).WithField(key, value)
}

// Sprintf formats according to a format specifier and returns the string.
func Sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

func Info(ctx context.Context, msg string, args ...interface{}) {
	logrus.WithFields(contextFields(ctx)).Infof(msg, args...)
}

func Debug(ctx context.Context, msg string, args ...any) {
	logrus.WithFields(contextFields(ctx)).Debugf(msg, args...)
}

func Error(ctx context.Context, msg string, args ...any) {
	logrus.WithFields(contextFields(ctx)).Errorf(msg, args...)
}

func Trace(ctx context.Context, msg string, args ...any) {
	logrus.WithFields(contextFields(ctx)).Tracef(msg, args...)
}

func Warn(ctx context.Context, msg string, args ...any) {
	logrus.WithFields(contextFields(ctx)).Warnf(msg, args...)
}

func Fatal(ctx context.Context, msg string, args ...any) {
	logrus.WithFields(contextFields(ctx)).Fatalf(msg, args...)
}
