// Package contextkeys переносит через context.Context то, что нужно всем слоям
// запроса к каталогу: логгер с trace_id и сам trace_id для событий о лидах.
package contextkeys

import (
	"context"
	"land-catalog/internal/core/port"
)

type loggerKeyType struct{}

var loggerKey = loggerKeyType{}

// ContextWithLogger кладет логгер запроса; LoggerMiddleware делает это для каждого HTTP-запроса,
// App.Seed - для команды seed.
func ContextWithLogger(ctx context.Context, logger port.LoggerPort) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext отдает логгер запроса. Use case и адаптеры, вызванные вне HTTP
// (тесты, фоновые вызовы), получают логгер, который ничего не пишет.
func LoggerFromContext(ctx context.Context) port.LoggerPort {
	if logger, ok := ctx.Value(loggerKey).(port.LoggerPort); ok && logger != nil {
		return logger
	}
	return discard
}

// NoopLogger - логгер без вывода.
func NoopLogger() port.LoggerPort { return discard }

var discard port.LoggerPort = discardLogger{}

type discardLogger struct{}

func (discardLogger) Info(string, port.Fields)         {}
func (discardLogger) Warn(string, port.Fields)         {}
func (discardLogger) Error(string, error, port.Fields) {}
func (discardLogger) Debug(string, port.Fields)        {}

func (d discardLogger) WithFields(port.Fields) port.LoggerPort { return d }
