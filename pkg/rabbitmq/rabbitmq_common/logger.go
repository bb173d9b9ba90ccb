package rabbitmq_common

// Logger - минимальный логгер для pkg/rabbitmq, не зависящий от логгера сервиса.
// keysAndValues - чередующиеся пары ключ/значение.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(err error, msg string, keysAndValues ...any)
}

// NewNoopLogger используется, если логгер не передан.
func NewNoopLogger() Logger { return discardLogger{} }

type discardLogger struct{}

func (discardLogger) Debug(string, ...any)        {}
func (discardLogger) Info(string, ...any)         {}
func (discardLogger) Warn(string, ...any)         {}
func (discardLogger) Error(error, string, ...any) {}
