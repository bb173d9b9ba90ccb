package port

import "maps"

// Fields - структурированные поля записи лога.
type Fields map[string]any

// Merge возвращает новую карту: поля f, поверх них поля other. Исходные карты не меняются.
func (f Fields) Merge(other Fields) Fields {
	merged := make(Fields, len(f)+len(other))
	maps.Copy(merged, f)
	maps.Copy(merged, other)
	return merged
}

// LoggerPort - логгер, которым пользуются ядро и адаптеры.
// Реализации: stdout (slog/tint), Fluent Bit и их объединение.
type LoggerPort interface {
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	// Error пишет сообщение вместе с err; err может быть nil.
	Error(msg string, err error, fields Fields)
	Debug(msg string, fields Fields)
	// WithFields возвращает дочерний логгер, текущий не меняется.
	WithFields(fields Fields) LoggerPort
}
