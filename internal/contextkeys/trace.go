package contextkeys

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// TraceIDHeader - заголовок, в котором trace_id приходит от клиента и возвращается в ответе.
const TraceIDHeader = "X-Trace-ID"

type traceIDKeyType struct{}

var traceIDKey = traceIDKeyType{}

// ContextWithTraceID помещает trace_id в контекст
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceIDFromContext возвращает "", если trace_id в контексте нет
func TraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(traceIDKey).(string)
	return traceID
}

// ResolveTraceID принимает значение заголовка клиента, только если это UUID,
// иначе выдает новый.
func ResolveTraceID(header string) string {
	if id, err := uuid.Parse(strings.TrimSpace(header)); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
