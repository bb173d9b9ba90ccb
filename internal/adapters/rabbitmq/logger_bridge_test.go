package rabbitmq

import (
	"errors"
	"land-catalog/internal/core/port"
	"testing"

	"github.com/stretchr/testify/assert"
)

type captured struct {
	level  string
	msg    string
	err    error
	fields port.Fields
}

type captureLogger struct {
	entries *[]captured
}

func (c captureLogger) Info(msg string, f port.Fields) {
	*c.entries = append(*c.entries, captured{level: "info", msg: msg, fields: f})
}
func (c captureLogger) Warn(msg string, f port.Fields) {
	*c.entries = append(*c.entries, captured{level: "warn", msg: msg, fields: f})
}
func (c captureLogger) Error(msg string, err error, f port.Fields) {
	*c.entries = append(*c.entries, captured{level: "error", msg: msg, err: err, fields: f})
}
func (c captureLogger) Debug(msg string, f port.Fields) {
	*c.entries = append(*c.entries, captured{level: "debug", msg: msg, fields: f})
}
func (c captureLogger) WithFields(port.Fields) port.LoggerPort { return c }

func TestPkgLoggerBridge(t *testing.T) {
	var entries []captured
	bridge := NewPkgLoggerBridge(captureLogger{entries: &entries})

	bridge.Debug("Declaring exchange", "name", "leads", "type", "topic")
	bridge.Warn("odd pairs", "dangling")
	bridge.Info("non-string key", 42, "value", "ok", true)
	boom := errors.New("boom")
	bridge.Error(boom, "Reconnect failed", "attempt", 3)

	assert.Len(t, entries, 4)
	assert.Equal(t, port.Fields{"name": "leads", "type": "topic"}, entries[0].fields)
	assert.Empty(t, entries[1].fields)
	assert.Equal(t, port.Fields{"ok": true}, entries[2].fields)
	assert.Equal(t, "error", entries[3].level)
	assert.Same(t, boom, entries[3].err)
	assert.Equal(t, port.Fields{"attempt": 3}, entries[3].fields)
}
