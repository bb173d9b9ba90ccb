package logger_adapter

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"land-catalog/internal/core/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postedRecord struct {
	tag  string
	data port.Fields
}

type fakePoster struct {
	mu      sync.Mutex
	records []postedRecord
}

func (f *fakePoster) Post(tag string, message interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, postedRecord{tag: tag, data: message.(port.Fields)})
	return nil
}

func TestFluentLoggerAdapter_FiltersByLevel(t *testing.T) {
	poster := &fakePoster{}
	logger := newFluentLoggerAdapter(poster, slog.LevelWarn)

	logger.Debug("debug", nil)
	logger.Info("info", nil)
	logger.Warn("warn", port.Fields{"k": "v"})
	logger.Error("error", errors.New("boom"), nil)

	require.Len(t, poster.records, 2)
	assert.Equal(t, "warn", poster.records[0].tag)
	assert.Equal(t, "warn", poster.records[0].data["message"])
	assert.Equal(t, "v", poster.records[0].data["k"])
	assert.Equal(t, "error", poster.records[1].tag)
	assert.Equal(t, "boom", poster.records[1].data["error"])
}

func TestFluentLoggerAdapter_WithFieldsDoesNotLeak(t *testing.T) {
	poster := &fakePoster{}
	base := newFluentLoggerAdapter(poster, slog.LevelDebug)
	child := base.WithFields(port.Fields{"component": "app"})

	child.Info("from child", nil)
	base.Info("from base", nil)

	require.Len(t, poster.records, 2)
	assert.Equal(t, "app", poster.records[0].data["component"])
	assert.NotContains(t, poster.records[1].data, "component")
}

func TestSlogAdapter_WritesSortedFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelDebug, IsJSON: true})

	logger.WithFields(port.Fields{"service_name": "land-catalog"}).
		Error("failed", errors.New("boom"), port.Fields{"b": 2, "a": 1})

	out := buf.String()
	assert.Contains(t, out, `"service_name":"land-catalog"`)
	assert.Contains(t, out, `"msg":"failed"`)
	assert.Contains(t, out, `"err":"boom"`)
	assert.Less(t, bytes.Index(buf.Bytes(), []byte(`"a":1`)), bytes.Index(buf.Bytes(), []byte(`"b":2`)))
}

func TestSlogAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: ParseLevel("warn"), IsJSON: true})
	logger.Info("hidden", nil)
	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestMultiloggerAdapter(t *testing.T) {
	_, err := NewMultiloggerAdapter()
	require.Error(t, err)

	single := newFluentLoggerAdapter(&fakePoster{}, nil)
	got, err := NewMultiloggerAdapter(single)
	require.NoError(t, err)
	assert.Same(t, single, got)

	p1, p2 := &fakePoster{}, &fakePoster{}
	multi, err := NewMultiloggerAdapter(newFluentLoggerAdapter(p1, nil), newFluentLoggerAdapter(p2, nil))
	require.NoError(t, err)
	multi.WithFields(port.Fields{"x": 1}).Info("hello", nil)

	require.Len(t, p1.records, 1)
	require.Len(t, p2.records, 1)
	assert.Equal(t, 1, p2.records[0].data["x"])
}
