package telemetry

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/go-drift/drawer/pkg/drawer"
)

func attrs(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestDrawerObserverRecordsDragSpan(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	p := NewProviderWithProcessor("drawer-test", rec)
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })

	core, logs := observer.New(zapcore.DebugLevel)
	o := NewDrawerObserver(context.Background(), p.Tracer(), zap.New(core))

	o.OnDragStart(400)
	o.OnSnap(2, 200)
	o.OnDragEnd(drawer.Release{FinalY: 250, Velocity: -0.1, From: 1, Target: 2})

	spans := rec.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, SpanDrag, span.Name())

	got := attrs(span.Attributes())
	assert.Equal(t, 400.0, got[AttrStartY].AsFloat64())
	assert.Equal(t, 250.0, got[AttrFinalY].AsFloat64())
	assert.Equal(t, -0.1, got[AttrVelocity].AsFloat64())
	assert.Equal(t, int64(2), got[AttrTargetIndex].AsInt64())
	assert.False(t, got[AttrClosed].AsBool())

	require.Len(t, span.Events(), 1)
	assert.Equal(t, "drawer.snap", span.Events()[0].Name)

	assert.Equal(t, 1, logs.FilterMessage("drag started").Len())
	assert.Equal(t, 1, logs.FilterMessage("drag released").Len())
}

func TestDrawerObserverEndsDanglingSpan(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	p := NewProviderWithProcessor("", rec)
	o := NewDrawerObserver(context.Background(), p.Tracer(), nil)

	o.OnDragStart(100)
	o.OnDragStart(120)
	o.OnDragEnd(drawer.Release{Close: true})
	assert.Len(t, rec.Ended(), 2)

	o.OnDragEnd(drawer.Release{})
	assert.Len(t, rec.Ended(), 2, "release without a drag must not create a span")
}

func TestDrawerObserverLogsOpenChanges(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	o := NewDrawerObserver(context.Background(), NewProviderWithProcessor("", tracetest.NewSpanRecorder()).Tracer(), zap.New(core))
	o.OnOpenChange(true)
	o.OnOpenChange(false)
	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "drawer opened", entries[0].Message)
	assert.Equal(t, "drawer closed", entries[1].Message)
}

func TestNewProviderWithoutEndpointIsNoop(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	p, err := NewProvider(context.Background(), "drawer")
	require.NoError(t, err)
	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))

	_, span := p.Tracer().Start(context.Background(), SpanDrag)
	assert.False(t, span.IsRecording())
	span.End()
}

func TestNewLogger(t *testing.T) {
	l, err := NewLogger(LoggerOptions{})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.ErrorLevel))

	path := filepath.Join(t.TempDir(), "drawer.log")
	l, err = NewLogger(LoggerOptions{File: path})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))

	l, err = NewLogger(LoggerOptions{Verbose: true, File: path})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}
