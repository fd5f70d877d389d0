package telemetry

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace/noop"

	"planet-builder/internal/shared/config"
)

func TestSetupDisabled(t *testing.T) {
	before := otel.GetTracerProvider()

	shutdown, err := Setup(config.TelemetryConfig{})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))

	assert.Equal(t, before, otel.GetTracerProvider())
}

func TestSetupExportsSpansAndMetrics(t *testing.T) {
	t.Cleanup(func() { otel.SetTracerProvider(noop.NewTracerProvider()) })

	path := filepath.Join(t.TempDir(), "telemetry.json")
	shutdown, err := Setup(config.TelemetryConfig{
		Enabled:        true,
		ServiceName:    "planet-builder-test",
		File:           path,
		MetricInterval: time.Hour,
	})
	require.NoError(t, err)

	ctx := context.Background()
	_, span := otel.Tracer("telemetry_test").Start(ctx, "planet.Assess")
	span.SetAttributes(attribute.String("planet.type", "earth-like"))
	span.End()

	counter, err := otel.GetMeterProvider().Meter("telemetry_test").Int64Counter("planet.assessments")
	require.NoError(t, err)
	counter.Add(ctx, 1)

	require.NoError(t, shutdown(ctx))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"Name":"planet.Assess"`)
	assert.Contains(t, out, "earth-like")
	assert.Contains(t, out, "planet.assessments")
	assert.Contains(t, out, "planet-builder-test")
}

func TestSetupFileError(t *testing.T) {
	_, err := Setup(config.TelemetryConfig{
		Enabled:        true,
		File:           filepath.Join(t.TempDir(), "missing", "telemetry.json"),
		MetricInterval: time.Minute,
	})
	assert.Error(t, err)
}
