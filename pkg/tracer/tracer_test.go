package tracer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

func TestInitDisabledReturnsNoopShutdown(t *testing.T) {
	shutdown, err := Init(context.Background(), Config{ServiceName: "gameforge-api"})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestServiceAttributes(t *testing.T) {
	attrs := serviceAttributes(Config{
		ServiceName:    "gameforge-api",
		ServiceVersion: "1.2.3",
		Env:            "production",
	})
	assert.Contains(t, attrs, semconv.ServiceName("gameforge-api"))
	assert.Contains(t, attrs, semconv.ServiceVersion("1.2.3"))
	assert.Contains(t, attrs, semconv.DeploymentEnvironment("production"))

	// 未填充的字段不产生属性
	assert.Len(t, serviceAttributes(Config{ServiceName: "gameforge-api"}), 1)
}

func TestNewSampler(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), newSampler(1.0).Description())
	assert.Equal(t, sdktrace.AlwaysSample().Description(), newSampler(2.0).Description())
	assert.Equal(t, sdktrace.NeverSample().Description(), newSampler(0).Description())
	assert.Equal(t,
		sdktrace.ParentBased(sdktrace.TraceIDRatioBased(0.25)).Description(),
		newSampler(0.25).Description())
}
