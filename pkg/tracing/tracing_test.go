package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"

	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/logger"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	var cfg config.Config

	shutdown, err := Setup(cfg, logger.NewNop(), "portfolio-test")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestNewTracerProvider_LazyConnection(t *testing.T) {
	var cfg config.Config
	cfg.Jaeger.OTLPEndpoint = "127.0.0.1:4317"

	// grpc.NewClient does not dial until the first export.
	tp, err := NewTracerProvider(cfg, logger.NewNop(), "portfolio-test")
	require.NoError(t, err)
	require.NotNil(t, tp)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = tp.Shutdown(ctx)
}

func TestNewResource_SchemaMatchesSDK(t *testing.T) {
	res, err := newResource("portfolio-test")
	require.NoError(t, err)

	assert.Equal(t, resource.Default().SchemaURL(), res.SchemaURL())
	assert.Equal(t, semconv.SchemaURL, res.SchemaURL())

	name, ok := res.Set().Value(semconv.ServiceNameKey)
	require.True(t, ok)
	assert.Equal(t, "portfolio-test", name.AsString())
}
