package tracing

import (
	"context"
	"fmt"
	"time"

	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/logger"
	"go.uber.org/zap"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// ShutdownFunc flushes and stops the installed provider.
type ShutdownFunc func(context.Context) error

// Setup installs a global tracer provider exporting to the configured OTLP
// endpoint. With no endpoint configured it installs nothing and the global
// no-op provider stays in place.
func Setup(cfg config.Config, log logger.Logger, serviceName string) (ShutdownFunc, error) {
	if cfg.Jaeger.OTLPEndpoint == "" {
		log.Info("Tracing disabled, OTLP endpoint not set", zap.String("service_name", serviceName))
		return func(context.Context) error { return nil }, nil
	}

	tp, err := NewTracerProvider(cfg, log, serviceName)
	if err != nil {
		return nil, err
	}
	return tp.Shutdown, nil
}

func NewTracerProvider(cfg config.Config, log logger.Logger, serviceName string) (*sdktrace.TracerProvider, error) {
	log.Info("Initializing OTLP Tracer...")

	conn, err := grpc.NewClient(cfg.Jaeger.OTLPEndpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection to collector: %w", err)
	}

	exporter, err := otlptracegrpc.New(context.Background(), otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(time.Second)),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	log.Info("OTLP Tracer initialized successfully", zap.String("service_name", serviceName), zap.String("endpoint", cfg.Jaeger.OTLPEndpoint))
	return tp, nil
}

// newResource tags spans with the service name. The semconv import must
// track the SDK's so the schema URLs agree on merge.
func newResource(serviceName string) (*resource.Resource, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(serviceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTel resource: %w", err)
	}
	return res, nil
}
