package telemetry

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"bachelorette-db/lib/configutil"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/trace"
)

const ConfigName = "telemetry.json5"

var (
	tracerProvider *trace.TracerProvider
	meterProvider  *metric.MeterProvider
)

// Shutdown flushes and stops the providers installed by Setup, it is a
// no-op if telemetry was never set up.
func Shutdown(ctx context.Context) error {
	var errlist []error
	if tracerProvider != nil {
		errlist = append(errlist, tracerProvider.Shutdown(ctx))
	}
	if meterProvider != nil {
		errlist = append(errlist, meterProvider.Shutdown(ctx))
	}
	return errors.Join(errlist...)
}

var setupTestEnvironments = map[string]bool{}

// sets up telemetry in a testing environment, ensuring that it isn't
// set up more than once
func SetupForTesting(serviceName string) func() {
	if setupTestEnvironments[serviceName] {
		return func() {}
	}
	setupTestEnvironments[serviceName] = true

	InitSlog(true)
	err := SetupFromEnv(context.Background(), serviceName)
	if err != nil {
		panic(err)
	}

	return func() {
		err := Shutdown(context.Background())
		if err != nil {
			slog.Warn("failed to shutdown telemetry", "err", err)
		}
	}
}

// searches up the filesystem from the cwd to find a file
// called telemetry.json5, once found it will then use it
// as a config to setup telemetry. if there is no such file
// the global no-op providers are left in place.
func SetupFromEnv(ctx context.Context, serviceName string) error {
	cfg, path, err := configutil.ReadRecursively[Config](ConfigName)
	if os.IsNotExist(err) {
		slog.DebugContext(ctx, "no telemetry config found, telemetry export disabled")
		return nil
	}
	if err != nil {
		return err
	}
	slog.DebugContext(ctx, "read telemetry config", "path", path)
	return Setup(ctx, serviceName, cfg)
}

func Setup(ctx context.Context, serviceName string, c Config) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second*15)
	defer cancel()

	r, err := newResource(serviceName)
	if err != nil {
		return err
	}

	tp, err := newTraceProvider(ctx, r, c)
	if err != nil {
		return err
	}
	otel.SetTracerProvider(tp)
	tracerProvider = tp

	mp, err := newMetricProvider(ctx, r, c)
	if err != nil {
		return err
	}
	otel.SetMeterProvider(mp)
	meterProvider = mp

	return nil
}
