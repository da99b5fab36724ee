package internal

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/markusressel/hwtemp/internal/api"
	"github.com/markusressel/hwtemp/internal/configuration"
	"github.com/markusressel/hwtemp/internal/hwmon"
	"github.com/markusressel/hwtemp/internal/statistics"
	"github.com/markusressel/hwtemp/internal/ui"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	scrapeTimeout   = 10 * time.Second
	shutdownTimeout = 5 * time.Second
)

// NewProbe discovers all sensors matching the configured patterns.
func NewProbe(config configuration.Configuration) *hwmon.Probe {
	reader := hwmon.NewReader(config.ReadTimeout, config.Concurrency)
	return hwmon.NewProbe(config.Patterns, reader)
}

// RunServer serves sensor readings over HTTP until SIGINT/SIGTERM is received
// or ctx is done. Sensors are discovered once on startup and read anew on every request.
func RunServer(ctx context.Context, config configuration.Configuration) error {
	if !config.Api.Enabled {
		return errors.New("api is disabled in the configuration")
	}

	probe := NewProbe(config)
	ui.Info("Discovered %d temperature sensors", probe.Bases().Len())

	registry := prometheus.NewRegistry()
	statistics.Register(registry, statistics.NewSensorCollector(probe, scrapeTimeout))

	var g run.Group
	{
		// === REST API + metrics
		restServer := api.CreateRestService(probe, registry)
		addr := net.JoinHostPort(config.Api.Host, strconv.Itoa(config.Api.Port))

		g.Add(func() error {
			ui.Info("Serving sensor readings on http://%s", addr)
			if err := restServer.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		}, func(err error) {
			ui.Info("Stopping API server...")
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := restServer.Shutdown(ctx); err != nil {
				ui.Warning("Error stopping API server: %v", err)
			} else {
				ui.Info("API server stopped.")
			}
		})
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		ctx, cancel := context.WithCancel(ctx)

		g.Add(func() error {
			select {
			case s := <-sig:
				ui.Info("Received %v signal, exiting...", s)
			case <-ctx.Done():
			}
			return nil
		}, func(err error) {
			signal.Stop(sig)
			cancel()
		})
	}

	return g.Run()
}
