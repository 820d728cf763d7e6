package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clambin/ledglow/internal/configuration"
	"github.com/clambin/ledglow/internal/controller"
	"github.com/clambin/ledglow/internal/led"
	"github.com/clambin/ledglow/internal/metrics"
	"github.com/clambin/ledglow/version"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, done := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:])
	done()
	if err != nil {
		log.WithError(err).Error("ledglow failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := configuration.GetConfigFromArgs(args)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	log.WithField("version", version.BuildVersion).Info("ledglow starting")
	defer log.Info("ledglow exiting")

	m := metrics.New("ledglow", led.Count)
	r := prometheus.NewRegistry()
	r.MustRegister(m, collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	c, err := controller.New(cfg, m)
	if err != nil {
		return fmt.Errorf("board setup: %w", err)
	}

	var l net.Listener
	if cfg.PrometheusAddr != "" {
		if l, err = net.Listen("tcp", cfg.PrometheusAddr); err != nil {
			return fmt.Errorf("prometheus: %w", err)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	demoCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g.Go(func() error {
		// a finished demo ends the program
		defer cancel()
		return c.Run(demoCtx)
	})
	if l != nil {
		g.Go(func() error {
			return runPrometheusServer(demoCtx, l, promhttp.HandlerFor(r, promhttp.HandlerOpts{}))
		})
	}
	return g.Wait()
}

// runPrometheusServer serves h on l until ctx is done
func runPrometheusServer(ctx context.Context, l net.Listener, h http.Handler) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", h)
	s := http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		if err := s.Serve(l); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	log.WithField("addr", l.Addr().String()).Debug("prometheus server started")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}
