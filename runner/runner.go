// Package runner starts long-lived services, waits for a shutdown signal or a
// service failure, and stops everything in reverse tier order.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultShutdownTimeout = 30 * time.Second
	defaultStartupWindow   = 100 * time.Millisecond
)

var (
	ErrServicePanic    = errors.New("runner: service panicked")
	ErrServiceFailed   = errors.New("runner: service failed")
	ErrShutdownTimeout = errors.New("runner: shutdown timeout exceeded")
)

// Service is anything the runner can supervise. Start blocks until the
// service stops; Stop asks it to.
type Service interface {
	Start(ctx context.Context) error
	Stop() error
	Name() string
}

type Runner struct {
	coreServices           []Service
	infrastructureServices []Service
	shutdownTimeout        time.Duration
	startupWindow          time.Duration
	signals                []os.Signal
}

type Option func(*Runner)

func New(opts ...Option) *Runner {
	runner := &Runner{
		coreServices:           make([]Service, 0),
		infrastructureServices: make([]Service, 0),
		shutdownTimeout:        defaultShutdownTimeout,
		startupWindow:          defaultStartupWindow,
		signals:                []os.Signal{os.Interrupt, syscall.SIGTERM},
	}

	for _, opt := range opts {
		opt(runner)
	}

	return runner
}

// WithCoreService registers a service that serves traffic. Core services
// start after, and stop before, infrastructure services.
func WithCoreService(svc Service) Option {
	return func(r *Runner) {
		r.coreServices = append(r.coreServices, svc)
		log.Debug().
			Str("service_type", "core").
			Str("service_name", svc.Name()).
			Msg("Core service registered")
	}
}

func WithInfrastructureService(svc Service) Option {
	return func(r *Runner) {
		r.infrastructureServices = append(r.infrastructureServices, svc)
		log.Debug().
			Str("service_type", "infrastructure").
			Str("service_name", svc.Name()).
			Msg("Infrastructure service registered")
	}
}

func WithShutdownTimeout(d time.Duration) Option {
	return func(r *Runner) {
		r.shutdownTimeout = d
	}
}

// WithStartupWindow sets how long a tier may fail before it counts as started.
func WithStartupWindow(d time.Duration) Option {
	return func(r *Runner) {
		r.startupWindow = d
	}
}

// WithSignals replaces the signals that trigger a graceful shutdown.
func WithSignals(signals ...os.Signal) Option {
	return func(r *Runner) {
		r.signals = signals
	}
}

// Run blocks until ctx is cancelled, a signal arrives, or a service fails.
// It returns the first service failure, or nil after a clean shutdown.
func (r *Runner) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, r.signals...)
	defer stop()

	errCh := make(chan error, len(r.coreServices)+len(r.infrastructureServices))

	log.Info().Msg("Starting infrastructure services")

	if err := r.startTier(ctx, r.infrastructureServices, errCh); err != nil {
		log.Error().Err(err).Msg("Infrastructure services failed to start")

		return errors.Join(err, r.shutdownWithTimeout(r.infrastructureServices))
	}

	log.Info().Msg("Starting core services")

	if err := r.startTier(ctx, r.coreServices, errCh); err != nil {
		log.Error().Err(err).Msg("Core services failed to start")

		return errors.Join(err, r.shutdownAll())
	}

	log.Info().
		Int("pid", os.Getpid()).
		Int("core_services", len(r.coreServices)).
		Int("infra_services", len(r.infrastructureServices)).
		Msg("All services started, waiting for shutdown signal")

	var runErr error

	select {
	case <-ctx.Done():
		log.Warn().Msg("Shutdown signal received")
	case runErr = <-errCh:
		log.Error().Err(runErr).Msg("Service stopped unexpectedly, shutting down")
	}

	shutdownErr := r.shutdownAll()

	if runErr == nil && shutdownErr == nil {
		log.Info().Msg("Graceful shutdown completed")
	}

	return errors.Join(runErr, shutdownErr)
}

func (r *Runner) startTier(ctx context.Context, services []Service, errCh chan<- error) error {
	if len(services) == 0 {
		return nil
	}

	tierErr := make(chan error, len(services))

	for _, svc := range services {
		go func(service Service) {
			err := runService(ctx, service)
			if err == nil {
				return
			}

			tierErr <- err
			errCh <- err
		}(svc)
	}

	timer := time.NewTimer(r.startupWindow)
	defer timer.Stop()

	select {
	case err := <-tierErr:
		return err
	case <-ctx.Done():
		return nil
	case <-timer.C:
		return nil
	}
}

func runService(ctx context.Context, service Service) (err error) { //nolint:nonamedreturns
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %s: %v", ErrServicePanic, service.Name(), rec)
		}
	}()

	log.Info().Str("service_name", service.Name()).Msg("Starting service")

	err = service.Start(ctx)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %w", ErrServiceFailed, service.Name(), err)
	}

	return nil
}

func (r *Runner) shutdownAll() error {
	return errors.Join(
		r.shutdownWithTimeout(r.coreServices),
		r.shutdownWithTimeout(r.infrastructureServices),
	)
}

func (r *Runner) shutdownWithTimeout(services []Service) error {
	if len(services) == 0 {
		return nil
	}

	done := make(chan struct{})

	go func() {
		r.concurrentStop(services)
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(r.shutdownTimeout):
		log.Error().
			Dur("timeout", r.shutdownTimeout).
			Msg("Shutdown timeout exceeded, some services may not have stopped cleanly")

		return ErrShutdownTimeout
	}
}

func (r *Runner) concurrentStop(services []Service) {
	var wg sync.WaitGroup

	for _, svc := range services {
		wg.Add(1)

		go func(service Service) {
			defer wg.Done()

			if err := service.Stop(); err != nil {
				log.Error().
					Err(err).
					Str("service_name", service.Name()).
					Msg("Service failed to stop")

				return
			}

			log.Info().Str("service_name", service.Name()).Msg("Service stopped")
		}(svc)
	}

	wg.Wait()
}
