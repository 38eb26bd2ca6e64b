// Package app provides the service that runs the session pipeline:
// dispatch a sensor package, build its report, emit the report line.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/okian/stride/internal/domain/session"
	"github.com/okian/stride/pkg/logger"
	"github.com/okian/stride/pkg/metrics"
)

// Service turns sensor packages into report lines on the configured writer.
type Service struct {
	out    io.Writer
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithOutput sets the writer report lines are written to.
func WithOutput(w io.Writer) Option {
	return func(s *Service) {
		if w != nil {
			s.out = w
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		out: os.Stdout,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Process decodes and reports each sensor package, one line per package, in
// input order. The first bad package aborts the whole batch; there is no
// per-item isolation. Honors ctx cancellation between packages.
func (s *Service) Process(ctx context.Context, pkgs []session.Package) error {
	runID := uuid.NewString()

	for i, p := range pkgs {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("processing cancelled: %w", err)
		}

		sess, err := session.ReadPackage(p.Code, p.Data)
		if err != nil {
			metrics.RecordDispatchError()
			if s.logger != nil {
				s.logger.Error(ctx, "sensor package rejected",
					logger.String("run_id", runID),
					logger.Int("index", i),
					logger.Error(err))
			}
			return fmt.Errorf("package %d: %w", i, err)
		}

		rep := sess.BuildReport()
		if _, err := fmt.Fprintln(s.out, rep.Message()); err != nil {
			return fmt.Errorf("write report: %w", err)
		}

		metrics.RecordSessionProcessed(string(p.Code))
		metrics.ObserveCalories(rep.Calories)

		if s.logger != nil {
			s.logger.Debug(ctx, "session reported",
				logger.String("run_id", runID),
				logger.String("workout_type", string(p.Code)),
				logger.Float64("distance_km", rep.DistanceKm),
				logger.Float64("calories", rep.Calories))
		}
	}

	return nil
}
