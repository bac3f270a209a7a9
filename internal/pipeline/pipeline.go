package pipeline

import (
	"context"
	"log/slog"

	"github.com/pagelint/pagelint/internal/model"
)

// Step defines the interface that all audit checks must implement.
// Steps are executed in sequence, with each step receiving the
// accumulated report from previous steps.
//
// Design decision: We use an interface rather than function types because:
// 1. It allows steps to carry configuration state
// 2. It provides a Name() method for logging and debugging
// 3. It's more extensible for future features (e.g., priority, dependencies)
type Step interface {
	// Do executes the check.
	// Returns an error if the check fails critically; non-critical
	// problems should be recorded as findings and return nil.
	Do(ctx context.Context, report *model.AuditReport) error

	// Name returns the check's name for logging and report purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple checks.
type Pipeline struct {
	// steps contains the ordered list of checks to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger

	// continueOnError determines whether to continue executing checks
	// after one fails. If false, the pipeline stops on first error.
	continueOnError bool
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithContinueOnError configures the pipeline to continue execution
// even when a check fails. Failed checks are logged and their errors
// are recorded in the report, but subsequent checks still execute.
//
// Design decision: This option exists because one malformed input
// (e.g., an unparseable sitemap) shouldn't prevent the remaining checks
// from running. The CLI enables it for full audits.
func WithContinueOnError(continueOnError bool) Option {
	return func(p *Pipeline) {
		p.continueOnError = continueOnError
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps:           make([]Step, 0),
		continueOnError: false,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a check to the pipeline.
// Checks are executed in the order they are added.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple checks to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all checks in sequence.
// It respects context cancellation and logs each check's execution.
//
// Design decision: We check context.Done() before each step rather than
// during, because individual checks are fast and non-blocking. This
// still lets long batch runs be cancelled between checks.
//
// Returns the first error encountered if continueOnError is false,
// or nil if all checks complete (errors are recorded in the report).
func (p *Pipeline) Execute(ctx context.Context, report *model.AuditReport) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("audit cancelled",
				"check", step.Name(),
				"reason", ctx.Err(),
			)
			report.TimedOut = true
			return ctx.Err()
		default:
		}

		p.logger.Debug("running check",
			"check", step.Name(),
			"site", report.Site,
		)

		if err := step.Do(ctx, report); err != nil {
			p.logger.Error("check failed",
				"check", step.Name(),
				"site", report.Site,
				"error", err,
			)

			report.Error = err
			report.ErrorMessage = err.Error()

			if !p.continueOnError {
				return err
			}
		}

		report.PerformedChecks = append(report.PerformedChecks, step.Name())
	}

	return nil
}

// StepCount returns the number of checks in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all checks in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
