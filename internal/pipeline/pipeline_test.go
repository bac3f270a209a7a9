package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/pagelint/pagelint/internal/model"
)

// stubStep is a test step with controllable behavior.
type stubStep struct {
	name string
	err  error
	ran  *bool
}

func (s *stubStep) Do(_ context.Context, _ *model.AuditReport) error {
	if s.ran != nil {
		*s.ran = true
	}
	return s.err
}

func (s *stubStep) Name() string { return s.name }

// TestPipelineExecute tests sequential execution and check tracking.
func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	p := New(WithLogger(slog.Default()))
	p.AddSteps(&stubStep{name: "first"}, &stubStep{name: "second"})

	if p.StepCount() != 2 {
		t.Fatalf("StepCount = %d, expected 2", p.StepCount())
	}

	report := model.NewAuditReport("example.com")
	if err := p.Execute(context.Background(), report); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(report.PerformedChecks) != 2 {
		t.Errorf("PerformedChecks = %v", report.PerformedChecks)
	}
	names := p.StepNames()
	if names[0] != "first" || names[1] != "second" {
		t.Errorf("StepNames = %v", names)
	}
}

// TestPipelineStopsOnError tests the default fail-fast behavior.
func TestPipelineStopsOnError(t *testing.T) {
	t.Parallel()

	stepErr := errors.New("boom")
	var secondRan bool

	p := New()
	p.AddSteps(
		&stubStep{name: "failing", err: stepErr},
		&stubStep{name: "after", ran: &secondRan},
	)

	report := model.NewAuditReport("example.com")
	err := p.Execute(context.Background(), report)
	if !errors.Is(err, stepErr) {
		t.Fatalf("Execute = %v, expected step error", err)
	}
	if secondRan {
		t.Error("second step ran after failure without continueOnError")
	}
	if report.ErrorMessage != "boom" {
		t.Errorf("error not recorded in report: %q", report.ErrorMessage)
	}
}

// TestPipelineContinueOnError tests that later checks still run.
func TestPipelineContinueOnError(t *testing.T) {
	t.Parallel()

	var secondRan bool

	p := New(WithContinueOnError(true))
	p.AddSteps(
		&stubStep{name: "failing", err: errors.New("boom")},
		&stubStep{name: "after", ran: &secondRan},
	)

	report := model.NewAuditReport("example.com")
	if err := p.Execute(context.Background(), report); err != nil {
		t.Fatalf("Execute = %v, expected nil with continueOnError", err)
	}
	if !secondRan {
		t.Error("second step should run with continueOnError")
	}
	if len(report.PerformedChecks) != 2 {
		t.Errorf("PerformedChecks = %v", report.PerformedChecks)
	}
}

// TestPipelineCancellation tests context cancellation between checks.
func TestPipelineCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New()
	p.AddStep(&stubStep{name: "never"})

	report := model.NewAuditReport("example.com")
	err := p.Execute(ctx, report)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Execute = %v, expected context.Canceled", err)
	}
	if !report.TimedOut {
		t.Error("TimedOut should be set on cancellation")
	}
}

// TestDefaultPipelineCheckSelection tests check filtering and ordering.
func TestDefaultPipelineCheckSelection(t *testing.T) {
	t.Parallel()

	input := &Input{}

	all := DefaultPipeline(input, nil)
	if all.StepCount() != 8 {
		t.Errorf("default pipeline has %d steps, expected 8", all.StepCount())
	}

	subset := DefaultPipeline(input, []string{"headers", "robots"})
	names := subset.StepNames()
	if len(names) != 2 || names[0] != "robots" || names[1] != "headers" {
		t.Errorf("subset steps = %v, expected canonical order [robots headers]", names)
	}
}
