package pipeline

import (
	"context"
	"sync"
	"testing"

	"github.com/pagelint/pagelint/internal/model"
)

// TestProcessBatch tests concurrent auditing preserves order.
func TestProcessBatch(t *testing.T) {
	t.Parallel()

	targets := []Target{
		{Site: "a.com", Input: &Input{Headers: "Server: nginx"}},
		{Site: "b.com", Input: &Input{RobotsTxt: "User-agent: *\nDisallow: /", RobotsPath: "/x"}},
		{Site: "c.com", Input: &Input{}},
	}

	bp := NewBatchProcessor(func(input *Input) *Pipeline {
		return DefaultPipeline(input, nil)
	}, WithConcurrency(2))

	reports, err := bp.ProcessBatch(context.Background(), targets)
	if err != nil {
		t.Fatalf("ProcessBatch failed: %v", err)
	}

	if len(reports) != 3 {
		t.Fatalf("got %d reports, expected 3", len(reports))
	}
	for i, site := range []string{"a.com", "b.com", "c.com"} {
		if reports[i] == nil || reports[i].Site != site {
			t.Errorf("reports[%d] = %+v, expected site %s", i, reports[i], site)
		}
	}

	if reports[0].TotalFindings() == 0 {
		t.Error("a.com should have header findings")
	}
	if got := reports[1].FindingsByCheck("robots"); len(got) != 1 || got[0].Type != "robots_blocked" {
		t.Errorf("b.com robots findings = %v", got)
	}
	if reports[2].TotalFindings() != 0 {
		t.Errorf("c.com with empty input should have no findings, got %d", reports[2].TotalFindings())
	}
}

// TestProcessBatchCancelled tests cancellation propagation.
func TestProcessBatchCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	bp := NewBatchProcessor(func(input *Input) *Pipeline {
		return DefaultPipeline(input, nil)
	})

	_, err := bp.ProcessBatch(ctx, []Target{{Site: "a.com", Input: &Input{}}})
	if err == nil {
		t.Error("expected error for cancelled context")
	}
}

// TestProcessBatchWithCallback tests streaming results.
func TestProcessBatchWithCallback(t *testing.T) {
	t.Parallel()

	targets := []Target{
		{Site: "a.com", Input: &Input{}},
		{Site: "b.com", Input: &Input{}},
	}

	var mu sync.Mutex
	seen := make(map[int]*model.AuditReport)

	bp := NewBatchProcessor(func(input *Input) *Pipeline {
		return DefaultPipeline(input, nil)
	})

	err := bp.ProcessBatchWithCallback(context.Background(), targets,
		func(report *model.AuditReport, index int) {
			mu.Lock()
			seen[index] = report
			mu.Unlock()
		})
	if err != nil {
		t.Fatalf("ProcessBatchWithCallback failed: %v", err)
	}

	if len(seen) != 2 {
		t.Fatalf("callback called %d times, expected 2", len(seen))
	}
	if seen[0].Site != "a.com" || seen[1].Site != "b.com" {
		t.Errorf("callback indices wrong: %v", seen)
	}
}
