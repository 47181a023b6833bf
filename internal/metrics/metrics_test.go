package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMetricsExposure(t *testing.T) {
	ObserveBuild(10, 4)
	RankRuns.Inc()
	IncCommandRun("rank")
	IncCommandError("rank")
	ObserveCommandDuration("rank", 250*time.Millisecond)
	ObserveAnalysisDuration(time.Now().Add(-1500 * time.Millisecond))

	h := Handler()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rec.Code)
	}
	body := rec.Body.String()
	for _, m := range []string{
		"mentiongraph_graph_builds_total",
		"mentiongraph_posts_processed_total",
		"mentiongraph_edges_inferred_total",
		"mentiongraph_rank_runs_total",
		"mentiongraph_analysis_duration_seconds",
		`mentiongraph_command_runs_total{command="rank"}`,
		`mentiongraph_command_errors_total{command="rank"}`,
		`mentiongraph_command_duration_seconds_count{command="rank"}`,
	} {
		if !strings.Contains(body, m) {
			t.Fatalf("expected metric %s in body", m)
		}
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("health status: %d", rec.Code)
	}
}
