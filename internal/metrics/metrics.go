package metrics

import (
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	GraphBuilds = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mentiongraph_graph_builds_total",
		Help: "Total follows graph builds",
	})
	PostsProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mentiongraph_posts_processed_total",
		Help: "Total posts fed into graph builds",
	})
	EdgesInferred = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mentiongraph_edges_inferred_total",
		Help: "Total follows edges produced by graph builds",
	})
	RankRuns = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mentiongraph_rank_runs_total",
		Help: "Total influence rankings computed",
	})
	AnalysisDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "mentiongraph_analysis_duration_seconds",
		Help:    "Build plus rank duration seconds",
		Buckets: prometheus.DefBuckets,
	})
	CommandRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mentiongraph_command_runs_total",
		Help: "CLI command invocations",
	}, []string{"command"})
	CommandErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mentiongraph_command_errors_total",
		Help: "CLI command failures",
	}, []string{"command"})
	CommandDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mentiongraph_command_duration_seconds",
		Help:    "CLI command wall time seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"command"})
)

func init() {
	prometheus.MustRegister(GraphBuilds, PostsProcessed, EdgesInferred, RankRuns, AnalysisDuration, CommandRuns, CommandErrors, CommandDuration)
}

// Handler serves /metrics and /health.
func Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	return mux
}

// StartServer starts a metrics HTTP server on addr (e.g., ":9090").
func StartServer(addr string) {
	if addr == "" {
		addr = os.Getenv("METRICS_ADDR")
	}
	if addr == "" {
		return
	}
	go func() { _ = http.ListenAndServe(addr, Handler()) }()
}

// ObserveBuild records one graph build over posts producing edges.
func ObserveBuild(posts, edges int) {
	GraphBuilds.Inc()
	PostsProcessed.Add(float64(posts))
	EdgesInferred.Add(float64(edges))
}

// ObserveAnalysisDuration records a run duration
func ObserveAnalysisDuration(start time.Time) {
	AnalysisDuration.Observe(time.Since(start).Seconds())
}

func IncCommandRun(cmd string)   { CommandRuns.WithLabelValues(cmd).Inc() }
func IncCommandError(cmd string) { CommandErrors.WithLabelValues(cmd).Inc() }

// ObserveCommandDuration records how long a subcommand ran.
func ObserveCommandDuration(cmd string, d time.Duration) {
	CommandDuration.WithLabelValues(cmd).Observe(d.Seconds())
}
