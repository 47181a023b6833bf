package jobs

import (
	"context"
	"fmt"
	"time"

	"mentiongraph/internal/config"
	"mentiongraph/internal/graph"
	"mentiongraph/internal/influence"
	"mentiongraph/internal/logging"
	"mentiongraph/internal/metrics"
	"mentiongraph/internal/model"
)

// PostSource yields posts with timestamps in [start,end); zero bounds are open.
// *corpus.DB implements it.
type PostSource interface {
	LoadPosts(ctx context.Context, start, end time.Time) ([]model.Post, error)
}

// Posts serves an in-memory corpus as a PostSource.
type Posts []model.Post

func (p Posts) LoadPosts(ctx context.Context, start, end time.Time) ([]model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]model.Post, 0, len(p))
	for _, post := range p {
		if !start.IsZero() && post.Timestamp.Before(start) {
			continue
		}
		if !end.IsZero() && !post.Timestamp.Before(end) {
			continue
		}
		out = append(out, post)
	}
	return out, nil
}

// Result is the outcome of one analysis run.
type Result struct {
	Posts int
	Graph model.FollowsGraph
	Top   []model.Influencer
}

// RunAnalysis loads the configured window of posts, builds the follows graph
// and ranks the top influencers.
func RunAnalysis(ctx context.Context, src PostSource, cfg config.AnalysisConfig, now time.Time) (Result, error) {
	var since time.Time
	if cfg.WindowHours > 0 {
		since = now.Add(-time.Duration(cfg.WindowHours) * time.Hour)
	}
	posts, err := src.LoadPosts(ctx, since, time.Time{})
	if err != nil {
		return Result{}, fmt.Errorf("load posts: %w", err)
	}
	start := time.Now()
	g, err := graph.BuildParallel(ctx, posts, cfg.Workers)
	if err != nil {
		return Result{}, fmt.Errorf("build graph: %w", err)
	}
	metrics.ObserveBuild(len(posts), g.Edges())
	top := influence.Top(g, cfg.TopN)
	metrics.RankRuns.Inc()
	metrics.ObserveAnalysisDuration(start)
	logging.Info("analysis_done", map[string]any{
		"posts":   len(posts),
		"authors": len(g),
		"edges":   g.Edges(),
		"since":   since,
	})
	return Result{Posts: len(posts), Graph: g, Top: top}, nil
}
