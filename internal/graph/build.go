package graph

import (
	"context"

	"golang.org/x/sync/errgroup"

	"mentiongraph/internal/mention"
	"mentiongraph/internal/model"
)

// Build guesses who follows whom: an author follows everyone they @-mention.
// Self-mentions are ignored and posts without other mentions add no key.
// posts is not modified.
func Build(posts []model.Post) model.FollowsGraph {
	g := make(model.FollowsGraph)
	for _, p := range posts {
		author := model.Canonical(p.Author)
		mentions := mention.Extract(p.Text)
		delete(mentions, author)
		for u := range mentions {
			g.Add(author, u)
		}
	}
	return g
}

// Merge unions graphs key by key into a new graph. Order of parts does not
// matter and none of them is modified.
func Merge(parts ...model.FollowsGraph) model.FollowsGraph {
	out := make(model.FollowsGraph)
	for _, part := range parts {
		for k, set := range part {
			for u := range set {
				out.Add(k, u)
			}
		}
	}
	return out
}

// BuildParallel splits posts into contiguous partitions, builds each on its
// own goroutine and merges the results. The graph equals Build(posts).
func BuildParallel(ctx context.Context, posts []model.Post, workers int) (model.FollowsGraph, error) {
	if workers <= 1 || len(posts) < 2 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return Build(posts), nil
	}
	if workers > len(posts) {
		workers = len(posts)
	}
	chunk := (len(posts) + workers - 1) / workers
	parts := make([]model.FollowsGraph, workers)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		i := i
		start := i * chunk
		if start >= len(posts) {
			break
		}
		end := min(start+chunk, len(posts))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			parts[i] = Build(posts[start:end])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return Merge(parts...), nil
}
