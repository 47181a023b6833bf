package influence

import (
	"sort"

	"mentiongraph/internal/model"
)

// FollowerCounts maps every user in g to the number of keys that follow it.
// Keys nobody follows are present with 0.
func FollowerCounts(g model.FollowsGraph) map[string]int {
	counts := make(map[string]int, len(g))
	for _, follows := range g {
		for u := range follows {
			counts[u]++
		}
	}
	for k := range g {
		if _, ok := counts[k]; !ok {
			counts[k] = 0
		}
	}
	return counts
}

// RankWithCounts orders every user in g by descending follower count.
// Equal counts are ordered by username.
func RankWithCounts(g model.FollowsGraph) []model.Influencer {
	counts := FollowerCounts(g)
	out := make([]model.Influencer, 0, len(counts))
	for u, n := range counts {
		out = append(out, model.Influencer{Username: u, Followers: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Followers != out[j].Followers {
			return out[i].Followers > out[j].Followers
		}
		return out[i].Username < out[j].Username
	})
	return out
}

// Rank returns the usernames of RankWithCounts.
func Rank(g model.FollowsGraph) []string {
	ranked := RankWithCounts(g)
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Username
	}
	return out
}

// Top returns the first n entries of RankWithCounts, or all of them when n <= 0.
func Top(g model.FollowsGraph, n int) []model.Influencer {
	ranked := RankWithCounts(g)
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
