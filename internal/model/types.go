package model

import (
	"sort"
	"strings"
	"time"
)

// Post is a single short text post supplied by a corpus.
type Post struct {
	ID        int64     `json:"id" yaml:"id"`
	Author    string    `json:"author" yaml:"author"`
	Text      string    `json:"text" yaml:"text"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// Influencer pairs a username with its follower count.
type Influencer struct {
	Username  string
	Followers int
}

// Canonical folds a username to the lowercase form used for all comparisons.
func Canonical(username string) string {
	return strings.ToLower(username)
}

// FollowsGraph maps a username to the set of usernames it follows.
// A user that follows nobody may be missing as a key.
type FollowsGraph map[string]map[string]struct{}

// Add records that from follows each of to. Self-edges are ignored and the
// entry for from is only created when at least one edge is added.
func (g FollowsGraph) Add(from string, to ...string) {
	from = Canonical(from)
	for _, t := range to {
		t = Canonical(t)
		if t == "" || t == from {
			continue
		}
		set, ok := g[from]
		if !ok {
			set = make(map[string]struct{})
			g[from] = set
		}
		set[t] = struct{}{}
	}
}

// Follows reports whether a follows b.
func (g FollowsGraph) Follows(a, b string) bool {
	_, ok := g[Canonical(a)][Canonical(b)]
	return ok
}

// Following returns the sorted follows set of a.
func (g FollowsGraph) Following(a string) []string {
	set := g[Canonical(a)]
	out := make([]string, 0, len(set))
	for u := range set {
		out = append(out, u)
	}
	sort.Strings(out)
	return out
}

// Authors returns the sorted keys of the graph.
func (g FollowsGraph) Authors() []string {
	out := make([]string, 0, len(g))
	for k := range g {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Users returns every username appearing as a key or a follows-set member, sorted.
func (g FollowsGraph) Users() []string {
	seen := make(map[string]struct{}, len(g))
	for k, set := range g {
		seen[k] = struct{}{}
		for u := range set {
			seen[u] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for u := range seen {
		out = append(out, u)
	}
	sort.Strings(out)
	return out
}

// Edges counts follows relations.
func (g FollowsGraph) Edges() int {
	n := 0
	for _, set := range g {
		n += len(set)
	}
	return n
}
