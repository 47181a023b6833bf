package analytics

import (
	"sort"
	"time"

	"mentiongraph/internal/mention"
	"mentiongraph/internal/model"
)

// HourlyActivity aggregates posts into per-hour UTC buckets, counting
// "posts" and "mentions" (distinct non-self mentions per post).
func HourlyActivity(posts []model.Post) map[time.Time]map[string]int {
	buckets := make(map[time.Time]map[string]int)
	for _, p := range posts {
		ts := p.Timestamp.UTC()
		key := time.Date(ts.Year(), ts.Month(), ts.Day(), ts.Hour(), 0, 0, 0, time.UTC)
		if _, ok := buckets[key]; !ok {
			buckets[key] = make(map[string]int)
		}
		m := mention.Extract(p.Text)
		delete(m, model.Canonical(p.Author))
		buckets[key]["posts"]++
		buckets[key]["mentions"] += len(m)
	}
	return buckets
}

// SortedBucketKeys returns sorted hour keys.
func SortedBucketKeys(m map[time.Time]map[string]int) []time.Time {
	keys := make([]time.Time, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })
	return keys
}
