package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFollowsGraphAddSkipsSelfAndCase(t *testing.T) {
	g := FollowsGraph{}
	g.Add("Alice", "BOB", "alice", "")
	g.Add("carol")

	assert.True(t, g.Follows("alice", "bob"))
	assert.True(t, g.Follows("ALICE", "Bob"))
	assert.False(t, g.Follows("alice", "alice"))
	_, ok := g["carol"]
	assert.False(t, ok, "no key without edges")
	assert.Equal(t, 1, g.Edges())
}

func TestFollowsGraphUsers(t *testing.T) {
	g := FollowsGraph{}
	g.Add("dave", "charlie")
	g.Add("alice", "charlie", "bob")
	g["erin"] = map[string]struct{}{}

	assert.Equal(t, []string{"alice", "bob", "charlie", "dave", "erin"}, g.Users())
	assert.Equal(t, []string{"alice", "dave", "erin"}, g.Authors())
	assert.Equal(t, []string{"bob", "charlie"}, g.Following("alice"))
	assert.Empty(t, g.Following("nobody"))
}
