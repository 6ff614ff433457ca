package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cjs/internal/core/domain"
)

func TestConfig_Roots(t *testing.T) {
	cfg := &domain.Config{
		FixedPaths: []string{"/fixed1", "/shared"},
		Paths:      domain.NewSearchPaths("/shared", "/user1", "/fixed1", "", "/user2"),
	}

	assert.Equal(t, []string{"/fixed1", "/shared", "/user1", "/user2"}, cfg.Roots())
}

func TestConfig_Roots_NilPaths(t *testing.T) {
	cfg := &domain.Config{FixedPaths: []string{"/fixed"}}
	assert.Equal(t, []string{"/fixed"}, cfg.Roots())
}

func TestSearchPaths_IsLive(t *testing.T) {
	paths := domain.NewSearchPaths("/a")
	cfg := &domain.Config{Paths: paths}

	paths.Push("/b", "/c")
	assert.Equal(t, []string{"/a", "/b", "/c"}, cfg.Roots())

	last, ok := paths.Pop()
	assert.True(t, ok)
	assert.Equal(t, "/c", last)
	assert.Equal(t, []string{"/a", "/b"}, cfg.Roots())
}

func TestSearchPaths_Mutation(t *testing.T) {
	paths := domain.NewSearchPaths("/a", "/b")

	assert.True(t, paths.Set(0, "/z"))
	assert.True(t, paths.Set(2, "/c"))
	assert.False(t, paths.Set(5, "/nope"))
	assert.False(t, paths.Set(-1, "/nope"))
	assert.Equal(t, []string{"/z", "/b", "/c"}, paths.Values())

	got, ok := paths.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "/b", got)
	_, ok = paths.Get(3)
	assert.False(t, ok)

	assert.True(t, paths.SetLen(1))
	assert.Equal(t, 1, paths.Len())
	assert.True(t, paths.SetLen(2))
	assert.Equal(t, []string{"/z", ""}, paths.Values())
	assert.False(t, paths.SetLen(-1))

	paths.SetLen(0)
	_, ok = paths.Pop()
	assert.False(t, ok)
}

func TestSearchPaths_ValuesIsSnapshot(t *testing.T) {
	paths := domain.NewSearchPaths("/a")
	snapshot := paths.Values()
	snapshot[0] = "/mutated"

	got, _ := paths.Get(0)
	assert.Equal(t, "/a", got)
}
