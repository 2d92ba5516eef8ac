package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldencrust/bakery/app/services"
)

func TestBlogListNewestFirst(t *testing.T) {
	svc := services.NewBlogService()

	entries := svc.List()
	require.Len(t, entries, 4)
	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].PublishDate.After(entries[i-1].PublishDate),
			"entries must be sorted newest first")
	}
	assert.Equal(t, "the-secret-to-perfect-sourdough", entries[0].Slug)
}

func TestBlogBySlug(t *testing.T) {
	svc := services.NewBlogService()

	post, ok := svc.BySlug("meet-the-baker-marias-story")
	require.True(t, ok)
	assert.Equal(t, "Meet the Baker: Maria's Story", post.Title)
	assert.NotEmpty(t, post.ContentHTML)

	_, ok = svc.BySlug("no-such-post")
	assert.False(t, ok)
}
