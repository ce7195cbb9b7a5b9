package blog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlogPostValidate(t *testing.T) {
	valid := BlogPost{
		Title:      "Self-hosting n8n on a VPS",
		Slug:       "self-hosting-n8n",
		Excerpt:    "A walkthrough",
		Content:    "## Setup\n...",
		CoverImage: "https://cdn.example.com/cover.png",
		Tags:       []string{"n8n", "self-hosted"},
	}
	require.NoError(t, valid.Validate())

	noOptionals := BlogPost{Title: "t", Slug: "t", Content: "c"}
	require.NoError(t, noOptionals.Validate())

	tests := []struct {
		name   string
		mutate func(p *BlogPost)
	}{
		{"missing title", func(p *BlogPost) { p.Title = "" }},
		{"missing slug", func(p *BlogPost) { p.Slug = "" }},
		{"missing content", func(p *BlogPost) { p.Content = "" }},
		{"malformed cover image", func(p *BlogPost) { p.CoverImage = "not a url" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			require.Error(t, p.Validate())
		})
	}
}
