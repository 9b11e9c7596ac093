package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bloghub/bloghub-client/internal/domain"
)

func TestMapArticle(t *testing.T) {
	published := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	created := time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		raw  domain.RawArticle
		want func(t *testing.T, got domain.Article)
	}{
		{
			name: "backend_id_preferred",
			raw:  domain.RawArticle{MongoID: "abc123", ID: "other"},
			want: func(t *testing.T, got domain.Article) {
				assert.Equal(t, "abc123", got.ID)
			},
		},
		{
			name: "plain_id_used_when_backend_id_absent",
			raw:  domain.RawArticle{ID: "plain"},
			want: func(t *testing.T, got domain.Article) {
				assert.Equal(t, "plain", got.ID)
			},
		},
		{
			name: "author_resolved_from_nested_reference",
			raw:  domain.RawArticle{Author: &domain.RawAuthor{Name: "Sara K"}},
			want: func(t *testing.T, got domain.Article) {
				assert.Equal(t, "Sara K", got.Author)
			},
		},
		{
			name: "missing_author_falls_back",
			raw:  domain.RawArticle{},
			want: func(t *testing.T, got domain.Article) {
				assert.Equal(t, "Unknown Author", got.Author)
			},
		},
		{
			name: "likes_derived_from_liked_by_list",
			raw:  domain.RawArticle{Likes: 2, LikedBy: []string{"u1", "u2", "u3"}},
			want: func(t *testing.T, got domain.Article) {
				assert.Equal(t, 3, got.Likes)
			},
		},
		{
			name: "likes_fall_back_to_counter",
			raw:  domain.RawArticle{Likes: 4},
			want: func(t *testing.T, got domain.Article) {
				assert.Equal(t, 4, got.Likes)
			},
		},
		{
			name: "negative_counters_floored_at_zero",
			raw:  domain.RawArticle{Likes: -2, Views: -5},
			want: func(t *testing.T, got domain.Article) {
				assert.Equal(t, 0, got.Likes)
				assert.Equal(t, 0, got.Views)
			},
		},
		{
			name: "publish_date_from_published_at",
			raw:  domain.RawArticle{PublishedAt: &published, CreatedAt: &created},
			want: func(t *testing.T, got domain.Article) {
				assert.Equal(t, "Mar 15, 2024", got.PublishDate)
				assert.Equal(t, published, got.EffectiveDate)
			},
		},
		{
			name: "publish_date_falls_back_to_created_at",
			raw:  domain.RawArticle{CreatedAt: &created},
			want: func(t *testing.T, got domain.Article) {
				assert.Equal(t, "Feb 1, 2024", got.PublishDate)
				assert.Equal(t, created, got.EffectiveDate)
			},
		},
		{
			name: "missing_dates_render_as_not_available",
			raw:  domain.RawArticle{},
			want: func(t *testing.T, got domain.Article) {
				assert.Equal(t, "N/A", got.PublishDate)
				assert.True(t, got.EffectiveDate.IsZero())
			},
		},
		{
			name: "comments_mapped_in_order",
			raw: domain.RawArticle{Comments: []domain.RawComment{
				{MongoID: "c1", AuthorName: "A", Text: "first"},
				{ID: "c2", AuthorName: "B", Text: "second"},
			}},
			want: func(t *testing.T, got domain.Article) {
				assert.Equal(t, []string{"c1", "c2"}, []string{got.Comments[0].ID, got.Comments[1].ID})
				assert.Equal(t, "first", got.Comments[0].Text)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.want(t, domain.MapArticle(tc.raw))
		})
	}
}

func TestReadingTime(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{name: "empty_content", content: "", want: "1 min read"},
		{name: "short_content", content: "<p>a few words only</p>", want: "1 min read"},
		{name: "tags_do_not_count_as_words", content: "<div><span></span></div>", want: "1 min read"},
		{name: "long_content", content: "<p>" + strings.Repeat("word ", 450) + "</p>", want: "3 min read"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domain.ReadingTime(tc.content))
		})
	}
}
