package domain

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

// Article is an article shaped for display: identifiers and derived fields
// are already resolved from the raw API record.
type Article struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Excerpt       string    `json:"excerpt"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	Author        string    `json:"author"`
	PublishDate   string    `json:"publish_date"`
	EffectiveDate time.Time `json:"effective_date"`
	ReadTime      string    `json:"read_time"`
	Views         int       `json:"views"`
	Likes         int       `json:"likes"`
	Comments      []Comment `json:"comments"`
}

type Comment struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

// RawArticle is the wire shape of an article record as the remote API
// returns it. All fields are optional; mapping never fails on absence.
type RawArticle struct {
	MongoID     string       `json:"_id"`
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	Excerpt     string       `json:"excerpt"`
	Category    string       `json:"category"`
	Tags        []string     `json:"tags"`
	Author      *RawAuthor   `json:"authorId"`
	PublishedAt *time.Time   `json:"publishedAt"`
	CreatedAt   *time.Time   `json:"createdAt"`
	Views       int          `json:"views"`
	Likes       int          `json:"likes"`
	LikedBy     []string     `json:"likedBy"`
	Comments    []RawComment `json:"comments"`
}

type RawAuthor struct {
	MongoID string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

type RawComment struct {
	MongoID    string     `json:"_id"`
	ID         string     `json:"id"`
	AuthorName string     `json:"authorName"`
	Text       string     `json:"text"`
	CreatedAt  *time.Time `json:"createdAt"`
}

const unknownAuthor = "Unknown Author"

// publishDateFormat matches the date presentation used across article views.
const publishDateFormat = "Jan 2, 2006"

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// MapArticle resolves a raw API record into its display form.
func MapArticle(raw RawArticle) Article {
	id := raw.MongoID
	if id == "" {
		id = raw.ID
	}

	author := unknownAuthor
	if raw.Author != nil && raw.Author.Name != "" {
		author = raw.Author.Name
	}

	likes := raw.Likes
	if len(raw.LikedBy) > 0 {
		likes = len(raw.LikedBy)
	}
	if likes < 0 {
		likes = 0
	}

	views := raw.Views
	if views < 0 {
		views = 0
	}

	effective := effectiveDate(raw)
	publishDate := "N/A"
	if !effective.IsZero() {
		publishDate = effective.Format(publishDateFormat)
	}

	comments := make([]Comment, 0, len(raw.Comments))
	for _, rc := range raw.Comments {
		comments = append(comments, mapComment(rc))
	}

	return Article{
		ID:            id,
		Title:         raw.Title,
		Content:       raw.Content,
		Excerpt:       raw.Excerpt,
		Category:      raw.Category,
		Tags:          append([]string(nil), raw.Tags...),
		Author:        author,
		PublishDate:   publishDate,
		EffectiveDate: effective,
		ReadTime:      ReadingTime(raw.Content),
		Views:         views,
		Likes:         likes,
		Comments:      comments,
	}
}

// MapArticles maps a whole page of raw records, preserving order.
func MapArticles(raws []RawArticle) []Article {
	articles := make([]Article, 0, len(raws))
	for _, raw := range raws {
		articles = append(articles, MapArticle(raw))
	}
	return articles
}

func mapComment(raw RawComment) Comment {
	id := raw.MongoID
	if id == "" {
		id = raw.ID
	}

	var createdAt time.Time
	if raw.CreatedAt != nil {
		createdAt = *raw.CreatedAt
	}

	return Comment{
		ID:         id,
		AuthorName: raw.AuthorName,
		Text:       raw.Text,
		CreatedAt:  createdAt,
	}
}

func effectiveDate(raw RawArticle) time.Time {
	if raw.PublishedAt != nil {
		return *raw.PublishedAt
	}
	if raw.CreatedAt != nil {
		return *raw.CreatedAt
	}
	return time.Time{}
}

// ReadingTime estimates reading duration from HTML content at 200 words per
// minute, with a one minute floor.
func ReadingTime(content string) string {
	text := htmlTagPattern.ReplaceAllString(content, "")
	words := strings.Fields(text)
	minutes := int(math.Ceil(float64(len(words)) / 200))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
