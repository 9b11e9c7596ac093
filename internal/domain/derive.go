package domain

import (
	"sort"
	"strings"
)

// DeriveVisible computes the display list for a query: free-text search,
// category filter, then sort. It is a pure function; the input slice is
// never mutated or aliased, and ties keep their input-relative order.
func DeriveVisible(articles []Article, query ArticleQuery) []Article {
	result := make([]Article, 0, len(articles))

	search := strings.ToLower(strings.TrimSpace(query.SearchQuery))
	for _, article := range articles {
		if search != "" && !matchesSearch(article, search) {
			continue
		}
		if query.SelectedCategory != "" && query.SelectedCategory != CategoryAll &&
			article.Category != query.SelectedCategory {
			continue
		}
		result = append(result, article)
	}

	switch query.SortBy {
	case SortKeyNewest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].EffectiveDate.After(result[j].EffectiveDate)
		})
	case SortKeyOldest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].EffectiveDate.Before(result[j].EffectiveDate)
		})
	case SortKeyPopular:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Views > result[j].Views
		})
	case SortKeyTitle:
		sort.SliceStable(result, func(i, j int) bool {
			return strings.ToLower(result[i].Title) < strings.ToLower(result[j].Title)
		})
	}

	return result
}

// matchesSearch reports whether the lowercased query appears in any of the
// searchable fields. Absent fields never match and never fail.
func matchesSearch(article Article, search string) bool {
	if strings.Contains(strings.ToLower(article.Title), search) {
		return true
	}
	if strings.Contains(strings.ToLower(article.Excerpt), search) {
		return true
	}
	if strings.Contains(strings.ToLower(article.Author), search) {
		return true
	}
	if strings.Contains(strings.ToLower(article.Category), search) {
		return true
	}
	for _, tag := range article.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}
