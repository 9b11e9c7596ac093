package domain

// ArticleQuery is the full set of query state that shapes the visible
// article list. The zero value means "everything, newest first" except that
// an empty category is not the sentinel; callers should use CategoryAll.
type ArticleQuery struct {
	SearchQuery      string
	SelectedCategory string
	SortBy           SortKey
}

type SortKey string

const SortKeyNewest SortKey = "newest"
const SortKeyOldest SortKey = "oldest"
const SortKeyPopular SortKey = "popular"
const SortKeyTitle SortKey = "title"

var ValidSortKeys = []SortKey{
	SortKeyNewest,
	SortKeyOldest,
	SortKeyPopular,
	SortKeyTitle,
}

// CategoryAll is the sentinel category that disables category filtering.
const CategoryAll = "all"

// Categories is the fixed set of categories offered by the platform,
// including the sentinel.
var Categories = []string{
	CategoryAll,
	"Technology",
	"Programming",
	"Design",
	"Business",
	"Lifestyle",
	"Education",
}
