package domain

// DashboardStats aggregates a user's published articles for the dashboard
// header cards.
type DashboardStats struct {
	TotalArticles int `json:"total_articles"`
	TotalViews    int `json:"total_views"`
	TotalLikes    int `json:"total_likes"`
	TotalComments int `json:"total_comments"`
}

func ComputeStats(articles []Article) DashboardStats {
	var stats DashboardStats
	stats.TotalArticles = len(articles)
	for _, article := range articles {
		stats.TotalViews += article.Views
		stats.TotalLikes += article.Likes
		stats.TotalComments += len(article.Comments)
	}
	return stats
}

// RemoveArticleStats adjusts stats after a deletion without refetching the
// whole list. Counters are floored at zero.
func RemoveArticleStats(stats DashboardStats, article Article) DashboardStats {
	next := DashboardStats{
		TotalArticles: stats.TotalArticles - 1,
		TotalViews:    stats.TotalViews - article.Views,
		TotalLikes:    stats.TotalLikes - article.Likes,
		TotalComments: stats.TotalComments - len(article.Comments),
	}
	if next.TotalArticles < 0 {
		next.TotalArticles = 0
	}
	if next.TotalViews < 0 {
		next.TotalViews = 0
	}
	if next.TotalLikes < 0 {
		next.TotalLikes = 0
	}
	if next.TotalComments < 0 {
		next.TotalComments = 0
	}
	return next
}
