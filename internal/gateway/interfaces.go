package gateway

import (
	"context"

	"github.com/bloghub/bloghub-client/internal/domain"
)

// Narrow views of the client, so consumers can declare exactly the calls
// they make and tests can stub them.

type ArticleLister interface {
	ListArticles(ctx context.Context, params ListParams) (ArticlesPage, error)
}

type ArticleFetcher interface {
	GetArticle(ctx context.Context, articleID string) (domain.RawArticle, error)
}

type ArticlePublisher interface {
	CreateArticle(ctx context.Context, input ArticleInput) (domain.RawArticle, error)
}

type ArticleUpdater interface {
	UpdateArticle(ctx context.Context, articleID string, input ArticleInput) (domain.RawArticle, error)
}

type ArticleRemover interface {
	DeleteArticle(ctx context.Context, articleID string) error
}

type ArticleLiker interface {
	Like(ctx context.Context, articleID string) error
}

type ArticleCommenter interface {
	Comment(ctx context.Context, articleID, comment string) (domain.RawArticle, error)
}
