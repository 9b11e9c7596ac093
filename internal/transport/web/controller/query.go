package controller

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"

	"github.com/bloghub/bloghub-client/internal/domain"
	"github.com/bloghub/bloghub-client/internal/gateway"
)

const maxListLimit = 100

// listParamsFromQuery parses the remote paging parameters.
func listParamsFromQuery(q url.Values) (gateway.ListParams, error) {
	var params gateway.ListParams

	if q.Has("page") {
		page, err := strconv.ParseInt(q.Get("page"), 10, 32)
		if err != nil {
			return gateway.ListParams{}, fmt.Errorf("unable to parse page from query: %w", err)
		}
		if page < 1 {
			return gateway.ListParams{}, fmt.Errorf("invalid page value [%d]", page)
		}
		params.Page = int(page)
	}

	if q.Has("limit") {
		limit, err := strconv.ParseInt(q.Get("limit"), 10, 32)
		if err != nil {
			return gateway.ListParams{}, fmt.Errorf("unable to parse limit from query: %w", err)
		}
		if limit < 1 {
			return gateway.ListParams{}, fmt.Errorf("invalid limit value [%d]", limit)
		}
		if limit > maxListLimit {
			return gateway.ListParams{}, fmt.Errorf("limit [%d] exceeds maximum [%d]", limit, maxListLimit)
		}
		params.Limit = int(limit)
	}

	params.AuthorID = q.Get("author_id")

	return params, nil
}

// articleQueryFromQuery parses the display filter/sort parameters.
func articleQueryFromQuery(q url.Values) (domain.ArticleQuery, error) {
	query := domain.ArticleQuery{
		SearchQuery:      q.Get("search"),
		SelectedCategory: domain.CategoryAll,
		SortBy:           domain.SortKeyNewest,
	}

	if q.Has("category") {
		query.SelectedCategory = q.Get("category")
	}

	if q.Has("sort") {
		sortBy := domain.SortKey(q.Get("sort"))
		if !slices.Contains(domain.ValidSortKeys, sortBy) {
			return domain.ArticleQuery{}, fmt.Errorf("unrecognised sort key: %s", sortBy)
		}
		query.SortBy = sortBy
	}

	return query, nil
}
