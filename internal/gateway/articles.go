package gateway

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bloghub/bloghub-client/internal/domain"
)

// ListParams are the server-side paging parameters for article listings.
// Filtering and sorting for display happen client-side in domain.DeriveVisible.
type ListParams struct {
	Limit    int
	Page     int
	AuthorID string
}

func (p ListParams) queryParams() url.Values {
	params := url.Values{}
	if p.Limit > 0 {
		params.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Page > 0 {
		params.Set("page", strconv.Itoa(p.Page))
	}
	if p.AuthorID != "" {
		params.Set("authorId", p.AuthorID)
	}
	return params
}

// ArticlesPage is the paginated article listing response.
type ArticlesPage struct {
	Articles   []domain.RawArticle `json:"articles"`
	TotalPages int                 `json:"totalPages"`
	Total      int                 `json:"total"`
}

// Attachment is a binary file included with an article create or update.
type Attachment struct {
	Filename string
	Reader   io.Reader
}

// ArticleInput carries the fields of an article create or partial update.
// A non-nil Attachment switches the payload to multipart form encoding;
// otherwise the fields go out as JSON. The caller decides which, by
// supplying the attachment or not.
type ArticleInput struct {
	Title    string   `json:"title,omitempty"`
	Content  string   `json:"content,omitempty"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Excerpt  string   `json:"excerpt,omitempty"`

	Attachment *Attachment `json:"-"`
}

// ListArticles fetches a page of raw article records.
func (c *Client) ListArticles(ctx context.Context, params ListParams) (ArticlesPage, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, pathWithQuery("/articles", params.queryParams()))
	if err != nil {
		return ArticlesPage{}, err
	}

	var result ArticlesPage
	if err := c.handleResponse(resp, &result); err != nil {
		return ArticlesPage{}, err
	}

	return result, nil
}

// GetArticle retrieves a single raw article record by ID.
func (c *Client) GetArticle(ctx context.Context, articleID string) (domain.RawArticle, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/articles/"+url.PathEscape(articleID))
	if err != nil {
		return domain.RawArticle{}, err
	}

	var article domain.RawArticle
	if err := c.handleResponse(resp, &article); err != nil {
		return domain.RawArticle{}, err
	}

	return article, nil
}

// CreateArticle publishes a new article.
func (c *Client) CreateArticle(ctx context.Context, input ArticleInput) (domain.RawArticle, error) {
	return c.sendArticle(ctx, http.MethodPost, "/articles", input)
}

// UpdateArticle applies a partial update to an existing article.
func (c *Client) UpdateArticle(ctx context.Context, articleID string, input ArticleInput) (domain.RawArticle, error) {
	return c.sendArticle(ctx, http.MethodPut, "/articles/"+url.PathEscape(articleID), input)
}

func (c *Client) sendArticle(ctx context.Context, method, path string, input ArticleInput) (domain.RawArticle, error) {
	var resp *http.Response
	var err error

	if input.Attachment != nil {
		var body bytes.Buffer
		contentType, formErr := writeArticleForm(&body, input)
		if formErr != nil {
			return domain.RawArticle{}, formErr
		}
		resp, err = c.doRequestWithBody(ctx, method, path, contentType, &body)
	} else {
		resp, err = c.doRequestJSON(ctx, method, path, input)
	}
	if err != nil {
		return domain.RawArticle{}, err
	}

	var article domain.RawArticle
	if err := c.handleResponse(resp, &article); err != nil {
		return domain.RawArticle{}, err
	}

	return article, nil
}

func writeArticleForm(body *bytes.Buffer, input ArticleInput) (contentType string, err error) {
	writer := multipart.NewWriter(body)

	fields := []struct {
		name  string
		value string
	}{
		{"title", input.Title},
		{"content", input.Content},
		{"category", input.Category},
		{"tags", strings.Join(input.Tags, ",")},
		{"excerpt", input.Excerpt},
	}
	for _, field := range fields {
		if writeErr := writer.WriteField(field.name, field.value); writeErr != nil {
			return "", &RequestError{Op: "writing form field " + field.name, Err: writeErr}
		}
	}

	part, err := writer.CreateFormFile("file", input.Attachment.Filename)
	if err != nil {
		return "", &RequestError{Op: "creating form file", Err: err}
	}
	if _, err := io.Copy(part, input.Attachment.Reader); err != nil {
		return "", &RequestError{Op: "copying attachment", Err: err}
	}

	if err := writer.Close(); err != nil {
		return "", &RequestError{Op: "finalising form", Err: err}
	}

	return writer.FormDataContentType(), nil
}

// DeleteArticle removes an article.
func (c *Client) DeleteArticle(ctx context.Context, articleID string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/articles/"+url.PathEscape(articleID))
	if err != nil {
		return err
	}
	return c.handleResponse(resp, nil)
}

// Like toggles or records a like on an article for the current session
// user. The response body is treated as an opaque success signal.
func (c *Client) Like(ctx context.Context, articleID string) error {
	resp, err := c.doRequest(ctx, http.MethodPatch, "/articles/"+url.PathEscape(articleID)+"/like")
	if err != nil {
		return err
	}
	return c.handleResponse(resp, nil)
}

// Comment appends a comment to an article and returns the updated record.
func (c *Client) Comment(ctx context.Context, articleID, comment string) (domain.RawArticle, error) {
	payload := struct {
		Comment string `json:"comment"`
	}{Comment: comment}

	resp, err := c.doRequestJSON(ctx, http.MethodPatch, "/articles/"+url.PathEscape(articleID)+"/comment", payload)
	if err != nil {
		return domain.RawArticle{}, err
	}

	var article domain.RawArticle
	if err := c.handleResponse(resp, &article); err != nil {
		return domain.RawArticle{}, err
	}

	return article, nil
}
