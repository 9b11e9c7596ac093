package controller

import (
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/bloghub/bloghub-client/internal/domain"
	"github.com/bloghub/bloghub-client/internal/gateway"
)

// maxArticleFormMemory bounds the in-memory portion of an uploaded form;
// larger attachments spill to temporary files.
const maxArticleFormMemory = 16 << 20

type ArticleCreate struct {
	Publisher gateway.ArticlePublisher
}

func (c ArticleCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	input, err := articleInputFromRequest(r)
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse article payload", "error", err)
		writeJSON(w, r, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	raw, err := c.Publisher.CreateArticle(ctx, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, domain.MapArticle(raw))
}

// articleInputFromRequest accepts either a JSON body or a multipart form
// with an optional file attachment. Which payload the gateway sends upstream
// follows from whether an attachment was present.
func articleInputFromRequest(r *http.Request) (gateway.ArticleInput, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return gateway.ArticleInput{}, fmt.Errorf("unable to parse content type: %w", err)
	}

	if mediaType != "multipart/form-data" {
		var input gateway.ArticleInput
		if err := decodeBody(r, &input); err != nil {
			return gateway.ArticleInput{}, fmt.Errorf("unable to parse article body: %w", err)
		}
		return input, nil
	}

	if err := r.ParseMultipartForm(maxArticleFormMemory); err != nil {
		return gateway.ArticleInput{}, fmt.Errorf("unable to parse multipart form: %w", err)
	}

	input := gateway.ArticleInput{
		Title:    r.FormValue("title"),
		Content:  r.FormValue("content"),
		Category: r.FormValue("category"),
		Excerpt:  r.FormValue("excerpt"),
	}
	if tags := r.FormValue("tags"); tags != "" {
		input.Tags = strings.Split(tags, ",")
	}

	file, header, err := r.FormFile("file")
	if err == nil {
		input.Attachment = &gateway.Attachment{
			Filename: header.Filename,
			Reader:   file,
		}
	} else if err != http.ErrMissingFile {
		return gateway.ArticleInput{}, fmt.Errorf("unable to read attachment: %w", err)
	}

	return input, nil
}
