package controller

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloghub/bloghub-client/internal/domain"
	"github.com/bloghub/bloghub-client/internal/gateway"
)

type stubPublisher struct {
	raw      domain.RawArticle
	err      error
	gotInput gateway.ArticleInput
}

func (s *stubPublisher) CreateArticle(ctx context.Context, input gateway.ArticleInput) (domain.RawArticle, error) {
	s.gotInput = input
	return s.raw, s.err
}

func TestArticleCreate_JSONBody(t *testing.T) {
	publisher := &stubPublisher{raw: domain.RawArticle{ID: "abc123", Title: "Go Routines"}}
	controller := ArticleCreate{Publisher: publisher}

	body := `{"title":"Go Routines","content":"...","category":"Programming","tags":["go","concurrency"]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/articles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = testContext()(req)
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Go Routines", publisher.gotInput.Title)
	assert.Equal(t, []string{"go", "concurrency"}, publisher.gotInput.Tags)
	assert.Nil(t, publisher.gotInput.Attachment)
}

func TestArticleCreate_MultipartWithAttachment(t *testing.T) {
	publisher := &stubPublisher{raw: domain.RawArticle{ID: "abc123", Title: "Go Routines"}}
	controller := ArticleCreate{Publisher: publisher}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("title", "Go Routines"))
	require.NoError(t, form.WriteField("content", "..."))
	require.NoError(t, form.WriteField("category", "Programming"))
	require.NoError(t, form.WriteField("tags", "go,concurrency"))

	part, err := form.CreateFormFile("file", "cover.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/articles", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req = testContext()(req)
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Go Routines", publisher.gotInput.Title)
	assert.Equal(t, []string{"go", "concurrency"}, publisher.gotInput.Tags)

	require.NotNil(t, publisher.gotInput.Attachment)
	assert.Equal(t, "cover.png", publisher.gotInput.Attachment.Filename)
	content, err := io.ReadAll(publisher.gotInput.Attachment.Reader)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))
}

func TestArticleCreate_MultipartWithoutAttachment(t *testing.T) {
	publisher := &stubPublisher{raw: domain.RawArticle{ID: "abc123"}}
	controller := ArticleCreate{Publisher: publisher}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("title", "No Cover"))
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/articles", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req = testContext()(req)
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, publisher.gotInput.Attachment)
}

func TestArticleCreate_BadPayload(t *testing.T) {
	publisher := &stubPublisher{}
	controller := ArticleCreate{Publisher: publisher}

	req := httptest.NewRequest(http.MethodPost, "/v1/articles", strings.NewReader(`{broken`))
	req.Header.Set("Content-Type", "application/json")
	req = testContext()(req)
	rec := httptest.NewRecorder()

	controller.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, publisher.gotInput.Title)
}
