package handlers

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emergentai/gridhero/internal/logger"
)

type failingWriter struct {
	header http.Header
}

func (f *failingWriter) Header() http.Header       { return f.header }
func (f *failingWriter) WriteHeader(int)           {}
func (f *failingWriter) Write([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestLandingPage(t *testing.T) {
	pages := NewPages(slog.New(slog.NewTextHandler(io.Discard, nil)))
	rec := httptest.NewRecorder()

	pages.LandingPage(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "Welcome to Our Website")
	assert.Contains(t, body, "Discover amazing things with us")
	assert.Contains(t, body, "background-color: #f0f0f0; opacity: 0.9")
	assert.Contains(t, body, "@keyframes move")
}

func TestLandingPage_LogsWriteErrors(t *testing.T) {
	var buf bytes.Buffer
	pages := NewPages(logger.NewWithWriter(&buf, "info", false))

	pages.LandingPage(&failingWriter{header: http.Header{}}, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, buf.String(), "render landing page")
	assert.Contains(t, buf.String(), "connection reset")
	assert.Contains(t, buf.String(), "scope=handlers")
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()

	Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
