package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestJobTextFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			<nav>Menu</nav>
			<div class="job-description">Staff Engineer at Acme Corp.
			We need Go and distributed systems experience.</div>
		</body></html>`))
	}))
	defer server.Close()

	text, meta, err := JobTextFromURL(context.Background(), server.URL, JobOptions{})
	require.NoError(t, err)
	assert.Contains(t, text, "Staff Engineer at Acme Corp.")
	assert.NotContains(t, text, "Menu")
	require.NotNil(t, meta)
	assert.Equal(t, server.URL, meta.URL)
	assert.Equal(t, "url", meta.Source)
}

func TestJobTextFromURL_DiagnosticsUseSuppliedLogger(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><main>Backend role at Acme.</main></body></html>`))
	}))
	defer server.Close()

	core, logs := observer.New(zapcore.DebugLevel)
	_, _, err := JobTextFromURL(context.Background(), server.URL, JobOptions{
		Logger: zap.New(core),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("fetched HTML").Len())
}

func TestJobTextFromURL_RetriesEmptyContent(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			_, _ = w.Write([]byte(`<html><body></body></html>`))
			return
		}
		_, _ = w.Write([]byte(`<html><body><main>Posting text on second try.</main></body></html>`))
	}))
	defer server.Close()

	text, _, err := JobTextFromURL(context.Background(), server.URL, JobOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Contains(t, text, "Posting text on second try.")
}

func TestJobTextFromURL_EmptyAfterRetry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body></body></html>`))
	}))
	defer server.Close()

	_, _, err := JobTextFromURL(context.Background(), server.URL, JobOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestJobTextFromURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	_, _, err := JobTextFromURL(context.Background(), server.URL, JobOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHTTPRequestFailed)
}

func TestJobTextFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "posting.txt")
	require.NoError(t, os.WriteFile(path, []byte("Staff Engineer\r\n\r\n\r\n\r\nRemote role."), 0644))

	text, meta, err := JobTextFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer\n\nRemote role.", text)
	assert.Equal(t, "file", meta.Source)
	assert.Empty(t, meta.URL)
}

func TestJobTextFromFile_Missing(t *testing.T) {
	_, _, err := JobTextFromFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
