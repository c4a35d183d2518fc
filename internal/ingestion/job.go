package ingestion

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/resumeflow/resumeflow/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the HTTP request fails.
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails.
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
	// ErrEmptyContent is returned when a source yields no usable text.
	ErrEmptyContent = fmt.Errorf("no usable text content")
)

// JobOptions configures job posting ingestion.
type JobOptions struct {
	// UseBrowser falls back to headless browser rendering when the
	// fetched page yields too little text.
	UseBrowser bool
	// Logger receives fetch diagnostics. Nil disables them.
	Logger *zap.Logger
}

// JobTextFromURL fetches a job posting page, extracts the main text,
// and cleans it. An empty first extraction is retried once before the
// browser fallback is consulted.
func JobTextFromURL(ctx context.Context, urlStr string, opts JobOptions) (string, *Metadata, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	log.Debug("fetched HTML", zap.Int("bytes", len(result.HTML)))

	textContent, err := fetch.ExtractMainText(result.HTML, fetch.JobPostingSelectors())
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	// Some boards serve an empty shell on the first request. Retry once
	// before falling back to the browser.
	if strings.TrimSpace(textContent) == "" {
		log.Debug("empty extraction, retrying fetch once")
		if retry, retryErr := fetch.URL(ctx, urlStr, nil); retryErr == nil {
			if retryText, extractErr := fetch.ExtractMainText(retry.HTML, fetch.JobPostingSelectors()); extractErr == nil {
				textContent = retryText
			}
		}
	}

	if opts.UseBrowser && fetch.ShouldUseBrowser(textContent) {
		log.Debug("content too short, falling back to browser rendering",
			zap.Int("chars", len(textContent)), zap.Int("min", fetch.MinContentLength))
		browserHTML, browserErr := fetch.WithBrowser(ctx, urlStr, fetch.DefaultTimeout, log)
		if browserErr != nil {
			log.Debug("browser rendering failed, using HTTP content", zap.Error(browserErr))
		} else if browserText, extractErr := fetch.ExtractMainText(browserHTML, fetch.JobPostingSelectors()); extractErr == nil {
			textContent = browserText
		}
	}

	cleanedText := CleanText(textContent)
	if cleanedText == "" {
		return "", nil, fmt.Errorf("%w: %s", ErrEmptyContent, urlStr)
	}

	metadata := NewMetadata(cleanedText, urlStr, "url")
	return cleanedText, metadata, nil
}

// JobTextFromFile reads a job posting from a local text file and cleans it.
func JobTextFromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read job posting file: %w", err)
	}

	cleanedText := CleanText(string(content))
	if cleanedText == "" {
		return "", nil, fmt.Errorf("%w: %s", ErrEmptyContent, path)
	}

	metadata := NewMetadata(cleanedText, "", "file")
	return cleanedText, metadata, nil
}
