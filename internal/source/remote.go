package source

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	maxDocumentSize    = 32 << 20
	defaultUserAgent   = "school-calendar/1.0"
)

// Fetcher downloads calendar documents published on the web
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	logger     *zap.Logger
}

// NewFetcher creates a Fetcher. A zero timeout uses the default.
func NewFetcher(timeout time.Duration, userAgent string, logger *zap.Logger) *Fetcher {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Fetcher{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
		logger:    logger,
	}
}

// IsURL reports whether target names an http(s) resource rather than a file
func IsURL(target string) bool {
	u, err := url.Parse(target)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Open loads target from the web when it is a URL and from disk otherwise
func (f *Fetcher) Open(ctx context.Context, target string) (Document, error) {
	if IsURL(target) {
		return f.Fetch(ctx, target)
	}
	return Load(target)
}

// Fetch downloads rawURL. The format comes from the Content-Type header,
// falling back to the extension of the URL path.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (Document, error) {
	f.logger.Debug("Fetching calendar document", zap.String("url", rawURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrSourceUnavailable, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch document: %w", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: server returned status %d", ErrSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", ErrSourceUnavailable, err)
	}
	if len(body) > maxDocumentSize {
		return nil, fmt.Errorf("%w: document larger than %d bytes", ErrSourceUnavailable, maxDocumentSize)
	}

	ext := extensionFor(resp.Header.Get("Content-Type"), resp.Request.URL)

	f.logger.Info("Calendar document fetched",
		zap.String("url", rawURL),
		zap.String("content_type", resp.Header.Get("Content-Type")),
		zap.Int("bytes", len(body)))

	return forExtension(body, ext)
}

// extensionFor maps a media type to the matching file extension
func extensionFor(contentType string, u *url.URL) string {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		switch mediaType {
		case "application/pdf":
			return ".pdf"
		case "text/html", "application/xhtml+xml":
			return ".html"
		case "text/plain":
			return ".txt"
		}
	}
	if u == nil {
		return ""
	}
	return strings.ToLower(path.Ext(u.Path))
}
