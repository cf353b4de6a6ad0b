package audit

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"seoaudit/internal/log"
)

const userAgent = "Mozilla/5.0 (compatible; SEOAuditBot/1.0; +https://seoaudit.example/bot)"

// FetchError reports a failed fetch of the primary page. It aborts the
// whole audit; sub-resource fetches degrade silently instead.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// NormalizeURL coerces user input into an absolute, scheme-qualified URL
// without a trailing slash. No further validation happens here; garbage
// input fails at fetch time with a FetchError.
func NormalizeURL(input string) string {
	u := strings.TrimSpace(input)
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = "https://" + u
	}
	return strings.TrimSuffix(u, "/")
}

// fetchPage performs the single GET for the audited page with the
// synthetic user agent and region-flavored headers. Redirects are
// followed by the client. Any network failure or non-2xx status is a
// FetchError.
func (e *Engine) fetchPage(ctx context.Context, targetURL string, region RegionProfile) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return "", &FetchError{URL: targetURL, Err: err}
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", region.AcceptLanguage)
	for k, v := range region.Headers {
		req.Header.Set(k, v)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		log.Logger.Error("failed to fetch page",
			zap.String("url", targetURL),
			zap.Error(err),
		)
		return "", &FetchError{URL: targetURL, Err: err}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			log.Logger.Warn("failed to close response body", zap.Error(cerr))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Logger.Warn("unexpected status code",
			zap.String("url", targetURL),
			zap.Int("status_code", resp.StatusCode),
		)
		return "", &FetchError{URL: targetURL, Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: targetURL, Err: fmt.Errorf("read response body: %w", err)}
	}

	log.Logger.Info("fetched page",
		zap.String("url", targetURL),
		zap.Int("content_length", len(body)),
		zap.Int("status_code", resp.StatusCode),
	)

	return string(body), nil
}

// fetchSubResource retrieves an auxiliary URL (robots.txt, sitemap)
// under a bounded timeout. Failures are reported to the caller, which
// treats them as "absent".
func (e *Engine) fetchSubResource(ctx context.Context, targetURL string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, subResourceTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		log.Logger.Debug("sub-resource fetch failed",
			zap.String("url", targetURL),
			zap.Error(err),
		)
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false
	}
	return string(body), true
}
