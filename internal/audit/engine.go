// Package audit implements the technical audit engine: it fetches a
// page, parses it once, runs seven independent category analyzers over
// the shared read-only document, and synthesizes scores, issues, and
// recommendations.
package audit

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"seoaudit/internal/log"
	"seoaudit/internal/model"
)

const (
	// DefaultFetchTimeout bounds the primary-page fetch. Overridable
	// via Options; sub-resource fetches use a fixed shorter budget.
	DefaultFetchTimeout = 15 * time.Second
	subResourceTimeout  = 10 * time.Second
)

// Options configures an Engine.
type Options struct {
	FetchTimeout time.Duration
	Client       *http.Client
}

// Engine runs technical audits. It holds no mutable state beyond its
// HTTP client and is safe for concurrent use.
type Engine struct {
	client *http.Client
}

// New constructs an Engine. The zero Options value yields a client with
// the default fetch timeout that follows redirects.
func New(opts Options) *Engine {
	client := opts.Client
	if client == nil {
		timeout := opts.FetchTimeout
		if timeout <= 0 {
			timeout = DefaultFetchTimeout
		}
		client = &http.Client{Timeout: timeout}
	}
	return &Engine{client: client}
}

// Run performs a complete audit of targetURL. The region code flavors
// the fetch headers and is reported back; when empty, a region is
// inferred from the URL. A primary-page fetch failure aborts the audit
// with a FetchError; every other network call degrades to "absent".
func (e *Engine) Run(ctx context.Context, targetURL, region string) (*model.AuditResult, error) {
	normalized := NormalizeURL(targetURL)

	location := e.ResolveRegion(ctx, normalized)
	if region == "" {
		if SupportedRegion(location.Region) {
			region = location.Region
		} else {
			region = "US"
		}
	}
	profile := ProfileForRegion(region)

	rawHTML, err := e.fetchPage(ctx, normalized, profile)
	if err != nil {
		return nil, err
	}

	page := ParsePage(rawHTML)
	base, parseErr := url.Parse(normalized)
	if parseErr != nil {
		base = nil
	}

	result := &model.AuditResult{
		URL:            normalized,
		AuditRegion:    region,
		ServerLocation: location,
	}

	// The analyzers share the parsed document read-only and have no
	// ordering dependency, so they fan out together; crawlability's
	// own sub-resource fetches overlap with the other six.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result.Crawlability = e.analyzeCrawlability(gctx, page, base)
		return nil
	})
	g.Go(func() error {
		result.Speed = analyzeSpeed(page)
		return nil
	})
	g.Go(func() error {
		result.Mobile = analyzeMobile(page)
		return nil
	})
	g.Go(func() error {
		result.Security = analyzeSecurity(page, base)
		return nil
	})
	g.Go(func() error {
		result.Structure = analyzeStructure(page, base)
		return nil
	})
	g.Go(func() error {
		result.Content = analyzeContent(page, base)
		return nil
	})
	g.Go(func() error {
		result.UX = analyzeUX(page)
		return nil
	})
	_ = g.Wait() // analyzers never fail; the group exists for the fan-out

	result.CrawlabilityScore = scoreCrawlability(result.Crawlability)
	result.SpeedScore = scoreSpeed(result.Speed)
	result.MobileScore = scoreMobile(result.Mobile)
	result.SecurityScore = scoreSecurity(result.Security)
	result.StructureScore = scoreStructure(result.Structure)
	result.ContentScore = scoreContent(result.Content)
	result.UXScore = scoreUX(result.UX)
	result.OverallScore = overallScore(result)

	result.Issues = collectIssues(result)
	result.Recommendations = generateRecommendations(result)

	log.Logger.Info("audit completed",
		zap.String("url", normalized),
		zap.String("region", region),
		zap.Int("overall_score", result.OverallScore),
		zap.Int("issues", len(result.Issues)),
	)

	return result, nil
}
