package audit

import (
	"context"
	"net/url"
	"strings"

	"github.com/temoto/robotstxt"

	"seoaudit/internal/model"
)

// sitemap locations probed at the origin, in order; the first hit wins.
var sitemapPaths = []string{"/sitemap.xml", "/sitemap_index.xml", "/sitemap/sitemap.xml"}

// analyzeCrawlability inspects robots.txt, the sitemap, and the page's
// own indexing directives. The two origin fetches are best-effort;
// failures read as "absent", never as an audit failure.
func (e *Engine) analyzeCrawlability(ctx context.Context, page *Page, base *url.URL) model.CrawlabilityResult {
	res := model.CrawlabilityResult{
		OrphanPages: []string{}, // needs a full-site crawl, out of scope
	}
	if base == nil {
		return res
	}
	origin := base.Scheme + "://" + base.Host

	if body, ok := e.fetchSubResource(ctx, origin+"/robots.txt"); ok {
		res.RobotsTxt = parseRobotsTxt(body)
	} else {
		res.RobotsTxt.BlockedPaths = []string{}
	}

	for _, p := range sitemapPaths {
		body, ok := e.fetchSubResource(ctx, origin+p)
		if !ok {
			continue
		}
		res.Sitemap = model.SitemapInfo{
			Found:    true,
			Location: origin + p,
			URLCount: countSitemapEntries(body),
		}
		break
	}

	if robots, ok := page.Find(`meta[name="robots"]`).Attr("content"); ok {
		res.MetaRobots = robots
		lower := strings.ToLower(robots)
		res.Noindex = strings.Contains(lower, "noindex")
		res.Nofollow = strings.Contains(lower, "nofollow")
	}

	if canonical, ok := page.Find(`link[rel="canonical"]`).Attr("href"); ok && canonical != "" {
		res.Canonical = canonical
		res.HasCanonical = true
	}

	return res
}

// parseRobotsTxt collects the Disallow paths itself and delegates the
// "is the whole site blocked" question to the robotstxt evaluator, which
// understands agent groups and rule precedence.
func parseRobotsTxt(body string) model.RobotsTxtInfo {
	info := model.RobotsTxtInfo{
		Found:        true,
		Minimal:      len(strings.TrimSpace(body)) < 10,
		BlockedPaths: []string{},
	}

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(strings.ToLower(line), "disallow:") {
			continue
		}
		path := strings.TrimSpace(line[len("disallow:"):])
		if path != "" {
			info.BlockedPaths = append(info.BlockedPaths, path)
		}
	}

	if data, err := robotstxt.FromString(body); err == nil {
		if group := data.FindGroup(userAgent); group != nil {
			info.SiteBlocked = !group.Test("/")
		}
	}

	return info
}

// countSitemapEntries counts <url> entries in a urlset, or <sitemap>
// entries in a sitemap index.
func countSitemapEntries(body string) int {
	if n := strings.Count(body, "<url>"); n > 0 {
		return n
	}
	return strings.Count(body, "<sitemap>")
}
