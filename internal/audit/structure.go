package audit

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"seoaudit/internal/model"
)

// Anchor phrases too generic to help a crawler.
var genericAnchorPhrases = map[string]struct{}{
	"click here": {},
	"read more":  {},
	"learn more": {},
	"here":       {},
}

const goodAnchorThreshold = 0.7

// analyzeStructure examines the URL shape and the page's link graph.
// Broken-link and redirect-chain detection need network probes across
// the whole site and are left unimplemented.
func analyzeStructure(page *Page, base *url.URL) model.StructureResult {
	res := model.StructureResult{BrokenLinks: []string{}}

	if base != nil {
		segments := 0
		for _, s := range strings.Split(base.Path, "/") {
			if s != "" {
				segments++
			}
		}
		res.PathDepth = segments
		res.HasQueryString = base.RawQuery != ""
		res.HasUnderscores = strings.Contains(base.Path, "_")
		res.HasSpaces = strings.Contains(base.Path, " ") || strings.Contains(base.Path, "%20")
	}

	total := 0
	good := 0
	page.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		total++

		if isInternalLink(href, base) {
			res.InternalLinks++
		} else {
			res.ExternalLinks++
			if rel, ok := s.Attr("rel"); ok && strings.Contains(strings.ToLower(rel), "nofollow") {
				res.NofollowExternal++
			}
		}

		text := strings.ToLower(strings.TrimSpace(s.Text()))
		if len(text) > 3 {
			if _, generic := genericAnchorPhrases[text]; !generic {
				good++
			}
		}
	})

	if total > 0 {
		res.GoodAnchorRatio = float64(good) / float64(total)
	} else {
		res.GoodAnchorRatio = 1
	}
	res.GoodAnchorText = res.GoodAnchorRatio > goodAnchorThreshold

	return res
}

// isInternalLink treats same-host, root-relative, and fragment links as
// internal.
func isInternalLink(href string, base *url.URL) bool {
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "/") {
		return true
	}
	if base == nil {
		return false
	}
	parsed, err := url.Parse(href)
	if err != nil {
		return false
	}
	resolved := base.ResolveReference(parsed)
	return strings.EqualFold(resolved.Host, base.Host)
}
