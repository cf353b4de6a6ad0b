package audit

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"seoaudit/internal/model"
)

// analyzeUX checks navigation, accessibility affordances, and alt-text
// coverage. ClickDepth and LayoutStable are heuristic constants; neither
// is measured for a single page.
func analyzeUX(page *Page) model.UXResult {
	res := model.UXResult{
		ClickDepth:   3,
		LayoutStable: true,
	}

	nav := page.Find(`nav, [role="navigation"], .navbar, .nav, .main-nav, .navigation, #navigation`)
	if nav.Length() > 0 {
		res.HasMainNav = true
		res.NavLinkCount = nav.First().Find("a").Length()
	}

	res.HasFooterNav = page.Find("footer a").Length() > 0
	res.HasBreadcrumbs = page.Find(`.breadcrumb, .breadcrumbs, [aria-label="breadcrumb"], nav.breadcrumb`).Length() > 0
	res.HasSearchBox = page.Find(`input[type="search"], [role="search"], input[name="q"], input[name="s"], .search-box`).Length() > 0

	page.Find(`a[href^="#"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.ToLower(s.Text())
		href, _ := s.Attr("href")
		if strings.Contains(text, "skip") || href == "#main" || href == "#content" || href == "#main-content" {
			res.HasSkipLink = true
			return false
		}
		return true
	})

	page.Find("img").Each(func(_ int, s *goquery.Selection) {
		res.ImagesTotal++
		if alt, ok := s.Attr("alt"); ok && strings.TrimSpace(alt) != "" {
			res.ImagesWithAlt++
		}
	})
	if res.ImagesTotal > 0 {
		res.AltTextCoverage = float64(res.ImagesWithAlt) / float64(res.ImagesTotal)
	} else {
		res.AltTextCoverage = 1
	}

	page.Find("*").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, node := range s.Nodes {
			for _, attr := range node.Attr {
				if strings.HasPrefix(attr.Key, "aria-") || attr.Key == "role" {
					res.HasAria = true
					return false
				}
			}
		}
		return true
	})

	return res
}
