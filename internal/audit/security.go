package audit

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"seoaudit/internal/model"
)

const maxMixedContentReports = 10

// analyzeSecurity checks the transport scheme and scans for mixed
// content. Header and certificate inspection are placeholders: SSL
// validity is approximated as "valid iff HTTPS" and the header flags
// stay false.
func analyzeSecurity(page *Page, base *url.URL) model.SecurityResult {
	res := model.SecurityResult{MixedContent: []string{}}

	if base == nil {
		return res
	}

	res.UsesHTTPS = base.Scheme == "https"
	res.SSLValid = res.UsesHTTPS

	if !res.UsesHTTPS {
		return res
	}

	collect := func(attr string) func(int, *goquery.Selection) bool {
		return func(_ int, s *goquery.Selection) bool {
			if len(res.MixedContent) >= maxMixedContentReports {
				return false
			}
			if v, ok := s.Attr(attr); ok && strings.HasPrefix(strings.ToLower(v), "http://") {
				res.MixedContent = append(res.MixedContent, goquery.NodeName(s)+": "+v)
			}
			return true
		}
	}

	page.Find("script[src]").EachWithBreak(collect("src"))
	page.Find("link[href]").EachWithBreak(collect("href"))
	page.Find("img[src]").EachWithBreak(collect("src"))
	page.Find("iframe[src]").EachWithBreak(collect("src"))

	return res
}
