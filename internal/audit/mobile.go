package audit

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"seoaudit/internal/model"
)

var (
	smallFontPattern  = regexp.MustCompile(`font-size\s*:\s*(\d+(?:\.\d+)?)px`)
	fixedWidthPattern = regexp.MustCompile(`width\s*:\s*(\d+)px`)
	// Class-name fragments common to responsive CSS frameworks.
	responsiveClassPattern = regexp.MustCompile(`(?i)\b(col-(xs|sm|md|lg|xl)|container(-fluid)?|row|grid|flex|(sm|md|lg|xl|2xl):)`)
)

// analyzeMobile judges mobile-friendliness from the viewport meta tag
// and inline style heuristics.
func analyzeMobile(page *Page) model.MobileResult {
	res := model.MobileResult{FixedWidthRisks: []string{}}

	if content, ok := page.Find(`meta[name="viewport"]`).Attr("content"); ok {
		res.HasViewport = true
		res.ViewportContent = content
	}

	hasMediaQueries := false
	page.Find("style").Each(func(_ int, s *goquery.Selection) {
		if strings.Contains(s.Text(), "@media") {
			hasMediaQueries = true
		}
	})

	hasResponsiveClasses := false
	page.Find("[class]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if class, ok := s.Attr("class"); ok && responsiveClassPattern.MatchString(class) {
			hasResponsiveClasses = true
			return false
		}
		return true
	})

	res.Responsive = res.HasViewport && (hasMediaQueries || hasResponsiveClasses)

	page.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		style, _ := s.Attr("style")

		for _, m := range smallFontPattern.FindAllStringSubmatch(style, -1) {
			if size, err := strconv.ParseFloat(m[1], 64); err == nil && size < 12 {
				res.SmallFontCount++
			}
		}

		for _, m := range fixedWidthPattern.FindAllStringSubmatch(style, -1) {
			if width, err := strconv.Atoi(m[1]); err == nil && width > 400 {
				res.FixedWidthRisks = append(res.FixedWidthRisks, nodeDescription(s))
			}
		}
	})

	return res
}

func nodeDescription(s *goquery.Selection) string {
	tag := goquery.NodeName(s)
	if id, ok := s.Attr("id"); ok && id != "" {
		return tag + "#" + id
	}
	return tag
}
