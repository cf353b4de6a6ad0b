package audit

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"seoaudit/internal/model"
)

// analyzeSpeed estimates load behavior from resource counts alone. No
// real browser timing is involved; the Core Web Vitals are synthetic
// values derived from the same counts.
func analyzeSpeed(page *Page) model.SpeedResult {
	res := model.SpeedResult{Warnings: []string{}}

	page.Find("script[src]").Each(func(_ int, _ *goquery.Selection) { res.ScriptCount++ })
	page.Find(`link[rel="stylesheet"]`).Each(func(_ int, s *goquery.Selection) {
		res.StylesheetCount++
		if href, ok := s.Attr("href"); ok && strings.Contains(strings.ToLower(href), "font") {
			res.FontCount++
		}
	})
	page.Find("img").Each(func(_ int, _ *goquery.Selection) { res.ImageCount++ })
	page.Find(`link[rel="preload"][as="font"]`).Each(func(_ int, _ *goquery.Selection) { res.FontCount++ })
	page.Find("style").Each(func(_ int, _ *goquery.Selection) { res.InlineStyleCount++ })

	load := 1.0 + 0.2*float64(res.ScriptCount) + 0.15*float64(res.StylesheetCount) + 0.1*float64(res.ImageCount)
	if load > 10 {
		load = 10
	}
	res.EstimatedLoadTime = load

	lcp := load * 800 // ms
	res.LCP = model.WebVital{Value: lcp, Rating: rateVital(lcp, 2500, 4000)}

	fid := 50.0
	switch {
	case res.ScriptCount > 10:
		fid = 150
	case res.ScriptCount > 5:
		fid = 80
	}
	res.FID = model.WebVital{Value: fid, Rating: rateVital(fid, 100, 300)}

	cls := 0.05
	switch {
	case res.ImageCount > 20:
		cls = 0.2
	case res.ImageCount > 10:
		cls = 0.1
	}
	res.CLS = model.WebVital{Value: cls, Rating: rateVital(cls, 0.1, 0.25)}

	if res.ScriptCount > 15 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("High number of external scripts (%d)", res.ScriptCount))
	}
	if res.StylesheetCount > 5 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("High number of stylesheets (%d)", res.StylesheetCount))
	}
	if res.ImageCount > 30 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("High number of images (%d)", res.ImageCount))
	}
	if res.InlineStyleCount > 5 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("Excessive inline style blocks (%d)", res.InlineStyleCount))
	}

	return res
}

func rateVital(value, good, needsImprovement float64) string {
	switch {
	case value <= good:
		return "good"
	case value <= needsImprovement:
		return "needs-improvement"
	default:
		return "poor"
	}
}
