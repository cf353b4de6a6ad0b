package audit

import (
	"math"

	"seoaudit/internal/model"
)

// categoryWeights combine the seven category scores into the overall
// score. They are fixed policy, not per-audit configuration, and sum to
// 1.00.
var categoryWeights = map[string]float64{
	model.CategoryCrawlability: 0.15,
	model.CategorySpeed:        0.20,
	model.CategoryMobile:       0.15,
	model.CategorySecurity:     0.15,
	model.CategoryStructure:    0.15,
	model.CategoryContent:      0.10,
	model.CategoryUX:           0.10,
}

// penalties is the single scoring table: every deduction the calculator
// can apply, keyed by category and condition. Keeping them in one place
// makes the scoring policy auditable independently of the analyzers.
var penalties = map[string]map[string]int{
	model.CategoryCrawlability: {
		"missing_robots":    15,
		"site_blocked":      40,
		"robots_minimal":    5,
		"missing_sitemap":   20,
		"noindex":           30,
		"nofollow":          10,
		"missing_canonical": 5,
	},
	model.CategorySpeed: {
		"load_critical":    40, // > 5s
		"load_slow":        25, // > 3s
		"too_many_scripts": 10,
		"too_many_styles":  5,
		"too_many_images":  15,
		"inline_styles":    5,
		"lcp_poor":         15,
		"lcp_needs_work":   5,
		"fid_poor":         10,
		"fid_needs_work":   5,
		"cls_poor":         10,
		"cls_needs_work":   5,
	},
	model.CategoryMobile: {
		"missing_viewport": 50,
		"not_responsive":   20,
		"small_fonts":      10,
		"fixed_widths":     15,
	},
	model.CategorySecurity: {
		"no_https":           60,
		"mixed_content_item": 5, // per reported element, capped
	},
	model.CategoryStructure: {
		"deep_path":       10,
		"query_string":    5,
		"underscores":     5,
		"spaces":          10,
		"generic_anchors": 10,
	},
	model.CategoryContent: {
		"missing_title":      25,
		"title_length":       10,
		"duplicate_titles":   10,
		"missing_meta":       20,
		"meta_length":        5,
		"duplicate_metas":    10,
		"missing_canonical":  5,
		"no_structured_data": 10,
		"invalid_json_ld":    5,
		"missing_h1":         15,
		"multiple_h1":        5,
		"low_readability":    10,
		"no_external_links":  5,
	},
	model.CategoryUX: {
		"no_main_nav":      15,
		"no_footer_nav":    5,
		"no_breadcrumbs":   5,
		"no_search":        5,
		"no_skip_link":     5,
		"alt_coverage_bad": 40, // < 50%
		"alt_coverage_low": 15, // < 90%
		"no_aria":          5,
	},
}

const (
	maxMixedContentPenalty = 30
	pathDepthLimit         = 4
	loadTimeCritical       = 5.0
	loadTimeSlow           = 3.0
	lowReadabilityScore    = 30.0
)

func penalty(category, condition string) int {
	return penalties[category][condition]
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func scoreCrawlability(r model.CrawlabilityResult) int {
	score := 100
	if !r.RobotsTxt.Found {
		score -= penalty(model.CategoryCrawlability, "missing_robots")
	} else if r.RobotsTxt.Minimal {
		score -= penalty(model.CategoryCrawlability, "robots_minimal")
	}
	if r.RobotsTxt.SiteBlocked {
		score -= penalty(model.CategoryCrawlability, "site_blocked")
	}
	if !r.Sitemap.Found {
		score -= penalty(model.CategoryCrawlability, "missing_sitemap")
	}
	if r.Noindex {
		score -= penalty(model.CategoryCrawlability, "noindex")
	}
	if r.Nofollow {
		score -= penalty(model.CategoryCrawlability, "nofollow")
	}
	if !r.HasCanonical {
		score -= penalty(model.CategoryCrawlability, "missing_canonical")
	}
	return clampScore(score)
}

func scoreSpeed(r model.SpeedResult) int {
	score := 100
	switch {
	case r.EstimatedLoadTime > loadTimeCritical:
		score -= penalty(model.CategorySpeed, "load_critical")
	case r.EstimatedLoadTime > loadTimeSlow:
		score -= penalty(model.CategorySpeed, "load_slow")
	}
	if r.ScriptCount > 15 {
		score -= penalty(model.CategorySpeed, "too_many_scripts")
	}
	if r.StylesheetCount > 5 {
		score -= penalty(model.CategorySpeed, "too_many_styles")
	}
	if r.ImageCount > 30 {
		score -= penalty(model.CategorySpeed, "too_many_images")
	}
	if r.InlineStyleCount > 5 {
		score -= penalty(model.CategorySpeed, "inline_styles")
	}
	score -= vitalPenalty(model.CategorySpeed, "lcp", r.LCP)
	score -= vitalPenalty(model.CategorySpeed, "fid", r.FID)
	score -= vitalPenalty(model.CategorySpeed, "cls", r.CLS)
	return clampScore(score)
}

func vitalPenalty(category, vital string, v model.WebVital) int {
	switch v.Rating {
	case "poor":
		return penalty(category, vital+"_poor")
	case "needs-improvement":
		return penalty(category, vital+"_needs_work")
	default:
		return 0
	}
}

func scoreMobile(r model.MobileResult) int {
	score := 100
	if !r.HasViewport {
		score -= penalty(model.CategoryMobile, "missing_viewport")
	}
	if !r.Responsive {
		score -= penalty(model.CategoryMobile, "not_responsive")
	}
	if r.SmallFontCount > 0 {
		score -= penalty(model.CategoryMobile, "small_fonts")
	}
	if len(r.FixedWidthRisks) > 0 {
		score -= penalty(model.CategoryMobile, "fixed_widths")
	}
	return clampScore(score)
}

func scoreSecurity(r model.SecurityResult) int {
	score := 100
	if !r.UsesHTTPS {
		score -= penalty(model.CategorySecurity, "no_https")
	}
	mixed := len(r.MixedContent) * penalty(model.CategorySecurity, "mixed_content_item")
	if mixed > maxMixedContentPenalty {
		mixed = maxMixedContentPenalty
	}
	score -= mixed
	return clampScore(score)
}

func scoreStructure(r model.StructureResult) int {
	score := 100
	if r.PathDepth > pathDepthLimit {
		score -= penalty(model.CategoryStructure, "deep_path")
	}
	if r.HasQueryString {
		score -= penalty(model.CategoryStructure, "query_string")
	}
	if r.HasUnderscores {
		score -= penalty(model.CategoryStructure, "underscores")
	}
	if r.HasSpaces {
		score -= penalty(model.CategoryStructure, "spaces")
	}
	if !r.GoodAnchorText {
		score -= penalty(model.CategoryStructure, "generic_anchors")
	}
	return clampScore(score)
}

func scoreContent(r model.ContentResult) int {
	score := 100
	switch r.Title.Status {
	case TagMissing:
		score -= penalty(model.CategoryContent, "missing_title")
	case TagTooLong, TagTooShort:
		score -= penalty(model.CategoryContent, "title_length")
	}
	if r.DuplicateTitles {
		score -= penalty(model.CategoryContent, "duplicate_titles")
	}
	switch r.MetaDescription.Status {
	case TagMissing:
		score -= penalty(model.CategoryContent, "missing_meta")
	case TagTooLong, TagTooShort:
		score -= penalty(model.CategoryContent, "meta_length")
	}
	if r.DuplicateMetaDescriptions {
		score -= penalty(model.CategoryContent, "duplicate_metas")
	}
	if !r.HasCanonical {
		score -= penalty(model.CategoryContent, "missing_canonical")
	}
	if r.StructuredData.Count == 0 && len(r.StructuredData.Errors) == 0 {
		score -= penalty(model.CategoryContent, "no_structured_data")
	}
	if len(r.StructuredData.Errors) > 0 {
		score -= penalty(model.CategoryContent, "invalid_json_ld")
	}
	switch {
	case r.Headings.Counts["h1"] == 0:
		score -= penalty(model.CategoryContent, "missing_h1")
	case r.Headings.Counts["h1"] > 1:
		score -= penalty(model.CategoryContent, "multiple_h1")
	}
	if r.WordCount >= readabilityMinWords && r.Readability.Score < lowReadabilityScore {
		score -= penalty(model.CategoryContent, "low_readability")
	}
	if r.ExternalLinks == 0 {
		score -= penalty(model.CategoryContent, "no_external_links")
	}
	return clampScore(score)
}

func scoreUX(r model.UXResult) int {
	score := 100
	if !r.HasMainNav {
		score -= penalty(model.CategoryUX, "no_main_nav")
	}
	if !r.HasFooterNav {
		score -= penalty(model.CategoryUX, "no_footer_nav")
	}
	if !r.HasBreadcrumbs {
		score -= penalty(model.CategoryUX, "no_breadcrumbs")
	}
	if !r.HasSearchBox {
		score -= penalty(model.CategoryUX, "no_search")
	}
	if !r.HasSkipLink {
		score -= penalty(model.CategoryUX, "no_skip_link")
	}
	switch {
	case r.AltTextCoverage < 0.5:
		score -= penalty(model.CategoryUX, "alt_coverage_bad")
	case r.AltTextCoverage < 0.9:
		score -= penalty(model.CategoryUX, "alt_coverage_low")
	}
	if !r.HasAria {
		score -= penalty(model.CategoryUX, "no_aria")
	}
	return clampScore(score)
}

// overallScore combines the seven category scores with the fixed weights.
func overallScore(result *model.AuditResult) int {
	weighted := categoryWeights[model.CategoryCrawlability]*float64(result.CrawlabilityScore) +
		categoryWeights[model.CategorySpeed]*float64(result.SpeedScore) +
		categoryWeights[model.CategoryMobile]*float64(result.MobileScore) +
		categoryWeights[model.CategorySecurity]*float64(result.SecurityScore) +
		categoryWeights[model.CategoryStructure]*float64(result.StructureScore) +
		categoryWeights[model.CategoryContent]*float64(result.ContentScore) +
		categoryWeights[model.CategoryUX]*float64(result.UXScore)
	return clampScore(int(math.Round(weighted)))
}
