package audit

import (
	"fmt"

	"seoaudit/internal/model"
)

// collectIssues flattens all seven category results into one issue list.
// Categories are visited in reporting order; within a category, issues
// follow the order the checks run in.
func collectIssues(result *model.AuditResult) []model.Issue {
	issues := []model.Issue{}
	issues = append(issues, crawlabilityIssues(result.Crawlability)...)
	issues = append(issues, speedIssues(result.Speed)...)
	issues = append(issues, mobileIssues(result.Mobile)...)
	issues = append(issues, securityIssues(result.Security)...)
	issues = append(issues, structureIssues(result.Structure)...)
	issues = append(issues, contentIssues(result.Content)...)
	issues = append(issues, uxIssues(result.UX)...)
	return issues
}

func crawlabilityIssues(r model.CrawlabilityResult) []model.Issue {
	var out []model.Issue
	cat := model.CategoryCrawlability

	if !r.RobotsTxt.Found {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityWarning,
			Title:       "Missing robots.txt",
			Description: "No robots.txt file was found at the site origin.",
			Fix:         "Add a robots.txt file so crawlers know which paths to index.",
		})
	} else {
		if r.RobotsTxt.SiteBlocked {
			out = append(out, model.Issue{
				Category: cat, Severity: model.SeverityCritical,
				Title:       "Entire site is blocked by robots.txt",
				Description: "robots.txt disallows crawling of the site root, preventing search engines from indexing any page.",
				Location:    "/robots.txt",
				Fix:         "Remove or narrow the 'Disallow: /' rule.",
			})
		}
		if r.RobotsTxt.Minimal {
			out = append(out, model.Issue{
				Category: cat, Severity: model.SeverityInfo,
				Title:       "Robots.txt is minimal or empty",
				Description: "The robots.txt file contains almost no directives.",
			})
		}
	}

	if !r.Sitemap.Found {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityWarning,
			Title:       "No Sitemap Found",
			Description: "No XML sitemap was found at the common locations on this origin.",
			Fix:         "Publish a sitemap.xml and reference it from robots.txt.",
		})
	}

	if r.Noindex {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityCritical,
			Title:       "Page Blocked from Indexing",
			Description: "The meta robots tag contains a noindex directive.",
			Fix:         "Remove noindex if this page should appear in search results.",
		})
	}
	if r.Nofollow {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityWarning,
			Title:       "Nofollow Directive Detected",
			Description: "The meta robots tag instructs crawlers not to follow links on this page.",
		})
	}

	return out
}

func speedIssues(r model.SpeedResult) []model.Issue {
	var out []model.Issue
	cat := model.CategorySpeed

	if r.EstimatedLoadTime > loadTimeCritical {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityCritical,
			Title:       "Slow Page Load Time",
			Description: fmt.Sprintf("Estimated load time is %.1fs, well above the 3s target.", r.EstimatedLoadTime),
			Fix:         "Reduce the number of scripts, stylesheets, and images loaded on first paint.",
		})
	} else if r.EstimatedLoadTime > loadTimeSlow {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityWarning,
			Title:       "Slow Page Load Time",
			Description: fmt.Sprintf("Estimated load time is %.1fs; aim for under 3s.", r.EstimatedLoadTime),
			Fix:         "Reduce render-blocking resources.",
		})
	}

	if r.ScriptCount > 15 {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityWarning,
			Title:       "Too Many Scripts",
			Description: fmt.Sprintf("The page references %d external scripts.", r.ScriptCount),
			Fix:         "Bundle or defer non-critical JavaScript.",
		})
	}
	if r.StylesheetCount > 5 {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityInfo,
			Title:       "Too Many Stylesheets",
			Description: fmt.Sprintf("The page references %d stylesheets.", r.StylesheetCount),
		})
	}
	if r.ImageCount > 30 {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityWarning,
			Title:       "Too Many Images",
			Description: fmt.Sprintf("The page embeds %d images.", r.ImageCount),
			Fix:         "Lazy-load below-the-fold images.",
		})
	}
	if r.InlineStyleCount > 5 {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityInfo,
			Title:       "Excessive Inline Styles",
			Description: fmt.Sprintf("The page contains %d inline <style> blocks.", r.InlineStyleCount),
		})
	}
	if r.LCP.Rating == "poor" {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityWarning,
			Title:       "Poor Largest Contentful Paint",
			Description: fmt.Sprintf("Estimated LCP is %.0fms (target: 2500ms).", r.LCP.Value),
		})
	}
	if r.CLS.Rating == "poor" {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityWarning,
			Title:       "High Layout Shift Risk",
			Description: fmt.Sprintf("Estimated CLS is %.2f (target: 0.1).", r.CLS.Value),
			Fix:         "Reserve dimensions for images and embeds.",
		})
	}

	return out
}

func mobileIssues(r model.MobileResult) []model.Issue {
	var out []model.Issue
	cat := model.CategoryMobile

	if !r.HasViewport {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityCritical,
			Title:       "Missing Viewport Meta Tag",
			Description: "Without a viewport meta tag, mobile browsers render the page at desktop width.",
			Fix:         `Add <meta name="viewport" content="width=device-width, initial-scale=1">.`,
		})
	}
	if !r.Responsive {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityWarning,
			Title:       "Page Not Mobile Responsive",
			Description: "No media queries or responsive framework classes were detected.",
		})
	}
	if r.SmallFontCount > 0 {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityWarning,
			Title:       "Font Sizes Too Small for Mobile",
			Description: fmt.Sprintf("%d inline font-size declarations are below 12px.", r.SmallFontCount),
		})
	}
	if len(r.FixedWidthRisks) > 0 {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityWarning,
			Title:       "Horizontal Scrolling Risk",
			Description: fmt.Sprintf("%d elements declare fixed widths over 400px.", len(r.FixedWidthRisks)),
			Location:    r.FixedWidthRisks[0],
		})
	}

	return out
}

func securityIssues(r model.SecurityResult) []model.Issue {
	var out []model.Issue
	cat := model.CategorySecurity

	if !r.UsesHTTPS {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityCritical,
			Title:       "Not Using HTTPS",
			Description: "The page is served over plain HTTP. Browsers flag it as not secure and search engines penalize it.",
			Fix:         "Install a TLS certificate and redirect HTTP traffic to HTTPS.",
		})
	}
	if len(r.MixedContent) > 0 {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityWarning,
			Title:       "Mixed Content Detected",
			Description: fmt.Sprintf("%d resources load over plain HTTP on an HTTPS page.", len(r.MixedContent)),
			Location:    r.MixedContent[0],
			Fix:         "Serve all sub-resources over HTTPS.",
		})
	}

	return out
}

func structureIssues(r model.StructureResult) []model.Issue {
	var out []model.Issue
	cat := model.CategoryStructure

	if r.PathDepth > pathDepthLimit {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityInfo,
			Title:       "URL Structure Too Deep",
			Description: fmt.Sprintf("The URL path has %d segments; flatter URLs are easier to crawl.", r.PathDepth),
		})
	}
	if r.HasQueryString {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityInfo,
			Title:       "Query Parameters in URL",
			Description: "Query strings can create duplicate-content variants of the same page.",
		})
	}
	if r.HasUnderscores {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityInfo,
			Title:       "Underscores in URL",
			Description: "Search engines treat hyphens, not underscores, as word separators.",
		})
	}
	if r.HasSpaces {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityWarning,
			Title:       "Spaces in URL",
			Description: "URL paths containing spaces are fragile when shared or linked.",
		})
	}
	if !r.GoodAnchorText {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityInfo,
			Title:       "Generic Anchor Text",
			Description: fmt.Sprintf("Only %.0f%% of anchors have descriptive text.", r.GoodAnchorRatio*100),
			Fix:         "Replace phrases like \"click here\" with text describing the target.",
		})
	}

	return out
}

func contentIssues(r model.ContentResult) []model.Issue {
	var out []model.Issue
	cat := model.CategoryContent

	switch r.Title.Status {
	case TagMissing:
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityCritical,
			Title:       "Missing Title Tag",
			Description: "The page has no <title> tag, which is the strongest on-page ranking signal.",
			Fix:         "Add a descriptive title of 10-60 characters.",
		})
	case TagTooLong:
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityWarning,
			Title:       "Title Too Long",
			Description: fmt.Sprintf("The title is %d characters; search results truncate after 60.", r.Title.Length),
		})
	case TagTooShort:
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityWarning,
			Title:       "Title Too Short",
			Description: fmt.Sprintf("The title is only %d characters; aim for 10-60.", r.Title.Length),
		})
	}
	if r.DuplicateTitles {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityWarning,
			Title:       "Duplicate Title Tags",
			Description: "The document contains more than one <title> tag.",
		})
	}

	switch r.MetaDescription.Status {
	case TagMissing:
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityWarning,
			Title:       "Missing Meta Description",
			Description: "Without a meta description, search engines improvise the result snippet.",
			Fix:         "Add a meta description of 50-160 characters.",
		})
	case TagTooLong:
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityInfo,
			Title:       "Meta Description Too Long",
			Description: fmt.Sprintf("The meta description is %d characters; snippets truncate after 160.", r.MetaDescription.Length),
		})
	case TagTooShort:
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityInfo,
			Title:       "Meta Description Too Short",
			Description: fmt.Sprintf("The meta description is only %d characters; aim for 50-160.", r.MetaDescription.Length),
		})
	}
	if r.DuplicateMetaDescriptions {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityWarning,
			Title:       "Duplicate Meta Descriptions",
			Description: "The document contains more than one meta description tag.",
		})
	}

	if !r.HasCanonical {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityInfo,
			Title:       "Missing Canonical Tag",
			Description: "A canonical link prevents duplicate-content dilution across URL variants.",
		})
	}

	if len(r.StructuredData.Errors) > 0 {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityInfo,
			Title:       "Invalid Structured Data",
			Description: r.StructuredData.Errors[0],
			Fix:         "Validate JSON-LD blocks against schema.org.",
		})
	} else if r.StructuredData.Count == 0 {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityInfo,
			Title:       "No Structured Data",
			Description: "No JSON-LD structured data was found; rich results need it.",
		})
	}

	switch {
	case r.Headings.Counts["h1"] == 0:
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityWarning,
			Title:       "Missing H1 Tag",
			Description: "The page has no top-level heading.",
			Fix:         "Add exactly one H1 describing the page topic.",
		})
	case r.Headings.Counts["h1"] > 1:
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityInfo,
			Title:       "Multiple H1 Tags",
			Description: fmt.Sprintf("The page has %d H1 tags; one is conventional.", r.Headings.Counts["h1"]),
		})
	}

	if r.WordCount >= readabilityMinWords && r.Readability.Score < lowReadabilityScore {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityInfo,
			Title:       "Content Difficult to Read",
			Description: fmt.Sprintf("Flesch Reading Ease is %.0f (%s).", r.Readability.Score, r.Readability.Grade),
			Fix:         "Shorten sentences and prefer simpler words.",
		})
	}

	if r.ExternalLinks == 0 {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityInfo,
			Title:       "No External Links",
			Description: "Linking to relevant external sources signals well-researched content.",
		})
	}

	return out
}

func uxIssues(r model.UXResult) []model.Issue {
	var out []model.Issue
	cat := model.CategoryUX

	if !r.HasMainNav {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityWarning,
			Title:       "No Main Navigation",
			Description: "No <nav> element or recognizable navigation landmark was found.",
		})
	}
	if missing := r.ImagesTotal - r.ImagesWithAlt; missing > 0 {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityWarning,
			Title:       "Images Missing Alt Text",
			Description: fmt.Sprintf("%d of %d images have no alt text.", missing, r.ImagesTotal),
			Fix:         "Add descriptive alt attributes for accessibility and image search.",
		})
	}
	if !r.HasFooterNav {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityInfo,
			Title:       "No Footer Navigation",
			Description: "Footer links give crawlers and users a secondary path through the site.",
		})
	}
	if !r.HasBreadcrumbs {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityInfo,
			Title:       "No Breadcrumb Navigation",
			Description: "Breadcrumbs clarify page hierarchy for users and search snippets.",
		})
	}
	if !r.HasSearchBox {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityInfo,
			Title:       "No Search Functionality",
			Description: "No site search input was detected.",
		})
	}
	if !r.HasSkipLink {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityInfo,
			Title:       "Missing Skip Navigation Link",
			Description: "Keyboard users benefit from a skip-to-content link.",
		})
	}
	if !r.HasAria {
		out = append(out, model.Issue{
			Category: cat, Severity: model.SeverityInfo,
			Title:       "No ARIA Attributes",
			Description: "No ARIA roles or attributes were found on the page.",
		})
	}

	return out
}
