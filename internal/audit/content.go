package audit

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"seoaudit/internal/model"
	"seoaudit/internal/textstat"
)

const (
	titleMaxLen = 60
	titleMinLen = 10
	descMaxLen  = 160
	descMinLen  = 50

	maxHeadingSummaries = 10

	// Readability is only judged on pages with enough prose to make
	// the Flesch formula meaningful.
	readabilityMinWords = 100
)

// Tag validation statuses.
const (
	TagMissing  = "missing"
	TagTooLong  = "too_long"
	TagTooShort = "too_short"
	TagOptimal  = "optimal"
)

// analyzeContent is the richest analyzer: title and meta-description
// validation, duplicate tag detection, structured data, headings, Flesch
// readability, and external-link presence.
func analyzeContent(page *Page, base *url.URL) model.ContentResult {
	res := model.ContentResult{}

	titles := page.Find("title")
	res.DuplicateTitles = titles.Length() > 1
	res.Title = checkTag(strings.TrimSpace(titles.First().Text()), titleMinLen, titleMaxLen)

	descs := page.Find(`meta[name="description"]`)
	res.DuplicateMetaDescriptions = descs.Length() > 1
	desc, _ := descs.First().Attr("content")
	res.MetaDescription = checkTag(strings.TrimSpace(desc), descMinLen, descMaxLen)

	if href, ok := page.Find(`link[rel="canonical"]`).Attr("href"); ok && href != "" {
		res.HasCanonical = true
	}

	res.StructuredData = analyzeStructuredData(page)
	res.Headings = analyzeHeadings(page)

	text := page.Text()
	read := textstat.FleschReadingEase(text)
	res.Readability = model.ReadabilityInfo{
		Score:     read.Score,
		Grade:     read.Grade,
		Words:     read.Words,
		Sentences: read.Sentences,
	}
	res.WordCount = read.Words

	page.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if !isInternalLink(href, base) {
			res.ExternalLinks++
		}
	})

	return res
}

// checkTag measures length in runes so multibyte titles and
// descriptions are judged by character count, not bytes.
func checkTag(text string, minLen, maxLen int) model.TagCheck {
	check := model.TagCheck{Text: text, Length: utf8.RuneCountInString(text)}
	switch {
	case check.Length == 0:
		check.Status = TagMissing
	case check.Length > maxLen:
		check.Status = TagTooLong
	case check.Length < minLen:
		check.Status = TagTooShort
	default:
		check.Status = TagOptimal
	}
	return check
}

// analyzeStructuredData parses every JSON-LD block. A block that fails
// to parse becomes an error entry, not an analyzer failure.
func analyzeStructuredData(page *Page) model.StructuredDataInfo {
	info := model.StructuredDataInfo{Types: []string{}, Errors: []string{}}

	page.Find(`script[type="application/ld+json"]`).Each(func(i int, s *goquery.Selection) {
		var payload map[string]any
		if err := json.Unmarshal([]byte(s.Text()), &payload); err != nil {
			info.Errors = append(info.Errors, fmt.Sprintf("invalid JSON-LD in block %d", i+1))
			return
		}
		info.Count++
		if t, ok := payload["@type"].(string); ok {
			info.Types = append(info.Types, t)
		}
	})

	return info
}

func analyzeHeadings(page *Page) model.HeadingInfo {
	info := model.HeadingInfo{
		Counts:    map[string]int{"h1": 0, "h2": 0, "h3": 0, "h4": 0, "h5": 0, "h6": 0},
		Summaries: []string{},
	}

	page.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		tag := goquery.NodeName(s)
		info.Counts[tag]++
		if len(info.Summaries) < maxHeadingSummaries {
			info.Summaries = append(info.Summaries, tag+": "+strings.TrimSpace(s.Text()))
		}
	})

	return info
}
