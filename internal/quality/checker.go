// Package quality scores raw content text independently of a fetched
// page: readability, E-E-A-T signals, keyword optimization, and
// completeness, combined into a weighted overall score with a grade.
package quality

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"seoaudit/internal/textstat"
)

// Metadata carries the optional page context for a quality check.
type Metadata struct {
	Title           string `json:"title"`
	MetaDescription string `json:"metaDescription"`
	TargetKeyword   string `json:"targetKeyword"`
}

// Score is the full quality breakdown for one piece of content.
type Score struct {
	OverallScore      float64  `json:"overallScore"`
	ReadabilityScore  float64  `json:"readabilityScore"`
	EEATScore         float64  `json:"eeatScore"`
	SEOScore          float64  `json:"seoScore"`
	CompletenessScore float64  `json:"completenessScore"`
	Grade             string   `json:"grade"`
	Recommendations   []string `json:"recommendations"`
}

// Weighted contribution of each component to the overall score.
const (
	readabilityWeight  = 0.25
	eeatWeight         = 0.30
	seoWeight          = 0.25
	completenessWeight = 0.20
)

var experienceIndicators = []string{
	"i tested", "i tried", "in my experience", "i found",
	"i used", "i noticed", "i discovered", "my results",
	"case study", "real-world example", "personal experience",
}

var expertiseIndicators = []string{
	"certified", "expert", "professional", "years of experience",
	"specialist", "authority", "research shows", "studies indicate",
	"according to", "data shows", "statistics reveal",
}

var trustIndicators = []string{
	"source:", "reference:", "citation:", "https://",
	"published", "peer-reviewed", "verified", "guaranteed",
	"privacy policy", "terms of service", "contact us",
}

var (
	listPattern       = regexp.MustCompile(`\n(-|\d+\.|•)`)
	headingPattern    = regexp.MustCompile(`(?m)^#{1,6}\s.+`)
	markdownLink      = regexp.MustCompile(`\[.+?\]\(.+?\)`)
	externalLinkRefs  = regexp.MustCompile(`https?://`)
	citationPattern   = regexp.MustCompile(`\[?\d+\]?|source:|reference:`)
	faqPattern        = regexp.MustCompile(`(?i)(faq|frequently asked|question|q&a)`)
	conclusionPattern = regexp.MustCompile(`(?i)(conclusion|summary|in summary|to summarize|key takeaways)`)
)

// Check runs the full quality evaluation on content.
func Check(content string, meta Metadata) Score {
	readability := Readability(content)
	eeat := EEAT(content)
	seo := SEO(content, meta)
	completeness := Completeness(content, meta)

	overall := readability*readabilityWeight +
		eeat*eeatWeight +
		seo*seoWeight +
		completeness*completenessWeight

	return Score{
		OverallScore:      round1(overall),
		ReadabilityScore:  round1(readability),
		EEATScore:         round1(eeat),
		SEOScore:          round1(seo),
		CompletenessScore: round1(completeness),
		Grade:             GradeFor(overall),
		Recommendations:   recommendations(readability, eeat, seo, completeness, content, meta),
	}
}

// Readability blends the Flesch Reading Ease score with structural
// bonuses for short paragraphs, lists, and headings.
func Readability(content string) float64 {
	sentences := textstat.SplitSentences(content)
	words := textstat.SplitWords(content)
	if len(sentences) == 0 || len(words) == 0 {
		return 0
	}

	flesch := textstat.FleschReadingEase(content)
	score := flesch.Score * 0.6

	paragraphs := strings.Split(content, "\n\n")
	avgParagraphLen := float64(len(words)) / float64(len(paragraphs))
	switch {
	case avgParagraphLen < 100:
		score += 10
	case avgParagraphLen < 150:
		score += 5
	}

	if listPattern.MatchString(content) {
		score += 10
	}
	if headingPattern.MatchString(content) {
		score += 10
	}

	longSentences := 0
	for _, s := range sentences {
		if len(strings.Fields(s)) > 25 {
			longSentences++
		}
	}
	if float64(longSentences) > float64(len(sentences))*0.3 {
		score -= 10
	}

	return clamp(score)
}

// EEAT scores experience, expertise, and trust indicators.
func EEAT(content string) float64 {
	lower := strings.ToLower(content)
	score := 0.0

	score += math.Min(30, float64(countIndicators(lower, experienceIndicators))*5)
	score += math.Min(30, float64(countIndicators(lower, expertiseIndicators))*5)
	score += math.Min(40, float64(countIndicators(lower, trustIndicators))*4)

	citations := len(citationPattern.FindAllString(lower, -1))
	score += math.Min(10, float64(citations)*2)

	for _, domain := range []string{".edu", ".gov", ".org"} {
		if strings.Contains(lower, domain) {
			score += 5
		}
	}

	return clamp(score)
}

// SEO scores on-page keyword optimization against the target keyword.
// With no keyword the result is a neutral 50.
func SEO(content string, meta Metadata) float64 {
	keyword := strings.ToLower(strings.TrimSpace(meta.TargetKeyword))
	if keyword == "" {
		return 50
	}

	lower := strings.ToLower(content)
	score := 0.0

	if strings.Contains(strings.ToLower(meta.Title), keyword) {
		score += 15
	}

	firstChunk := lower
	if len(firstChunk) > 500 {
		firstChunk = firstChunk[:500]
	}
	if strings.Contains(firstChunk, keyword) {
		score += 10
	}

	if strings.Contains(strings.ToLower(meta.MetaDescription), keyword) {
		score += 10
	}

	wordCount := len(textstat.SplitWords(content))
	if wordCount > 0 {
		density := float64(strings.Count(lower, keyword)) / float64(wordCount) * 100
		switch {
		case density >= 0.5 && density <= 2.5:
			score += 15
		case density < 0.5:
			score += 5
		}
	}

	headings := len(headingPattern.FindAllString(content, -1))
	switch {
	case headings >= 3:
		score += 10
	case headings >= 1:
		score += 5
	}

	switch {
	case wordCount >= 1500:
		score += 15
	case wordCount >= 1000:
		score += 10
	case wordCount >= 500:
		score += 5
	}

	internalLinks := len(markdownLink.FindAllString(content, -1))
	switch {
	case internalLinks >= 5:
		score += 10
	case internalLinks >= 3:
		score += 7
	case internalLinks >= 1:
		score += 4
	}

	externalLinks := len(externalLinkRefs.FindAllString(content, -1))
	switch {
	case externalLinks >= 3:
		score += 10
	case externalLinks >= 1:
		score += 5
	}

	if strings.Contains(content, "![") || strings.Contains(content, "<img") {
		score += 5
	}

	return clamp(score)
}

// Completeness checks for the structural elements a thorough article has.
func Completeness(content string, meta Metadata) float64 {
	score := 0.0
	lower := strings.ToLower(content)

	if len(content) > 200 {
		score += 15
	}

	headings := len(headingPattern.FindAllString(content, -1))
	switch {
	case headings >= 5:
		score += 20
	case headings >= 3:
		score += 15
	case headings >= 1:
		score += 10
	}

	examples := countIndicators(lower, []string{"example", "for instance", "such as", "like"})
	switch {
	case examples >= 3:
		score += 15
	case examples >= 1:
		score += 10
	}

	if listPattern.MatchString(content) {
		score += 10
	}
	if faqPattern.MatchString(content) {
		score += 10
	}
	if conclusionPattern.MatchString(content) {
		score += 10
	}

	ctas := []string{"learn more", "get started", "sign up", "download", "contact us", "try"}
	for _, cta := range ctas {
		if strings.Contains(lower, cta) {
			score += 10
			break
		}
	}

	if meta.Title != "" && meta.MetaDescription != "" {
		score += 10
	}

	return clamp(score)
}

// GradeFor converts a score to a letter grade.
func GradeFor(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

func recommendations(readability, eeat, seo, completeness float64, content string, meta Metadata) []string {
	recs := []string{}

	if readability < 70 {
		recs = append(recs,
			"Improve readability: use shorter sentences and simpler words",
			"Add more headings and bullet points to break up text")
	}

	if eeat < 70 {
		recs = append(recs,
			"Add personal experience and real-world examples",
			"Include citations and references to authoritative sources",
			"Demonstrate expertise with data, statistics, and research")
	}

	if seo < 70 {
		keyword := strings.TrimSpace(meta.TargetKeyword)
		if keyword != "" {
			firstChunk := content
			if len(firstChunk) > 500 {
				firstChunk = firstChunk[:500]
			}
			if !strings.Contains(strings.ToLower(firstChunk), strings.ToLower(keyword)) {
				recs = append(recs, fmt.Sprintf("Include target keyword %q in the first paragraph", keyword))
			}
			if wordCount := len(textstat.SplitWords(content)); wordCount < 1500 {
				recs = append(recs, fmt.Sprintf("Expand content to at least 1,500 words (currently %d)", wordCount))
			}
		}
		if len(markdownLink.FindAllString(content, -1)) < 5 {
			recs = append(recs, "Add more internal links to related content (5-10 recommended)")
		}
	}

	if completeness < 70 {
		lower := strings.ToLower(content)
		if !faqPattern.MatchString(lower) {
			recs = append(recs, "Add an FAQ section to address common questions")
		}
		if !conclusionPattern.MatchString(lower) {
			recs = append(recs, "Add a conclusion or summary section")
		}
	}

	if len(recs) == 0 {
		recs = append(recs, "Content quality is excellent. Focus on promotion and link building.")
	}
	return recs
}

func countIndicators(lower string, indicators []string) int {
	n := 0
	for _, ind := range indicators {
		if strings.Contains(lower, ind) {
			n++
		}
	}
	return n
}

func clamp(score float64) float64 {
	return math.Max(0, math.Min(100, score))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
