// Package intent classifies search queries into the four standard
// search-intent buckets by matching keyword modifiers.
package intent

import (
	"math"
	"regexp"
	"strings"
)

// Search intent types.
const (
	Informational = "informational"
	Navigational  = "navigational"
	Commercial    = "commercial_investigation"
	Transactional = "transactional"
)

// intentOrder fixes iteration and tie-break order.
var intentOrder = []string{Informational, Navigational, Commercial, Transactional}

// Analysis is the classification result for one query.
type Analysis struct {
	Query            string              `json:"query"`
	PrimaryIntent    string              `json:"primaryIntent"`
	Confidence       float64             `json:"confidence"`
	IntentScores     map[string]int      `json:"intentScores"`
	MatchedModifiers map[string][]string `json:"matchedModifiers"`
	Recommendations  Recommendation      `json:"recommendations"`
}

// Recommendation describes the content that serves a given intent.
type Recommendation struct {
	ContentType string   `json:"contentType"`
	Format      string   `json:"format"`
	Elements    []string `json:"elements"`
	CTA         string   `json:"cta"`
}

// Distribution summarizes primary intents across a batch of queries.
type Distribution struct {
	TotalQueries   int                `json:"totalQueries"`
	Distribution   map[string]int     `json:"distribution"`
	Percentages    map[string]float64 `json:"percentages"`
	DominantIntent string             `json:"dominantIntent"`
}

var intentModifiers = map[string][]string{
	Informational: {
		"how", "what", "why", "when", "where", "who",
		"guide", "tutorial", "tips", "learn", "explain",
		"definition", "meaning", "examples", "benefits",
		"difference between", "vs", "comparison",
	},
	Navigational: {
		"login", "sign in", "official site", "website",
		"homepage", "portal", "dashboard", "account",
	},
	Commercial: {
		"best", "top", "review", "reviews", "comparison",
		"compare", "vs", "versus", "alternative", "alternatives",
		"cheapest", "affordable", "recommended", "rating",
	},
	Transactional: {
		"buy", "purchase", "order", "shop", "price",
		"cost", "cheap", "deal", "discount", "coupon",
		"subscribe", "download", "get", "hire", "book",
		"reserve", "appointment", "quote",
	},
}

var intentRecommendations = map[string]Recommendation{
	Informational: {
		ContentType: "Blog post, guide, tutorial, how-to article",
		Format:      "Long-form content (1,500-3,000 words)",
		Elements: []string{
			"Clear headings and subheadings",
			"Step-by-step instructions",
			"Examples and visuals",
			"FAQ section",
			"Related articles",
		},
		CTA: "Subscribe to newsletter, download guide, read related content",
	},
	Navigational: {
		ContentType: "Homepage, brand page, login page",
		Format:      "Clear navigation and branding",
		Elements: []string{
			"Prominent brand name",
			"Clear navigation menu",
			"Search functionality",
			"Quick links to popular pages",
		},
		CTA: "Sign up, login, explore products/services",
	},
	Commercial: {
		ContentType: "Comparison article, review, buyer's guide",
		Format:      "Structured comparison (1,500-2,500 words)",
		Elements: []string{
			"Comparison tables",
			"Pros and cons lists",
			"Product specifications",
			"Expert opinions",
			"User reviews",
		},
		CTA: "Read full review, compare products, get pricing",
	},
	Transactional: {
		ContentType: "Product page, service page, pricing page",
		Format:      "Conversion-focused layout",
		Elements: []string{
			"Clear product/service details",
			"Pricing information",
			"Trust signals (reviews, guarantees)",
			"Strong call-to-action",
			"Easy checkout process",
		},
		CTA: "Buy now, add to cart, get quote, subscribe",
	},
}

// Analyzer matches queries against precompiled modifier patterns. It is
// stateless after construction and safe for concurrent use.
type Analyzer struct {
	patterns map[string][]*modifierPattern
}

type modifierPattern struct {
	modifier string
	re       *regexp.Regexp
}

// New compiles the modifier patterns for all four intents.
func New() *Analyzer {
	patterns := make(map[string][]*modifierPattern, len(intentModifiers))
	for intent, modifiers := range intentModifiers {
		compiled := make([]*modifierPattern, 0, len(modifiers))
		for _, mod := range modifiers {
			compiled = append(compiled, &modifierPattern{
				modifier: mod,
				re:       regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(mod) + `\b`),
			})
		}
		patterns[intent] = compiled
	}
	return &Analyzer{patterns: patterns}
}

// Analyze classifies a single query.
func (a *Analyzer) Analyze(query string) Analysis {
	lower := strings.ToLower(strings.TrimSpace(query))

	scores := map[string]int{}
	matched := map[string][]string{}
	total := 0
	for intent, patterns := range a.patterns {
		hits := []string{}
		for _, p := range patterns {
			if p.re.MatchString(lower) {
				hits = append(hits, p.modifier)
			}
		}
		scores[intent] = len(hits)
		matched[intent] = hits
		total += len(hits)
	}

	var primary string
	var confidence float64
	if total > 0 {
		best := -1
		// Stable tie-break in declaration order.
		for _, intent := range intentOrder {
			if scores[intent] > best {
				best = scores[intent]
				primary = intent
			}
		}
		confidence = float64(best) / float64(total)
	} else {
		primary, confidence = heuristicIntent(lower)
	}

	return Analysis{
		Query:            query,
		PrimaryIntent:    primary,
		Confidence:       math.Round(confidence*100) / 100,
		IntentScores:     scores,
		MatchedModifiers: matched,
		Recommendations:  recommendationFor(primary),
	}
}

// AnalyzeBatch classifies each query in order.
func (a *Analyzer) AnalyzeBatch(queries []string) []Analysis {
	out := make([]Analysis, 0, len(queries))
	for _, q := range queries {
		out = append(out, a.Analyze(q))
	}
	return out
}

// Distribution counts primary intents across a batch of queries and
// reports per-intent percentages and the dominant intent.
func (a *Analyzer) Distribution(queries []string) Distribution {
	counts := map[string]int{
		Informational: 0,
		Navigational:  0,
		Commercial:    0,
		Transactional: 0,
	}
	for _, q := range queries {
		counts[a.Analyze(q).PrimaryIntent]++
	}

	total := len(queries)
	percentages := make(map[string]float64, len(counts))
	dominant := Informational
	best := -1
	for _, intent := range intentOrder {
		pct := 0.0
		if total > 0 {
			pct = math.Round(float64(counts[intent])/float64(total)*1000) / 10
		}
		percentages[intent] = pct
		if counts[intent] > best {
			best = counts[intent]
			dominant = intent
		}
	}

	return Distribution{
		TotalQueries:   total,
		Distribution:   counts,
		Percentages:    percentages,
		DominantIntent: dominant,
	}
}

// heuristicIntent handles queries with no modifier hits. Question
// openers read as informational; short queries without qualifiers
// usually name a brand or destination; longer ones default to
// informational with less confidence.
func heuristicIntent(query string) (string, float64) {
	for _, opener := range []string{"how ", "what ", "why ", "when ", "where "} {
		if strings.HasPrefix(query, opener) {
			return Informational, 0.8
		}
	}

	words := strings.Fields(query)
	if len(words) <= 2 &&
		!strings.Contains(query, "?") &&
		!strings.Contains(query, "how") &&
		!strings.Contains(query, "what") {
		return Navigational, 0.6
	}

	if len(words) >= 3 {
		return Informational, 0.5
	}

	return Informational, 0.4
}

func recommendationFor(intent string) Recommendation {
	if rec, ok := intentRecommendations[intent]; ok {
		return rec
	}
	return intentRecommendations[Informational]
}
