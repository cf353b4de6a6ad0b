package intent

import "testing"

func TestAnalyzeClassification(t *testing.T) {
	a := New()

	tests := []struct {
		query  string
		intent string
	}{
		{"how to fix a leaky faucet", Informational},
		{"what is a reverse proxy", Informational},
		{"facebook login", Navigational},
		{"acme corp official site", Navigational},
		{"best crm software reviews", Commercial},
		{"cheapest web hosting plans", Commercial},
		{"buy running shoes discount", Transactional},
		{"book a hotel room tonight", Transactional},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := a.Analyze(tt.query)
			if got.PrimaryIntent != tt.intent {
				t.Errorf("Analyze(%q).PrimaryIntent = %q, want %q (scores: %v)",
					tt.query, got.PrimaryIntent, tt.intent, got.IntentScores)
			}
			if got.Confidence <= 0 || got.Confidence > 1 {
				t.Errorf("confidence %.2f out of (0,1]", got.Confidence)
			}
			if got.Query != tt.query {
				t.Errorf("Query echoed back as %q", got.Query)
			}
		})
	}
}

func TestAnalyzeModifierMatching(t *testing.T) {
	a := New()
	got := a.Analyze("buy a discount widget")

	if got.IntentScores[Transactional] != 2 {
		t.Errorf("transactional score = %d, want 2 (buy, discount)", got.IntentScores[Transactional])
	}
	mods := got.MatchedModifiers[Transactional]
	if len(mods) != 2 || mods[0] != "buy" || mods[1] != "discount" {
		t.Errorf("matched modifiers = %v, want [buy discount]", mods)
	}
}

func TestAnalyzeWordBoundaries(t *testing.T) {
	a := New()

	// "buyer" must not match the "buy" modifier.
	got := a.Analyze("first time home buyer programs")
	if got.IntentScores[Transactional] != 0 {
		t.Errorf("transactional score = %d, want 0 for %q", got.IntentScores[Transactional], got.Query)
	}
}

func TestAnalyzeTieBreak(t *testing.T) {
	a := New()

	// "vs" is both an informational and a commercial modifier; ties
	// resolve in declaration order.
	got := a.Analyze("postgres vs mysql")
	if got.PrimaryIntent != Informational {
		t.Errorf("PrimaryIntent = %q, want informational on a tie", got.PrimaryIntent)
	}
	if got.Confidence != 0.5 {
		t.Errorf("Confidence = %.2f, want 0.5 for a two-way split", got.Confidence)
	}
}

func TestAnalyzeHeuristicFallback(t *testing.T) {
	a := New()

	short := a.Analyze("zappos")
	if short.PrimaryIntent != Navigational || short.Confidence != 0.6 {
		t.Errorf("short unmatched query = %q/%.2f, want navigational/0.60", short.PrimaryIntent, short.Confidence)
	}

	long := a.Analyze("planting tomatoes in clay soil during spring")
	if long.PrimaryIntent != Informational || long.Confidence != 0.5 {
		t.Errorf("long unmatched query = %q/%.2f, want informational/0.50", long.PrimaryIntent, long.Confidence)
	}
}

func TestHeuristicIntentBranches(t *testing.T) {
	tests := []struct {
		query      string
		intent     string
		confidence float64
	}{
		{"where did it go", Informational, 0.8},
		{"acme", Navigational, 0.6},
		{"acme?", Informational, 0.4},
		{"three word query", Informational, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			intent, confidence := heuristicIntent(tt.query)
			if intent != tt.intent || confidence != tt.confidence {
				t.Errorf("heuristicIntent(%q) = %q/%.2f, want %q/%.2f",
					tt.query, intent, confidence, tt.intent, tt.confidence)
			}
		})
	}
}

func TestAnalyzeRecommendations(t *testing.T) {
	a := New()

	got := a.Analyze("buy espresso machine").Recommendations
	if got.ContentType != "Product page, service page, pricing page" {
		t.Errorf("transactional content type = %q", got.ContentType)
	}
	if len(got.Elements) == 0 || got.CTA == "" {
		t.Errorf("recommendation incomplete: %+v", got)
	}

	info := a.Analyze("how to make espresso").Recommendations
	if info.ContentType != "Blog post, guide, tutorial, how-to article" {
		t.Errorf("informational content type = %q", info.ContentType)
	}
}

func TestAnalyzeBatchAndDistribution(t *testing.T) {
	a := New()
	queries := []string{
		"how to brew coffee",
		"buy espresso machine",
		"best coffee grinder reviews",
		"intelligentsia login",
	}

	results := a.AnalyzeBatch(queries)
	if len(results) != len(queries) {
		t.Fatalf("got %d results for %d queries", len(results), len(queries))
	}
	for i, r := range results {
		if r.Query != queries[i] {
			t.Errorf("result %d is for %q, want %q", i, r.Query, queries[i])
		}
	}

	dist := a.Distribution(queries)
	if dist.TotalQueries != len(queries) {
		t.Errorf("TotalQueries = %d, want %d", dist.TotalQueries, len(queries))
	}

	total := 0
	for _, n := range dist.Distribution {
		total += n
	}
	if total != len(queries) {
		t.Errorf("distribution sums to %d, want %d", total, len(queries))
	}
	if dist.Distribution[Informational] != 1 || dist.Distribution[Transactional] != 1 ||
		dist.Distribution[Commercial] != 1 || dist.Distribution[Navigational] != 1 {
		t.Errorf("distribution = %v, want one of each", dist.Distribution)
	}

	for intent, pct := range dist.Percentages {
		if pct != 25.0 {
			t.Errorf("percentage for %s = %.1f, want 25.0", intent, pct)
		}
	}
	// A four-way tie resolves in declaration order.
	if dist.DominantIntent != Informational {
		t.Errorf("DominantIntent = %q, want informational", dist.DominantIntent)
	}
}
