package quality

import (
	"strings"
	"testing"
)

const structuredArticle = `# Choosing Widgets

I tested twelve widgets over three months. In my experience the build
quality matters more than price. Research shows durable widgets last
twice as long. Source: https://example.org/widget-study

## What to look for

- Solid housing
- Replaceable parts
- A clear warranty

For instance, the base model survived a drop test. Such as it is, the
premium tier adds little.

## Conclusion

In summary, buy the mid-range widget. Learn more on our contact us page.`

func TestCheckComponentsInRange(t *testing.T) {
	got := Check(structuredArticle, Metadata{Title: "Choosing Widgets", MetaDescription: "A widget buying guide"})

	for name, score := range map[string]float64{
		"overall":      got.OverallScore,
		"readability":  got.ReadabilityScore,
		"eeat":         got.EEATScore,
		"seo":          got.SEOScore,
		"completeness": got.CompletenessScore,
	} {
		if score < 0 || score > 100 {
			t.Errorf("%s score %.1f out of [0,100]", name, score)
		}
	}

	if got.Grade == "" {
		t.Error("expected a letter grade")
	}
	if len(got.Recommendations) == 0 {
		t.Error("expected at least one recommendation")
	}
}

func TestCheckWeighting(t *testing.T) {
	got := Check(structuredArticle, Metadata{})

	want := got.ReadabilityScore*readabilityWeight +
		got.EEATScore*eeatWeight +
		got.SEOScore*seoWeight +
		got.CompletenessScore*completenessWeight

	// Components are rounded to one decimal, so allow a small drift.
	if diff := got.OverallScore - want; diff > 0.5 || diff < -0.5 {
		t.Errorf("OverallScore = %.1f, weighted components give %.1f", got.OverallScore, want)
	}
}

func TestReadabilityStructureBonus(t *testing.T) {
	structured := "# Guide\n\nShort words win. Keep it simple. Readers skim.\n\n- first\n- second"
	dense := strings.Repeat("Institutional prioritization methodologies necessitate comprehensive organizational restructuring considerations alongside multidimensional stakeholder alignment imperatives and ", 3) + "conclusions."

	if s, d := Readability(structured), Readability(dense); s <= d {
		t.Errorf("structured content scored %.1f, dense wall of text %.1f", s, d)
	}
}

func TestReadabilityEmpty(t *testing.T) {
	if got := Readability(""); got != 0 {
		t.Errorf("Readability(\"\") = %.1f, want 0", got)
	}
}

func TestEEATIndicators(t *testing.T) {
	rich := `I tested this myself. In my experience it works. Research shows
the same. According to peer-reviewed studies published at
https://example.edu it holds. Source: the vendor. Verified data shows results.`

	bare := "Widgets exist. Some are blue."

	r, b := EEAT(rich), EEAT(bare)
	if r <= b {
		t.Errorf("indicator-rich content scored %.1f, bare content %.1f", r, b)
	}
	if b > 10 {
		t.Errorf("bare content EEAT = %.1f, want near zero", b)
	}
}

func TestSEONeutralWithoutKeyword(t *testing.T) {
	if got := SEO("any content at all", Metadata{}); got != 50 {
		t.Errorf("SEO without keyword = %.1f, want neutral 50", got)
	}
}

func TestSEOKeywordPlacement(t *testing.T) {
	keyword := "running shoes"
	content := "Running shoes need replacing every 500 miles. " +
		strings.Repeat("Match the cushioning to your gait and the surface you train on most days. ", 10) +
		"Rotate two pairs of running shoes to extend their life.\n# Fit\n# Cushion\n# Durability\n"

	meta := Metadata{
		Title:           "How to Choose Running Shoes",
		MetaDescription: "A guide to buying running shoes",
		TargetKeyword:   keyword,
	}

	optimized := SEO(content, meta)
	unrelated := SEO("Nothing about footwear whatsoever in this text.", Metadata{TargetKeyword: keyword})

	if optimized <= unrelated {
		t.Errorf("optimized content scored %.1f, unrelated %.1f", optimized, unrelated)
	}
	if optimized < 50 {
		t.Errorf("well-optimized content scored %.1f, want >= 50", optimized)
	}
	if unrelated > 25 {
		t.Errorf("unrelated content scored %.1f, want low", unrelated)
	}
}

func TestCompleteness(t *testing.T) {
	thin := "A sentence."
	full := structuredArticle + "\n\n## FAQ\n\nQuestion: does it work? Yes."

	f, th := Completeness(full, Metadata{Title: "t", MetaDescription: "d"}), Completeness(thin, Metadata{})
	if f <= th {
		t.Errorf("full article scored %.1f, thin content %.1f", f, th)
	}
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		score float64
		grade string
	}{
		{95, "A"}, {90, "A"}, {85, "B"}, {72, "C"}, {61, "D"}, {40, "F"}, {0, "F"},
	}
	for _, tt := range tests {
		if got := GradeFor(tt.score); got != tt.grade {
			t.Errorf("GradeFor(%.0f) = %q, want %q", tt.score, got, tt.grade)
		}
	}
}

func TestRecommendationsForThinContent(t *testing.T) {
	recs := Check("Tiny.", Metadata{TargetKeyword: "widgets"}).Recommendations
	if len(recs) == 0 {
		t.Fatal("thin content should yield recommendations")
	}

	joined := strings.Join(recs, "\n")
	for _, want := range []string{"FAQ", "conclusion", "1,500 words"} {
		if !strings.Contains(joined, want) {
			t.Errorf("recommendations missing %q:\n%s", want, joined)
		}
	}
}
