package audit

import (
	"fmt"
	"sort"
	"strings"

	"seoaudit/internal/model"
)

const maxRecommendations = 10

// generateRecommendations builds a bounded, priority-ordered action list:
// one high-priority entry per critical issue, then the three lowest
// category scores below 70, then up to five warnings not already covered.
func generateRecommendations(result *model.AuditResult) []model.Recommendation {
	recs := []model.Recommendation{}
	seen := map[string]struct{}{}

	for _, issue := range result.Issues {
		if issue.Severity != model.SeverityCritical {
			continue
		}
		recs = append(recs, model.Recommendation{
			Priority:    model.PriorityHigh,
			Category:    issue.Category,
			Title:       "Fix: " + issue.Title,
			Description: issue.Description,
			Impact:      "Resolving critical issues has the largest effect on search visibility.",
		})
		seen[issue.Title] = struct{}{}
	}

	type catScore struct {
		name  string
		score int
	}
	scores := []catScore{
		{model.CategoryCrawlability, result.CrawlabilityScore},
		{model.CategorySpeed, result.SpeedScore},
		{model.CategoryMobile, result.MobileScore},
		{model.CategorySecurity, result.SecurityScore},
		{model.CategoryStructure, result.StructureScore},
		{model.CategoryContent, result.ContentScore},
		{model.CategoryUX, result.UXScore},
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score < scores[j].score })

	for _, cs := range scores[:3] {
		if cs.score >= 70 || len(recs) >= maxRecommendations {
			continue
		}
		priority := model.PriorityMedium
		if cs.score < 50 {
			priority = model.PriorityHigh
		}
		recs = append(recs, model.Recommendation{
			Priority:    priority,
			Category:    cs.name,
			Title:       fmt.Sprintf("Improve %s Score", categoryLabel(cs.name)),
			Description: fmt.Sprintf("The %s category scored %d out of 100.", cs.name, cs.score),
			Impact:      fmt.Sprintf("Raising the weakest categories lifts the overall score fastest (current: %d).", cs.score),
		})
	}

	added := 0
	for _, issue := range result.Issues {
		if len(recs) >= maxRecommendations || added >= 5 {
			break
		}
		if issue.Severity != model.SeverityWarning {
			continue
		}
		if _, ok := seen[issue.Title]; ok {
			continue
		}
		recs = append(recs, model.Recommendation{
			Priority:    model.PriorityMedium,
			Category:    issue.Category,
			Title:       "Fix: " + issue.Title,
			Description: issue.Description,
			Impact:      "Addressing warnings improves the category score incrementally.",
		})
		seen[issue.Title] = struct{}{}
		added++
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func categoryLabel(category string) string {
	if category == model.CategoryUX {
		return "UX"
	}
	return strings.ToUpper(category[:1]) + category[1:]
}
