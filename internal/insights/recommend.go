package insights

import "math"

// Recommendation thresholds.
const (
	lowScoreBound      = 3.0
	highScoreBound     = 7.0
	sharpDeclineTrend  = -0.2
	lowLinesPerHour    = 30.0
	manySessionsBound  = 10
	readEditRatioBound = 2.0
)

// suggestionRule pairs a predicate with a recommendation catalog key. Rules
// are evaluated in order, mirroring the insight rule table.
type suggestionRule struct {
	key  string
	when func(ctx *Context) bool
	args func(ctx *Context) []any
}

// Recommender produces prioritized, actionable suggestion bundles from the
// same predicate space the insight rules evaluate.
type Recommender struct {
	rules []suggestionRule
}

// NewRecommender creates a recommender with all built-in rules registered at
// the default threshold levels.
func NewRecommender() *Recommender {
	return NewRecommenderWith(DefaultThresholds())
}

// NewRecommenderWith creates a recommender whose rules evaluate against the
// given threshold levels. Non-positive levels fall back to the defaults.
func NewRecommenderWith(t Thresholds) *Recommender {
	return &Recommender{rules: suggestionRules(t.normalize())}
}

// Generate evaluates the suggestion rules and classifies the bundle
// priority. At least one suggestion is always returned; when no specific
// rule fires a generic fallback is used.
func (r *Recommender) Generate(ctx Context, lang Language) RecommendationBundle {
	lang = NormalizeLanguage(lang)

	bundle := RecommendationBundle{
		Priority:    bundlePriority(ctx.Efficiency.ProductivityScore, ctx.Trends.ProductivityTrend),
		Suggestions: []string{},
	}

	for _, rule := range r.rules {
		if !rule.when(&ctx) {
			continue
		}
		var args []any
		if rule.args != nil {
			args = rule.args(&ctx)
		}
		bundle.Suggestions = append(bundle.Suggestions, renderContent(rule.key, lang, args...))
	}

	if len(bundle.Suggestions) == 0 {
		bundle.Suggestions = append(bundle.Suggestions, renderContent("rec_fallback", lang))
	}

	return bundle
}

// bundlePriority classifies the bundle: high for low scores or sharp
// declines, low for strong scores with a non-negative trend, medium for
// everything between.
func bundlePriority(score, trend float64) BundlePriority {
	switch {
	case score < lowScoreBound || trend < sharpDeclineTrend:
		return BundleHigh
	case score >= highScoreBound && trend >= 0:
		return BundleLow
	default:
		return BundleMedium
	}
}

func suggestionRules(t Thresholds) []suggestionRule {
	return []suggestionRule{
		{
			key: "rec_batch_edit",
			when: func(ctx *Context) bool {
				if ctx.Stats.TotalTimeHours <= 0 || ctx.Efficiency.LinesPerHour >= lowLinesPerHour {
					return false
				}
				// Only suggest batch editing when it is not already in use.
				return ctx.Stats.ToolUsage["MultiEdit"] == 0
			},
			args: func(ctx *Context) []any {
				return []any{ctx.Efficiency.LinesPerHour}
			},
		},
		{
			key: "rec_model_tier",
			when: func(ctx *Context) bool {
				return ctx.Efficiency.CostPerHour > t.HighCostPerHour
			},
			args: func(ctx *Context) []any {
				return []any{ctx.Efficiency.CostPerHour}
			},
		},
		{
			key: "rec_reduce_reads",
			when: func(ctx *Context) bool {
				reads, edits := readEditCounts(ctx)
				return reads > 0 && float64(reads) > readEditRatioBound*float64(edits)
			},
			args: func(ctx *Context) []any {
				reads, edits := readEditCounts(ctx)
				return []any{reads, edits}
			},
		},
		{
			key: "rec_consolidate_sessions",
			when: func(ctx *Context) bool {
				return ctx.Stats.SessionCount > manySessionsBound
			},
			args: func(ctx *Context) []any {
				return []any{ctx.Stats.SessionCount}
			},
		},
		{
			key: "rec_trend_review",
			when: func(ctx *Context) bool {
				return ctx.Trends.ProductivityTrend < -t.TrendSensitivity
			},
			args: func(ctx *Context) []any {
				return []any{math.Abs(ctx.Trends.ProductivityTrend) * 100}
			},
		},
		{
			key: "rec_prompt_discipline",
			when: func(ctx *Context) bool {
				return ctx.Efficiency.TokensPerHour > tokenRateHigh
			},
			args: func(ctx *Context) []any {
				return []any{ctx.Efficiency.TokensPerHour}
			},
		},
	}
}

// readEditCounts sums read-class and edit-class tool invocations.
func readEditCounts(ctx *Context) (reads, edits int) {
	for tool, count := range ctx.Stats.ToolUsage {
		if count <= 0 {
			continue
		}
		switch tool {
		case "Read", "Grep", "Glob", "LS", "WebSearch", "WebFetch":
			reads += count
		case "Edit", "MultiEdit", "Write", "NotebookEdit":
			edits += count
		}
	}
	return reads, edits
}
