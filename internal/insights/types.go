// Package insights turns computed statistics, efficiency metrics, and trends
// into natural-language observations and prioritized recommendations. All
// output is generated from an ordered rule table and a bilingual message
// catalog, so identical input always yields identical, identically ordered
// text in either language.
package insights

import (
	"github.com/blackwell-systems/usagelens/internal/analyzer"
	"github.com/blackwell-systems/usagelens/internal/stats"
)

// Language selects the output language for generated text.
type Language string

const (
	LangEnglish Language = "en-US"
	LangChinese Language = "zh-CN"
)

// NormalizeLanguage maps unknown language tags to English.
func NormalizeLanguage(lang Language) Language {
	if lang == LangChinese {
		return LangChinese
	}
	return LangEnglish
}

// Insight priorities, ordered highest first.
const (
	PriorityAttention = 1
	PriorityNotable   = 2
	PriorityInfo      = 3
)

// Insight is one language-tagged observation about the analyzed window.
type Insight struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Priority int    `json:"priority"`
}

// BundlePriority classifies a recommendation bundle.
type BundlePriority string

const (
	BundleHigh   BundlePriority = "high"
	BundleMedium BundlePriority = "medium"
	BundleLow    BundlePriority = "low"
)

// RecommendationBundle carries prioritized, actionable suggestions.
type RecommendationBundle struct {
	Priority    BundlePriority `json:"priority"`
	Suggestions []string       `json:"suggestions"`
}

// Context provides all data the rules evaluate. It is read-only for rules.
type Context struct {
	Stats      stats.BasicStats
	Efficiency analyzer.EfficiencyMetrics
	Trends     analyzer.TrendAnalysis
}

// Rule pairs a predicate with a templated, language-selected message. Rules
// are evaluated in registration order.
type Rule struct {
	// Name identifies the rule and doubles as the insight type.
	Name string

	// Priority is attached to the produced insight.
	Priority int

	// When reports whether the rule fires for the given context.
	When func(ctx *Context) bool

	// Args extracts the template arguments from the context. May be nil
	// when the message takes no arguments.
	Args func(ctx *Context) []any
}

// DominantTool returns the most-used tool in the context, with the tool name
// as tiebreaker so the result is deterministic. Empty when no tools were used.
func (ctx *Context) DominantTool() (string, int) {
	var name string
	var max int
	for tool, count := range ctx.Stats.ToolUsage {
		if count > max || (count == max && count > 0 && tool < name) {
			name = tool
			max = count
		}
	}
	return name, max
}
