package insights

import (
	"github.com/blackwell-systems/usagelens/internal/analyzer"
	"github.com/blackwell-systems/usagelens/internal/stats"
)

// Generator evaluates the ordered insight rule table against an analysis
// context and renders the matching messages in the requested language.
type Generator struct {
	rules []Rule
}

// NewGenerator creates a generator with all built-in rules registered at the
// default threshold levels.
func NewGenerator() *Generator {
	return NewGeneratorWith(DefaultThresholds())
}

// NewGeneratorWith creates a generator whose rules evaluate against the given
// threshold levels. Non-positive levels fall back to the defaults.
func NewGeneratorWith(t Thresholds) *Generator {
	return &Generator{rules: defaultRules(t.normalize())}
}

// Generate produces language-tagged insights from the three analysis
// results. It never fails: all-zero input yields the minimal "not enough
// data" insight rather than an empty list or an error.
func (g *Generator) Generate(s stats.BasicStats, eff analyzer.EfficiencyMetrics, trends analyzer.TrendAnalysis, lang Language) []Insight {
	ctx := &Context{Stats: s, Efficiency: eff, Trends: trends}
	lang = NormalizeLanguage(lang)

	var results []Insight
	for _, rule := range g.rules {
		if rule.When == nil || !rule.When(ctx) {
			continue
		}

		var args []any
		if rule.Args != nil {
			args = rule.Args(ctx)
		}

		results = append(results, Insight{
			Type:     rule.Name,
			Title:    renderTitle(rule.Name, lang),
			Content:  renderContent(rule.Name, lang, args...),
			Priority: rule.Priority,
		})
	}

	if len(results) == 0 {
		results = append(results, Insight{
			Type:     "no_data",
			Title:    renderTitle("no_data", lang),
			Content:  renderContent("no_data", lang),
			Priority: PriorityInfo,
		})
	}

	return results
}
