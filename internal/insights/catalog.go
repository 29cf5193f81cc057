package insights

import "fmt"

// message is one bilingual catalog entry. Every key carries both languages,
// which is what keeps zh-CN and en-US output counts identical for the same
// input.
type message struct {
	title   map[Language]string
	content map[Language]string
}

var catalog = map[string]message{
	"rating_excellent": {
		title: map[Language]string{
			LangEnglish: "Excellent efficiency",
			LangChinese: "效率极高",
		},
		content: map[Language]string{
			LangEnglish: "Productivity score is %.1f/10; output per hour is excellent across this window.",
			LangChinese: "生产力评分为 %.1f/10——本时段的每小时产出非常出色。",
		},
	},
	"rating_good": {
		title: map[Language]string{
			LangEnglish: "Good efficiency",
			LangChinese: "效率良好",
		},
		content: map[Language]string{
			LangEnglish: "Productivity score is %.1f/10; a solid working rhythm with room to push throughput.",
			LangChinese: "生产力评分为 %.1f/10——工作节奏稳健,吞吐量仍有提升空间。",
		},
	},
	"rating_fair": {
		title: map[Language]string{
			LangEnglish: "Fair efficiency",
			LangChinese: "效率尚可",
		},
		content: map[Language]string{
			LangEnglish: "Productivity score is %.1f/10; output is moderate; look at the recommendations below.",
			LangChinese: "生产力评分为 %.1f/10——产出处于中等水平,可参考下方建议。",
		},
	},
	"rating_average": {
		title: map[Language]string{
			LangEnglish: "Average efficiency",
			LangChinese: "效率一般",
		},
		content: map[Language]string{
			LangEnglish: "Productivity score is %.1f/10; throughput sits near the baseline for this kind of work.",
			LangChinese: "生产力评分为 %.1f/10——吞吐量接近此类工作的基准线。",
		},
	},
	"rating_needs_improvement": {
		title: map[Language]string{
			LangEnglish: "Efficiency needs improvement",
			LangChinese: "效率有待提高",
		},
		content: map[Language]string{
			LangEnglish: "Productivity score is %.1f/10; sessions are producing less than expected for the time spent.",
			LangChinese: "生产力评分为 %.1f/10——相对投入的时间,会话产出低于预期。",
		},
	},
	"rating_poor": {
		title: map[Language]string{
			LangEnglish: "Low efficiency",
			LangChinese: "效率偏低",
		},
		content: map[Language]string{
			LangEnglish: "Productivity score is %.1f/10; most of the recorded time produced little estimated output.",
			LangChinese: "生产力评分为 %.1f/10——大部分记录时间的估算产出很少。",
		},
	},
	"no_data": {
		title: map[Language]string{
			LangEnglish: "Not enough data",
			LangChinese: "数据不足",
		},
		content: map[Language]string{
			LangEnglish: "No active time was recorded in this window, so efficiency cannot be rated yet.",
			LangChinese: "本时段未记录到活跃时间,暂时无法评估效率。",
		},
	},
	"productivity_rising": {
		title: map[Language]string{
			LangEnglish: "Productivity trending up",
			LangChinese: "生产力呈上升趋势",
		},
		content: map[Language]string{
			LangEnglish: "Productivity rose %.0f%% from the first half of the window to the second.",
			LangChinese: "生产力从时段前半程到后半程上升了 %.0f%%。",
		},
	},
	"productivity_falling": {
		title: map[Language]string{
			LangEnglish: "Productivity trending down",
			LangChinese: "生产力呈下降趋势",
		},
		content: map[Language]string{
			LangEnglish: "Productivity fell %.0f%% from the first half of the window to the second.",
			LangChinese: "生产力从时段前半程到后半程下降了 %.0f%%。",
		},
	},
	"tokens_rising": {
		title: map[Language]string{
			LangEnglish: "Token usage climbing",
			LangChinese: "令牌用量上升",
		},
		content: map[Language]string{
			LangEnglish: "Token consumption grew %.0f%% across the window; watch the matching cost trend.",
			LangChinese: "令牌消耗在本时段增长了 %.0f%%——请关注相应的成本走势。",
		},
	},
	"tokens_falling": {
		title: map[Language]string{
			LangEnglish: "Token usage declining",
			LangChinese: "令牌用量下降",
		},
		content: map[Language]string{
			LangEnglish: "Token consumption dropped %.0f%% across the window.",
			LangChinese: "令牌消耗在本时段下降了 %.0f%%。",
		},
	},
	"time_rising": {
		title: map[Language]string{
			LangEnglish: "Active time increasing",
			LangChinese: "活跃时间增加",
		},
		content: map[Language]string{
			LangEnglish: "Active working time increased %.0f%% in the second half of the window.",
			LangChinese: "活跃工作时间在时段后半程增加了 %.0f%%。",
		},
	},
	"dominant_tool": {
		title: map[Language]string{
			LangEnglish: "Dominant tool",
			LangChinese: "主要使用的工具",
		},
		content: map[Language]string{
			LangEnglish: "%s was the most-used tool with %d invocations.",
			LangChinese: "%s 是使用最多的工具,共调用 %d 次。",
		},
	},
	"token_rate_high": {
		title: map[Language]string{
			LangEnglish: "High token rate",
			LangChinese: "令牌速率较高",
		},
		content: map[Language]string{
			LangEnglish: "Throughput averaged %.0f tokens per hour; an unusually intense pace.",
			LangChinese: "平均每小时消耗 %.0f 个令牌——节奏异常紧凑。",
		},
	},
	"token_rate_low": {
		title: map[Language]string{
			LangEnglish: "Low token rate",
			LangChinese: "令牌速率较低",
		},
		content: map[Language]string{
			LangEnglish: "Throughput averaged only %.0f tokens per hour; sessions may be idling.",
			LangChinese: "平均每小时仅消耗 %.0f 个令牌——会话可能处于低效状态。",
		},
	},
	"cost_rate_high": {
		title: map[Language]string{
			LangEnglish: "High hourly cost",
			LangChinese: "每小时成本较高",
		},
		content: map[Language]string{
			LangEnglish: "Spend averaged $%.2f per active hour; above the typical range.",
			LangChinese: "每活跃小时平均花费 $%.2f——高于常见区间。",
		},
	},
	"cost_rate_low": {
		title: map[Language]string{
			LangEnglish: "Low hourly cost",
			LangChinese: "每小时成本较低",
		},
		content: map[Language]string{
			LangEnglish: "Spend averaged just $%.2f per active hour; cost stayed well contained.",
			LangChinese: "每活跃小时平均仅花费 $%.2f——成本控制良好。",
		},
	},

	// Recommendation texts share the catalog so both languages always carry
	// the same suggestion set.
	"rec_batch_edit": {
		content: map[Language]string{
			LangEnglish: "Line throughput is low (%.1f lines/hour); adopt batch-editing tools such as MultiEdit to apply related changes in one pass.",
			LangChinese: "行吞吐量较低(每小时 %.1f 行)——建议使用 MultiEdit 等批量编辑工具,一次性完成相关修改。",
		},
	},
	"rec_model_tier": {
		content: map[Language]string{
			LangEnglish: "Cost per hour is $%.2f; route routine tasks to a cheaper model tier.",
			LangChinese: "每小时成本为 $%.2f——建议将常规任务交给更便宜的模型档位。",
		},
	},
	"rec_reduce_reads": {
		content: map[Language]string{
			LangEnglish: "Read-class calls outnumber edit-class calls %d to %d; cache file context and cut redundant reads.",
			LangChinese: "读取类调用(%d 次)远多于编辑类调用(%d 次)——建议缓存文件上下文,减少重复读取。",
		},
	},
	"rec_consolidate_sessions": {
		content: map[Language]string{
			LangEnglish: "%d sessions were recorded in this window; consolidate related work into fewer, longer sessions to reuse context.",
			LangChinese: "本时段共记录 %d 个会话——建议将相关工作合并到更少、更长的会话中以复用上下文。",
		},
	},
	"rec_trend_review": {
		content: map[Language]string{
			LangEnglish: "Productivity fell %.0f%% across the window; review recent workflow or configuration changes.",
			LangChinese: "生产力在本时段下降了 %.0f%%——建议检查近期的工作流或配置变更。",
		},
	},
	"rec_prompt_discipline": {
		content: map[Language]string{
			LangEnglish: "Token burn is high (%.0f tokens/hour); trim prompt context and favor targeted file reads.",
			LangChinese: "令牌消耗较高(每小时 %.0f 个)——建议精简提示上下文,优先进行有针对性的文件读取。",
		},
	},
	"rec_fallback": {
		content: map[Language]string{
			LangEnglish: "Keep collecting usage data; more sessions make these recommendations sharper.",
			LangChinese: "请继续收集使用数据——会话越多,建议越精准。",
		},
	},
}

// renderTitle returns the localized title for a catalog key.
func renderTitle(key string, lang Language) string {
	return catalog[key].title[NormalizeLanguage(lang)]
}

// renderContent returns the localized, formatted content for a catalog key.
func renderContent(key string, lang Language, args ...any) string {
	tmpl := catalog[key].content[NormalizeLanguage(lang)]
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}
