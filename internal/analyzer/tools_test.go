package analyzer

import "testing"

func TestAnalyzeToolUsage_Empty(t *testing.T) {
	c := NewCalculator(nil)

	if got := c.AnalyzeToolUsage(nil, 1); len(got) != 0 {
		t.Errorf("AnalyzeToolUsage(nil) returned %d entries, want 0", len(got))
	}
}

func TestAnalyzeToolUsage_SortedByCountThenName(t *testing.T) {
	c := NewCalculator(nil)

	usage := map[string]int{"Read": 5, "Edit": 5, "Bash": 9}
	got := c.AnalyzeToolUsage(usage, 0)

	wantOrder := []string{"Bash", "Edit", "Read"}
	if len(got) != len(wantOrder) {
		t.Fatalf("got %d entries, want %d", len(got), len(wantOrder))
	}
	for i, want := range wantOrder {
		if got[i].ToolName != want {
			t.Errorf("entry %d = %q, want %q", i, got[i].ToolName, want)
		}
	}
}

func TestAnalyzeToolUsage_RatesAndLines(t *testing.T) {
	c := NewCalculator(nil)

	got := c.AnalyzeToolUsage(map[string]int{"Edit": 5}, 2)

	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
	if got[0].UsageRate != 2.5 {
		t.Errorf("UsageRate = %v, want 2.5", got[0].UsageRate)
	}
	if got[0].EstimatedLines != 75 {
		t.Errorf("EstimatedLines = %d, want 75", got[0].EstimatedLines)
	}
}

func TestAnalyzeToolUsage_ZeroHoursZeroRate(t *testing.T) {
	c := NewCalculator(nil)

	got := c.AnalyzeToolUsage(map[string]int{"Edit": 5}, 0)
	if got[0].UsageRate != 0 {
		t.Errorf("UsageRate = %v, want 0 with no hours", got[0].UsageRate)
	}
}

func TestAnalyzeToolUsage_SkipsInvalidEntries(t *testing.T) {
	c := NewCalculator(nil)

	got := c.AnalyzeToolUsage(map[string]int{"": 5, "Edit": 0, "Read": -3, "Write": 1}, 1)
	if len(got) != 1 || got[0].ToolName != "Write" {
		t.Errorf("got %+v, want single Write entry", got)
	}
}

func TestAnalyzeToolUsage_UnknownToolUsesDefaultWeight(t *testing.T) {
	c := NewCalculator(nil)

	got := c.AnalyzeToolUsage(map[string]int{"Custom": 3}, 1)
	if got[0].EstimatedLines != 6 {
		t.Errorf("EstimatedLines = %d, want 6", got[0].EstimatedLines)
	}
}

func TestToolEfficiencyScore_ClassRanking(t *testing.T) {
	// At saturated volume the class base ranks order the scores.
	edit := toolEfficiencyScore("Edit", 20)
	bash := toolEfficiencyScore("Bash", 20)
	read := toolEfficiencyScore("Read", 20)

	if edit != 8.0 {
		t.Errorf("Edit score = %v, want 8.0", edit)
	}
	if bash != 6.0 {
		t.Errorf("Bash score = %v, want 6.0", bash)
	}
	if read != 4.0 {
		t.Errorf("Read score = %v, want 4.0", read)
	}
	if !(edit > bash && bash > read) {
		t.Errorf("want edit > bash > read, got %v, %v, %v", edit, bash, read)
	}
}

func TestToolEfficiencyScore_VolumeScaling(t *testing.T) {
	low := toolEfficiencyScore("Edit", 1)
	high := toolEfficiencyScore("Edit", 10)

	if low >= high {
		t.Errorf("score at count 1 (%v) should be below count 10 (%v)", low, high)
	}
	if high > 10 || low < 0 {
		t.Errorf("scores outside [0, 10]: %v, %v", low, high)
	}
}
