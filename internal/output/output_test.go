package output

import (
	"strings"
	"testing"
)

func TestTable_Render(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Metric", "Value")
	tbl.AddRow("tokens_per_hour", "1500.0")
	tbl.AddRow("score", "9.0")

	out := tbl.Render()

	for _, want := range []string{"Metric", "Value", "tokens_per_hour", "9.0", "─"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}

	// Header + separator + two data rows.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("expected 4 lines, got %d", len(lines))
	}
}

func TestTable_EmptyHeaders(t *testing.T) {
	if out := NewTable().Render(); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestTable_PadsColumns(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("A", "B")
	tbl.AddRow("long-value", "x")
	tbl.AddRow("y", "z")

	lines := strings.Split(strings.TrimRight(tbl.Render(), "\n"), "\n")
	if len(lines[2]) != len(lines[3]) {
		t.Errorf("rows not padded to equal width: %q vs %q", lines[2], lines[3])
	}
}

func TestScoreBar_Bounds(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	full := ScoreBar(10, 10)
	if strings.Count(full, "█") != 10 {
		t.Errorf("full bar = %q, want 10 filled cells", full)
	}
	empty := ScoreBar(0, 10)
	if strings.Count(empty, "░") != 10 {
		t.Errorf("empty bar = %q, want 10 unfilled cells", empty)
	}
	if !strings.Contains(ScoreBar(8.2, 10), "8.2/10") {
		t.Error("bar should include the numeric score")
	}
}

func TestTrendArrow(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	if got := TrendArrow(0.25, true); !strings.Contains(got, "▲ +25%") {
		t.Errorf("TrendArrow(0.25) = %q", got)
	}
	if got := TrendArrow(-0.5, true); !strings.Contains(got, "▼ -50%") {
		t.Errorf("TrendArrow(-0.5) = %q", got)
	}
	if got := TrendArrow(0, true); !strings.Contains(got, "─") {
		t.Errorf("TrendArrow(0) = %q", got)
	}
}

func TestChart(t *testing.T) {
	if got := Chart([]float64{1}, 5, 0, "short"); got != "" {
		t.Errorf("Chart with one point = %q, want empty", got)
	}
	got := Chart([]float64{100, 200, 150, 300}, 5, 0, "tokens")
	if got == "" {
		t.Error("Chart with four points should render")
	}
	if !strings.Contains(got, "tokens") {
		t.Error("Chart should include the caption")
	}
}

func TestChart_ConfiguredWidth(t *testing.T) {
	narrow := Chart([]float64{100, 200, 150, 300}, 5, 20, "tokens")
	wide := Chart([]float64{100, 200, 150, 300}, 5, 60, "tokens")
	if narrow == "" || wide == "" {
		t.Fatal("both charts should render")
	}
	if len(wide) <= len(narrow) {
		t.Error("a wider chart should render more columns")
	}
}
