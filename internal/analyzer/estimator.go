package analyzer

import (
	"math"
	"sync"
)

// DefaultToolWeights maps known tool names to the estimated lines of code
// changed per invocation. Edit-class tools carry high weights, read-only
// tools carry zero.
var DefaultToolWeights = map[string]float64{
	"Edit":         15,
	"MultiEdit":    45,
	"Write":        60,
	"NotebookEdit": 30,
	"Bash":         3,
	"Task":         8,
	"TodoWrite":    1,
	"Read":         0,
	"Grep":         0,
	"Glob":         0,
	"LS":           0,
	"WebSearch":    0,
	"WebFetch":     0,
}

// DefaultUnknownWeight is applied to tools absent from the weight table.
const DefaultUnknownWeight = 2

// readTools indicate exploration rather than production.
var readTools = map[string]bool{
	"Read": true, "Grep": true, "Glob": true, "LS": true,
	"WebSearch": true, "WebFetch": true,
}

// editTools indicate code production.
var editTools = map[string]bool{
	"Edit": true, "MultiEdit": true, "Write": true, "NotebookEdit": true,
}

// CodeEstimator maps tool invocation counts to an estimated
// lines-of-code-changed figure. The weight table is injected at construction
// and may be swapped at runtime; swaps follow a single-writer/many-readers
// discipline via the embedded RWMutex.
type CodeEstimator struct {
	mu            sync.RWMutex
	weights       map[string]float64
	unknownWeight float64
}

// NewCodeEstimator creates an estimator with the given weight table. A nil
// table selects DefaultToolWeights.
func NewCodeEstimator(weights map[string]float64) *CodeEstimator {
	if weights == nil {
		weights = DefaultToolWeights
	}
	return &CodeEstimator{
		weights:       copyWeights(weights),
		unknownWeight: DefaultUnknownWeight,
	}
}

// Model returns a copy of the current weight table.
func (e *CodeEstimator) Model() map[string]float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return copyWeights(e.weights)
}

// SetModel replaces the weight table. A nil table restores the defaults.
func (e *CodeEstimator) SetModel(weights map[string]float64) {
	if weights == nil {
		weights = DefaultToolWeights
	}
	e.mu.Lock()
	e.weights = copyWeights(weights)
	e.mu.Unlock()
}

// Estimate returns the estimated lines of code changed for the given tool
// invocation counts. Negative counts contribute nothing, and the raw
// weighted sum is adjusted by a bounded correction factor before rounding.
func (e *CodeEstimator) Estimate(toolUsage map[string]int) int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var raw float64
	for tool, count := range toolUsage {
		if count <= 0 {
			continue
		}
		weight, known := e.weights[tool]
		if !known {
			weight = e.unknownWeight
		}
		raw += float64(count) * weight
	}

	if raw == 0 {
		return 0
	}

	return int(math.Round(raw * correctionFactor(toolUsage)))
}

// correctionFactor adjusts a raw estimate for tool diversity, invocation
// volume, and the edit-to-read ratio. The result is bounded to [0.5, 2.0].
func correctionFactor(toolUsage map[string]int) float64 {
	var distinct, total, edits, reads int
	for tool, count := range toolUsage {
		if count <= 0 {
			continue
		}
		distinct++
		total += count
		if editTools[tool] {
			edits += count
		}
		if readTools[tool] {
			reads += count
		}
	}

	factor := 1.0

	// Diverse tool use suggests broader changes than the raw weights imply.
	if distinct > 3 {
		factor += math.Min(0.2, 0.05*float64(distinct-3))
	}

	// Heavy invocation volume scales the estimate up, with a cap.
	if total > 50 {
		factor += math.Min(0.3, float64(total-50)/500.0)
	}

	// A high edit-to-read ratio means more of the activity produced code.
	if reads > 0 {
		ratio := float64(edits) / float64(reads)
		adj := (ratio - 1.0) * 0.15
		if adj > 0.35 {
			adj = 0.35
		}
		if adj < -0.25 {
			adj = -0.25
		}
		factor += adj
	}

	if factor < 0.5 {
		return 0.5
	}
	if factor > 2.0 {
		return 2.0
	}
	return factor
}

func copyWeights(weights map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(weights))
	for tool, w := range weights {
		out[tool] = w
	}
	return out
}
