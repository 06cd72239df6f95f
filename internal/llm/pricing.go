package llm

import "sort"

// ModelCost holds per-million-token pricing for a model in USD.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost calculates the total USD cost for the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// LookupCost returns the pricing for a model, or nil if unknown. Config
// aliases such as "gemini-flash" and OpenRouter "vendor/model" ids are
// resolved first.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[canonicalModel(modelID)]; ok {
		return &c
	}
	return nil
}

// PricedModels lists the model ids with known pricing, sorted.
func PricedModels() []string {
	ids := make([]string, 0, len(modelCosts))
	for id := range modelCosts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// modelCosts covers the models the backends default to and their close
// neighbours. Source: models.dev, February 2026.
var modelCosts = map[string]ModelCost{
	// Anthropic
	"claude-haiku-4-5-20251001":  {1, 5},
	"claude-sonnet-4-20250514":   {3, 15},
	"claude-sonnet-4-5-20250929": {3, 15},
	"claude-opus-4-5-20251101":   {5, 25},

	// OpenAI
	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-4.1":      {2, 8},
	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-5":        {1.25, 10},
	"gpt-5-mini":   {0.25, 2},

	// Gemini
	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.0-flash-lite": {0.075, 0.3},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-pro":        {1.25, 10},
}
